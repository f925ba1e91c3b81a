// Command hdrdump assembles a raw HTTP/1.x header block and dumps what it
// finds: the logical header lines and the parsed content-negotiation
// headers. Input comes from a file argument or stdin.
//
// Usage:
//
//	hdrdump [-dev] [-wire] [file]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ghettovoice/httpwire/header"
	"github.com/ghettovoice/httpwire/internal/log"
)

func main() {
	dev := flag.Bool("dev", false, "use the developer log handler")
	quiet := flag.Bool("quiet", false, "suppress per-header output")
	wire := flag.Bool("wire", false, "print the reassembled wire-format block to stdout")
	flag.Parse()

	logger := log.Def
	switch {
	case *quiet:
		logger = log.Noop
	case *dev:
		logger = log.Dev
	}

	input, err := readInput(flag.Arg(0))
	if err != nil {
		logger.Error("read input", "error", err)
		os.Exit(1)
	}

	block := header.AssembleRawHeaders(input)
	logger.Debug("assembled header block",
		"input_bytes", len(input), "block_bytes", len(block))

	dump(logger, block)

	if *wire {
		fmt.Print(header.ToWireFormat(block))
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func dump(logger *slog.Logger, block string) {
	var (
		mimeType, charset, boundary string
		hadCharset                  bool
	)

	it := header.NewHeadersIterator(block)
	for it.Next() {
		name, value := it.Name(), it.Value()
		logger.Info("header", "name", name, "value", value)

		switch {
		case strings.EqualFold(name, "content-type"):
			header.ParseContentType(value, &mimeType, &charset, &hadCharset, &boundary)
		case strings.EqualFold(name, "content-range"):
			cr, err := header.ParseContentRangeFor206(value)
			if err != nil {
				logger.Warn("content-range rejected", "value", value, "error", err)
				continue
			}
			logger.Info("content-range",
				"first", cr.FirstBytePosition, "last", cr.LastBytePosition, "length", cr.InstanceLength)
		case strings.EqualFold(name, "range"):
			ranges, err := header.ParseRangeHeader(value)
			if err != nil {
				logger.Warn("range rejected", "value", value, "error", err)
				continue
			}
			logger.Info("range", "specs", log.FmtValue(ranges, false))
		case strings.EqualFold(name, "accept-encoding"):
			encodings, err := header.ParseAcceptEncoding(value)
			if err != nil {
				logger.Warn("accept-encoding rejected", "value", value, "error", err)
				continue
			}
			logger.Info("accept-encoding", "allowed", encodings.Slice())
		case strings.EqualFold(name, "content-encoding"):
			encodings, err := header.ParseContentEncoding(value)
			if err != nil {
				logger.Warn("content-encoding rejected", "value", value, "error", err)
				continue
			}
			logger.Info("content-encoding", "used", encodings.Slice())
		case strings.EqualFold(name, "retry-after"):
			delay, err := header.ParseRetryAfterHeader(value)
			if err != nil {
				logger.Warn("retry-after rejected", "value", value, "error", err)
				continue
			}
			logger.Info("retry-after", "delay", delay)
		}
	}

	if mimeType != "" {
		logger.Info("content-type",
			"mime_type", mimeType, "charset", charset, "boundary", boundary)
	}
}


// Package httpwire provides parsing and normalization of textual HTTP/1.x
// header blocks.
//
// The functionality lives in the subpackages:
//
//   - [github.com/ghettovoice/httpwire/header] — header block assembly,
//     header iteration and the content-negotiation header parsers.
//   - [github.com/ghettovoice/httpwire/syntax] — token and whitespace
//     classifiers, quoted-string codec and quote-aware tokenization.
//
// httpwire operates purely on caller-supplied buffers: no network I/O, no
// header storage, no binary header compression.
package httpwire

// Version is the current httpwire package version.
var Version = "0.1.0"

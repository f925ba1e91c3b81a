package header

import (
	"strconv"
	"strings"

	"github.com/ghettovoice/httpwire/internal/util"
	"github.com/ghettovoice/httpwire/syntax"
)

// acceptLanguageBuilder accumulates a comma-separated language list,
// suppressing exact duplicates; the first occurrence wins.
type acceptLanguageBuilder struct {
	sb   *strings.Builder
	seen map[string]struct{}
}

func (b *acceptLanguageBuilder) addLanguageCode(language string) {
	if _, ok := b.seen[language]; ok {
		return
	}
	if b.sb.Len() > 0 {
		b.sb.WriteByte(',')
	}
	b.sb.WriteString(language)
	b.seen[language] = struct{}{}
}

// baseLanguageCode returns the portion of a language tag before the first
// '-'; a tag without one is its own base.
func baseLanguageCode(languageCode string) string {
	if i := strings.IndexByte(languageCode, '-'); i != -1 {
		return syntax.TrimLWS(languageCode[:i])
	}
	return syntax.TrimLWS(languageCode)
}

// ExpandLanguageList emits each tag of a comma-separated preference list
// followed by its base subtag, except that the base is withheld while the
// next tag in the list shares it — regional variants thus group under a
// single base emission. Duplicates are dropped globally, order preserved.
func ExpandLanguageList(languagePrefs string) string {
	if languagePrefs == "" {
		return ""
	}
	languages := strings.Split(languagePrefs, ",")
	for i := range languages {
		languages[i] = syntax.TrimLWS(languages[i])
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	builder := acceptLanguageBuilder{sb: sb, seen: make(map[string]struct{}, len(languages))}

	for i, language := range languages {
		builder.addLanguageCode(language)
		// Add the base language only when the next tag is not part of the
		// same family.
		base := baseLanguageCode(language)
		if i+1 >= len(languages) || baseLanguageCode(languages[i+1]) != base {
			builder.addLanguageCode(base)
		}
	}
	return sb.String()
}

// GenerateAcceptLanguageHeader attaches descending q values to a
// comma-separated language list: the first tag carries an implicit q=1.0,
// each following tag steps down by 0.1. Quality is tracked in integer
// tenths, never reaching zero — the floor is q=0.1.
//
// The input is assumed to be a well-formed preference list without embedded
// whitespace.
func GenerateAcceptLanguageHeader(rawLanguageList string) string {
	// q values ten times their actual size sidestep floating-point
	// comparison.
	const qvalueDecrement10 = 1
	qvalue10 := 10

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	languages := syntax.NewTokenizer(rawLanguageList, ',')
	for languages.Next() {
		language := languages.Token()
		if qvalue10 == 10 {
			// q=1.0 is implicit.
			sb.WriteString(language)
		} else {
			sb.WriteByte(',')
			sb.WriteString(language)
			sb.WriteString(";q=0.")
			sb.WriteString(strconv.Itoa(qvalue10))
		}
		// 'q=0' would make no sense.
		if qvalue10 > qvalueDecrement10 {
			qvalue10 -= qvalueDecrement10
		}
	}
	return sb.String()
}

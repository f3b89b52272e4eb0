package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions tunes Normalize. The zero value is the default behaviour.
type NormalizeOptions struct {
	// FoldDiacritics maps accented letters to their base letter before
	// stripping, so "café" becomes "cafe" instead of "caf".
	FoldDiacritics bool
}

// Normalize keeps ASCII letters, digits and whitespace, turns '/' into a space
// and drops every other character. Dropped characters are not replaced, so
// "C++" becomes "C" and "Node.js" becomes "Nodejs".
func Normalize(text string) string {
	return NormalizeWith(text, NormalizeOptions{})
}

// NormalizeWith is Normalize with options.
func NormalizeWith(text string, opts NormalizeOptions) string {
	if text == "" {
		return ""
	}

	if opts.FoldDiacritics {
		text = foldDiacritics(text)
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '/':
			b.WriteByte(' ')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func foldDiacritics(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}

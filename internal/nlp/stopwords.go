package nlp

import (
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var stopWordsList string

var stopWords = parseWordList(stopWordsList)

// IsStopWord reports whether word (any case) is an English stop-word.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// StopWords returns a copy of the built-in English stop-word set.
func StopWords() map[string]struct{} {
	out := make(map[string]struct{}, len(stopWords))
	for w := range stopWords {
		out[w] = struct{}{}
	}
	return out
}

// ParseWordList splits content on whitespace into a lowercase set. Lines
// starting with '#' are comments.
func ParseWordList(content string) map[string]struct{} {
	return parseWordList(content)
}

func parseWordList(content string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, w := range strings.Fields(line) {
			words[strings.ToLower(w)] = struct{}{}
		}
	}
	return words
}

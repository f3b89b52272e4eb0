package filtering

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spigell/jd-matcher/internal/nlp"
)

type stopWordsFilter struct {
	disabled bool
	reason   string
	path     string
	extra    map[string]struct{}
}

// NewStopWords creates a filter that removes English stop-words plus any
// configured extras and the words listed in the stop-words file.
func NewStopWords() Filter {
	return &stopWordsFilter{}
}

func (f *stopWordsFilter) Name() string { return "stop_words" }

func (f *stopWordsFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *stopWordsFilter) IsEnabled() bool { return !f.disabled }

func (f *stopWordsFilter) Validate(cfg *Config) error {
	f.extra = make(map[string]struct{})
	f.path = ""
	if cfg == nil {
		return nil
	}

	for _, w := range cfg.ExtraStopWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			f.extra[w] = struct{}{}
		}
	}

	f.path = strings.TrimSpace(cfg.StopWordsFile)
	if f.path == "" {
		return nil
	}

	words, err := LoadWordsFile(f.path)
	if err != nil {
		return fmt.Errorf("getting stop-words from file: %w", err)
	}
	for w := range words {
		f.extra[w] = struct{}{}
	}
	return nil
}

func (f *stopWordsFilter) Apply(_ context.Context, _ Deps, tokens []nlp.Token) ([]nlp.Token, Step, error) {
	initial := len(tokens)
	kept := make([]nlp.Token, 0, len(tokens))
	for _, tok := range tokens {
		if nlp.IsStopWord(tok.Text) {
			continue
		}
		if _, ok := f.extra[strings.ToLower(tok.Text)]; ok {
			continue
		}
		kept = append(kept, tok)
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

func (f *stopWordsFilter) Status() Status {
	details := map[string]string{
		"extra_words": strconv.Itoa(len(f.extra)),
	}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

// LoadWordsFile reads a whitespace separated word list. An empty file yields
// an empty set.
func LoadWordsFile(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return nlp.ParseWordList(string(data)), nil
}

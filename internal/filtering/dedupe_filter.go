package filtering

import (
	"context"
	"strings"

	"github.com/spigell/jd-matcher/internal/nlp"
)

type dedupeFilter struct{}

// NewDedupe creates a filter that lowercases tokens and keeps the first
// occurrence of each.
func NewDedupe() Filter {
	return &dedupeFilter{}
}

func (f *dedupeFilter) Name() string { return "dedupe" }

// Disable is a no-op: a keyword set without duplicates is always required.
func (f *dedupeFilter) Disable(string) {}

func (f *dedupeFilter) IsEnabled() bool { return true }

func (f *dedupeFilter) Validate(*Config) error { return nil }

func (f *dedupeFilter) Apply(_ context.Context, _ Deps, tokens []nlp.Token) ([]nlp.Token, Step, error) {
	initial := len(tokens)
	seen := make(map[string]struct{}, len(tokens))
	kept := make([]nlp.Token, 0, len(tokens))
	for _, tok := range tokens {
		lower := strings.ToLower(tok.Text)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		kept = append(kept, nlp.Token{Text: lower, Tag: tok.Tag})
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

func (f *dedupeFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true}
}

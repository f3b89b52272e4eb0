package filtering

import (
	"context"
	"strings"

	"github.com/spigell/jd-matcher/internal/nlp"
)

type tagsFilter struct {
	disabled bool
	reason   string
	allowed  map[string]struct{}
	ordered  []string
}

// NewTags creates a filter that keeps tokens whose tag is in the allow-list.
func NewTags() Filter {
	return &tagsFilter{}
}

func (f *tagsFilter) Name() string { return "tags" }

func (f *tagsFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *tagsFilter) IsEnabled() bool { return !f.disabled }

func (f *tagsFilter) Validate(cfg *Config) error {
	tags := DefaultAllowedTags
	if cfg != nil && len(cfg.AllowedTags) > 0 {
		tags = cfg.AllowedTags
	}

	f.allowed = make(map[string]struct{}, len(tags))
	f.ordered = f.ordered[:0]
	for _, tag := range tags {
		tag = strings.ToUpper(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := f.allowed[tag]; ok {
			continue
		}
		f.allowed[tag] = struct{}{}
		f.ordered = append(f.ordered, tag)
	}
	return nil
}

func (f *tagsFilter) Apply(_ context.Context, _ Deps, tokens []nlp.Token) ([]nlp.Token, Step, error) {
	initial := len(tokens)
	kept := make([]nlp.Token, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := f.allowed[tok.Tag]; ok {
			kept = append(kept, tok)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

func (f *tagsFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"allowed_tags": strings.Join(f.ordered, ",")},
	}
}

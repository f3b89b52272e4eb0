// Package ai defines the optional resume advisor that turns a match report
// into concrete suggestions.
package ai

import (
	"context"

	"github.com/spigell/jd-matcher/internal/matcher"
)

// Request carries the inputs of one advice call.
type Request struct {
	Resume         string
	JobDescription string
	Report         *matcher.Report
}

// Advice is the advisor answer.
type Advice struct {
	Summary       string   `json:"summary" mapstructure:"summary"`
	Score         float64  `json:"score" mapstructure:"score"`
	Suggestions   []string `json:"suggestions" mapstructure:"suggestions"`
	KeywordsToAdd []string `json:"keywords_to_add" mapstructure:"keywords_to_add"`
	Raw           string   `json:"-" mapstructure:"-"`
}

type Advisor interface {
	Advise(ctx context.Context, req Request) (*Advice, error)
}

package matcher

import (
	"context"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/surgebase/porter2"
	"go.uber.org/zap"

	"github.com/spigell/jd-matcher/internal/filtering"
	"github.com/spigell/jd-matcher/internal/nlp"
)

const (
	StatusMatch   = "Match"
	StatusNoMatch = "No Match"
)

// Record is one row of the comparison table.
type Record struct {
	Index   int    `json:"index"`
	Keyword string `json:"keyword"`
	Status  string `json:"status"`
}

// Report is the outcome of a single comparison.
type Report struct {
	Records          []Record `json:"records"`
	KeywordMatch     float64  `json:"keyword_match"`
	CosineSimilarity float64  `json:"cosine_similarity"`
	JobKeywords      []string `json:"job_keywords"`
	ResumeKeywords   []string `json:"resume_keywords"`
}

// Missing returns the job description keywords absent from the resume.
func (r *Report) Missing() []string {
	var out []string
	for _, rec := range r.Records {
		if rec.Status == StatusNoMatch {
			out = append(out, rec.Keyword)
		}
	}
	return out
}

// Options tunes keyword extraction and comparison.
type Options struct {
	Filters        filtering.Config
	FoldDiacritics bool
	// StemMatch also counts a keyword as matched when its Porter2 stem equals
	// the stem of a resume keyword.
	StemMatch bool
}

// Matcher compares a resume with a job description.
type Matcher struct {
	tagger   nlp.Tagger
	opts     Options
	logger   *zap.Logger
	steps    []filtering.Filter
	stepsErr error
}

// New creates a Matcher. The tagger is shared across calls and must be
// safe for reuse.
func New(tagger nlp.Tagger, opts Options, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Matcher{tagger: tagger, opts: opts, logger: logger}
	m.steps, m.stepsErr = prepareFilters(&m.opts.Filters)
	return m
}

// Tagger returns the tagger the matcher was built with.
func (m *Matcher) Tagger() nlp.Tagger {
	return m.tagger
}

// FilterStatus reports the keyword filter steps as configured.
func (m *Matcher) FilterStatus() ([]filtering.Status, error) {
	if m.stepsErr != nil {
		return nil, m.stepsErr
	}
	return filtering.Describe(m.steps), nil
}

// prepareFilters validates the filter steps once. Word files are read here
// and not per document.
func prepareFilters(cfg *filtering.Config) ([]filtering.Filter, error) {
	steps := filtering.Default()
	if err := filtering.Validate(cfg, steps); err != nil {
		return nil, fmt.Errorf("preparing filters: %w", err)
	}
	return steps, nil
}

// Keywords extracts the keyword set of a single document.
func (m *Matcher) Keywords(ctx context.Context, name, text string) ([]string, error) {
	if m.tagger == nil {
		return nil, fmt.Errorf("%w: tagger is not configured", ErrInvalidInput)
	}
	if m.stepsErr != nil {
		return nil, m.stepsErr
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidInput, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := nlp.NormalizeWith(text, nlp.NormalizeOptions{FoldDiacritics: m.opts.FoldDiacritics})
	tokens, err := m.tagger.Tag(normalized)
	if err != nil {
		return nil, fmt.Errorf("tagging %s: %w", name, err)
	}

	keywords, err := filtering.Run(ctx, filtering.Deps{Logger: m.logger, Document: name}, m.steps, tokens)
	if err != nil {
		return nil, fmt.Errorf("filtering %s: %w", name, err)
	}

	m.logger.Debug("keywords extracted",
		zap.String("document", name),
		zap.String("tagger", m.tagger.Name()),
		zap.Strings("keywords", keywords),
	)
	return keywords, nil
}

// Compare extracts keywords from both texts, compares the sets and scores
// the raw texts with cosine similarity.
func (m *Matcher) Compare(ctx context.Context, resume, jobDescription string) (*Report, error) {
	resumeKeywords, err := m.Keywords(ctx, "resume", resume)
	if err != nil {
		return nil, err
	}

	jobKeywords, err := m.Keywords(ctx, "job_description", jobDescription)
	if err != nil {
		return nil, err
	}

	records, percentage, err := compareKeywords(resumeKeywords, jobKeywords, m.opts.StemMatch)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		Records:          records,
		KeywordMatch:     percentage,
		CosineSimilarity: CosineSimilarity(resume, jobDescription),
		JobKeywords:      jobKeywords,
		ResumeKeywords:   resumeKeywords,
	}

	m.logger.Info("comparison done",
		zap.Int("job_keywords", len(jobKeywords)),
		zap.Int("resume_keywords", len(resumeKeywords)),
		zap.Float64("keyword_match", report.KeywordMatch),
		zap.Float64("cosine_similarity", report.CosineSimilarity),
	)
	return report, nil
}

func compareKeywords(resume, job []string, stem bool) ([]Record, float64, error) {
	if len(job) == 0 {
		return nil, 0, ErrEmptyKeywordSet
	}

	present := make(map[string]struct{}, len(resume))
	stems := make(map[string]struct{}, len(resume))
	for _, kw := range resume {
		present[kw] = struct{}{}
		if stem {
			stems[porter2.Stem(kw)] = struct{}{}
		}
	}

	records := make([]Record, 0, len(job))
	matched := 0
	for i, kw := range job {
		_, ok := present[kw]
		if !ok && stem {
			_, ok = stems[porter2.Stem(kw)]
		}

		status := StatusNoMatch
		if ok {
			status = StatusMatch
			matched++
		}
		records = append(records, Record{Index: i, Keyword: kw, Status: status})
	}

	return records, round2(100 * float64(matched) / float64(len(job))), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

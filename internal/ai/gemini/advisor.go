package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/jd-matcher/internal/ai"
	"github.com/spigell/jd-matcher/internal/matcher"
	"github.com/spigell/jd-matcher/internal/report"
	"github.com/spigell/jd-matcher/internal/utils"
)

const (
	systemInstruction   = "You are a resume strategist. Reply with JSON only."
	defaultMaxLogLength = 200
)

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

// Advisor asks Gemini for resume improvements based on a match report.
type Advisor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewAdvisor(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Advisor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Advisor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (a *Advisor) Advise(ctx context.Context, req ai.Request) (*ai.Advice, error) {
	if req.Report == nil {
		return nil, errors.New("match report is required")
	}
	if strings.TrimSpace(req.Resume) == "" || strings.TrimSpace(req.JobDescription) == "" {
		return nil, errors.New("resume and job description are required")
	}

	prompt := buildPrompt(req)

	a.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	advice, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}
	advice.Raw = raw
	return advice, nil
}

func buildPrompt(req ai.Request) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Job description:\n{{JOB_DESCRIPTION}}\n\nResume:\n{{RESUME}}\n\nMissing keywords: {{MISSING}}\n\nJSON Response:"
	}

	var matched []string
	for _, rec := range req.Report.Records {
		if rec.Status == matcher.StatusMatch {
			matched = append(matched, rec.Keyword)
		}
	}

	r := strings.NewReplacer(
		"{{KEYWORD_MATCH}}", report.Percent(req.Report.KeywordMatch),
		"{{COSINE}}", report.Percent(req.Report.CosineSimilarity),
		"{{MATCHED}}", joinOrNone(matched),
		"{{MISSING}}", joinOrNone(req.Report.Missing()),
		"{{JOB_DESCRIPTION}}", strings.TrimSpace(req.JobDescription),
		"{{RESUME}}", strings.TrimSpace(req.Resume),
	)
	return r.Replace(template)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func parseResponse(raw string) (*ai.Advice, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	advice := &ai.Advice{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           advice,
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	advice.Summary = strings.TrimSpace(advice.Summary)
	advice.Suggestions = compact(advice.Suggestions)
	advice.KeywordsToAdd = compact(advice.KeywordsToAdd)
	return advice, nil
}

func compact(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

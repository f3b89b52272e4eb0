package gemini

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/jd-matcher/internal/ai"
	"github.com/spigell/jd-matcher/internal/matcher"
)

type stubGenerator struct {
	response   string
	err        error
	lastSystem string
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, prompt string) (string, error) {
	s.lastSystem = system
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func sampleRequest() ai.Request {
	return ai.Request{
		Resume:         "Python developer",
		JobDescription: "Python Java AWS",
		Report: &matcher.Report{
			Records: []matcher.Record{
				{Index: 0, Keyword: "python", Status: matcher.StatusMatch},
				{Index: 1, Keyword: "java", Status: matcher.StatusNoMatch},
				{Index: 2, Keyword: "aws", Status: matcher.StatusNoMatch},
			},
			KeywordMatch:     33.33,
			CosineSimilarity: 40.82,
		},
	}
}

func TestAdvisorAdvise(t *testing.T) {
	stub := &stubGenerator{response: "```json\n" + `{"summary": " Decent fit ", "score": "72", "suggestions": ["Mention AWS projects", " "], "keywords_to_add": "aws"}` + "\n```"}
	advisor := NewAdvisor(stub, zap.NewNop(), 0)

	advice, err := advisor.Advise(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if advice.Summary != "Decent fit" {
		t.Fatalf("unexpected summary: %q", advice.Summary)
	}
	if advice.Score != 72 {
		t.Fatalf("expected score 72, got %v", advice.Score)
	}
	if !reflect.DeepEqual(advice.Suggestions, []string{"Mention AWS projects"}) {
		t.Fatalf("unexpected suggestions: %v", advice.Suggestions)
	}
	if !reflect.DeepEqual(advice.KeywordsToAdd, []string{"aws"}) {
		t.Fatalf("unexpected keywords: %v", advice.KeywordsToAdd)
	}
	if advice.Raw != stub.response {
		t.Fatalf("expected raw response to be kept")
	}

	if stub.lastSystem != systemInstruction {
		t.Fatalf("unexpected system instruction: %q", stub.lastSystem)
	}
	for _, want := range []string{"Missing keywords: java, aws", "Matched keywords: python", "Keyword match: 33.33%", "Python Java AWS"} {
		if !strings.Contains(stub.lastPrompt, want) {
			t.Fatalf("expected %q in prompt:\n%s", want, stub.lastPrompt)
		}
	}
	if strings.Contains(stub.lastPrompt, "{{") {
		t.Fatalf("unreplaced placeholder in prompt:\n%s", stub.lastPrompt)
	}
}

func TestAdvisorErrors(t *testing.T) {
	advisor := NewAdvisor(&stubGenerator{response: "not json"}, nil, 0)
	if _, err := advisor.Advise(context.Background(), sampleRequest()); err == nil {
		t.Fatal("expected parse error")
	}

	if _, err := advisor.Advise(context.Background(), ai.Request{Resume: "a", JobDescription: "b"}); err == nil {
		t.Fatal("expected error without report")
	}

	genErr := errors.New("boom")
	advisor = NewAdvisor(&stubGenerator{err: genErr}, nil, 0)
	if _, err := advisor.Advise(context.Background(), sampleRequest()); !errors.Is(err, genErr) {
		t.Fatalf("expected generator error, got %v", err)
	}
}

func TestAdvisorLogsTruncatedPreviews(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	advisor := NewAdvisor(&stubGenerator{response: `{"summary": "ok"}`}, zap.New(core), 10)

	if _, err := advisor.Advise(context.Background(), sampleRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := observed.FilterMessage("gemini generate content request").All()
	if len(entries) != 1 {
		t.Fatalf("expected request log entry, got %d", len(entries))
	}
	preview, _ := entries[0].ContextMap()["prompt_preview"].(string)
	if !strings.HasSuffix(preview, "...") || len([]rune(preview)) != 13 {
		t.Fatalf("unexpected preview: %q", preview)
	}
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		"  {\"a\":1} ":            `{"a":1}`,
	}
	for in, expect := range tests {
		if got := extractJSON(in); got != expect {
			t.Fatalf("extractJSON(%q) = %q, want %q", in, got, expect)
		}
	}
}

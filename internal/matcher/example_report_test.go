package matcher_test

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/jd-matcher/internal/matcher"
	"github.com/spigell/jd-matcher/internal/nlp"
	"github.com/spigell/jd-matcher/internal/report"
)

func TestCompareRendersIdenticalReports(t *testing.T) {
	m := matcher.New(nlp.NewCaseTagger(), matcher.Options{}, zap.NewNop())
	resume := "Built Kafka pipelines on AWS with Terraform."
	job := "We need Kafka, AWS and Kubernetes experience."

	first, err := m.Compare(context.Background(), resume, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.Compare(context.Background(), resume, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a, b := report.Text(first), report.Text(second); a != b {
		t.Fatalf("rendered reports differ:\n%s\n%s", a, b)
	}
}

func TestCompareWithProseTagger(t *testing.T) {
	m := matcher.New(nlp.NewProseTagger(), matcher.Options{}, zap.NewNop())

	got, err := m.Compare(context.Background(), "Experience with Python and Docker", "Python Java AWS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []matcher.Record{
		{Index: 0, Keyword: "python", Status: matcher.StatusMatch},
		{Index: 1, Keyword: "java", Status: matcher.StatusNoMatch},
		{Index: 2, Keyword: "aws", Status: matcher.StatusNoMatch},
	}
	if !reflect.DeepEqual(got.Records, expected) {
		t.Fatalf("unexpected records: %+v", got.Records)
	}
	if got.KeywordMatch != 33.33 {
		t.Fatalf("expected 33.33, got %v", got.KeywordMatch)
	}
	if text := report.Text(got); text == "" {
		t.Fatal("expected rendered report")
	}
}

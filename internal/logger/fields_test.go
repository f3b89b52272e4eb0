package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  document  ", Value: "  resume  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "document" || fields[0].String != "resume" {
		t.Fatalf("unexpected field: %+v", fields[0])
	}

	if empty := StringFields(); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	enriched := WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
	enriched.Info("another log")
}

func TestDocumentAndCommonFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []zap.Field
		expect map[string]any
	}{
		{
			name:   "document",
			fields: DocumentFields("resume", " cv.pdf "),
			expect: map[string]any{FieldDocument: "resume", FieldPath: "cv.pdf"},
		},
		{
			name:   "document without path",
			fields: DocumentFields("job_description", ""),
			expect: map[string]any{FieldDocument: "job_description"},
		},
		{
			name:   "ai",
			fields: CommonFields("  gemini  ", "gemini-2.5-pro"),
			expect: map[string]any{FieldProvider: "gemini", FieldModel: "gemini-2.5-pro"},
		},
		{
			name:   "empty",
			fields: CommonFields("", ""),
			expect: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, observed := observer.New(zapcore.InfoLevel)
			WithFields(zap.New(core), tt.fields...).Info("test log")

			entries := observed.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry, got %d", len(entries))
			}

			ctx := entries[0].ContextMap()
			if len(ctx) != len(tt.expect) {
				t.Fatalf("expected %d fields, got %v", len(tt.expect), ctx)
			}
			for key, value := range tt.expect {
				if ctx[key] != value {
					t.Fatalf("expected %s=%v, got %v", key, value, ctx[key])
				}
			}
		})
	}
}

func TestWithCommonFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	WithCommonFields(zap.New(core), "gemini", "model-x").Info("test log")

	ctx := observed.All()[0].ContextMap()
	if ctx[FieldProvider] != "gemini" || ctx[FieldModel] != "model-x" {
		t.Fatalf("unexpected fields: %v", ctx)
	}

	if WithCommonFields(nil, "gemini", "model-x") == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}
}

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		log, err := New(json, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !log.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug level to be enabled")
		}
	}

	log, err := New(false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be disabled")
	}
}

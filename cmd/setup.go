package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jd-matcher/internal/ai"
	"github.com/spigell/jd-matcher/internal/ai/gemini"
	"github.com/spigell/jd-matcher/internal/document"
	"github.com/spigell/jd-matcher/internal/filtering"
	"github.com/spigell/jd-matcher/internal/logger"
	"github.com/spigell/jd-matcher/internal/matcher"
	"github.com/spigell/jd-matcher/internal/nlp"
	"github.com/spigell/jd-matcher/internal/secrets"
)

func loggerFromViper(v *viper.Viper) (*zap.Logger, error) {
	return logger.New(v.GetBool("json"), v.GetBool("debug"))
}

// newMatcher builds the tagger once and hands it to the matcher.
func newMatcher(cfg *MatcherConfig, log *zap.Logger) (*matcher.Matcher, error) {
	tagger, err := nlp.TaggerByName(cfg.Tagger)
	if err != nil {
		return nil, err
	}

	opts := matcher.Options{
		Filters: filtering.Config{
			AllowedTags:    cfg.AllowedTags,
			ExtraStopWords: cfg.ExtraStopWords,
			StopWordsFile:  cfg.StopWordsFile,
		},
		FoldDiacritics: cfg.FoldDiacritics,
		StemMatch:      cfg.StemMatch,
	}

	log.Debug("matcher configured",
		zap.String("tagger", tagger.Name()),
		zap.Strings("allowed_tags", cfg.AllowedTags),
		zap.Bool("fold_diacritics", cfg.FoldDiacritics),
		zap.Bool("stem_match", cfg.StemMatch),
	)

	return matcher.New(tagger, opts, log), nil
}

func newAdvisor(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Advisor, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, fmt.Errorf("ai advisor is disabled (set ai.enabled)")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	gcfg := cfg.Gemini
	if gcfg == nil {
		gcfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  gcfg.APIKeyFile,
		Value: gcfg.APIKey,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model, gcfg.MaxRetries,
		log.With(zap.Int("ai_retry_attempts", gcfg.MaxRetries)))
	if err != nil {
		return nil, err
	}

	advisorLogger := logger.WithCommonFields(log, "gemini", generator.Model())
	return gemini.NewAdvisor(generator, advisorLogger, gcfg.MaxLogLength), nil
}

func loadDocument(kind, path string, log *zap.Logger) (*document.Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%s path is required", kind)
	}

	doc, err := document.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", kind, err)
	}

	fields := append(logger.DocumentFields(kind, path),
		zap.String("format", string(doc.Format)),
		zap.Int("length", len(doc.Text)),
	)
	log.Info("document loaded", fields...)
	return doc, nil
}

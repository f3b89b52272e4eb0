package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords FILE",
	Short: "Print the keywords extracted from a document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		keywords(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)

	keywordsCmd.Flags().Bool("status", false, "also print the keyword filter steps")
}

type keywordsOutput struct {
	Path     string   `json:"path"`
	Tagger   string   `json:"tagger"`
	Keywords []string `json:"keywords"`
}

func keywords(cmd *cobra.Command, path string) {
	logger, err := newCommandLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	format, err := validateFormat(config.Output.Format)
	if err != nil {
		logger.Fatal("checking output format", zap.Error(err))
	}

	doc, err := loadDocument("document", path, logger)
	if err != nil {
		logger.Fatal("loading document", zap.Error(err))
	}

	m, err := newMatcher(config.Matcher, logger)
	if err != nil {
		logger.Fatal("creating the matcher", zap.Error(err))
	}

	kws, err := m.Keywords(context.Background(), "document", doc.Text)
	if err != nil {
		logger.Fatal("extracting keywords", zap.Error(err))
	}

	out := cmd.OutOrStdout()
	if format == formatJSON {
		if err := writeJSON(out, keywordsOutput{Path: path, Tagger: m.Tagger().Name(), Keywords: kws}); err != nil {
			logger.Fatal("writing keywords", zap.Error(err))
		}
	} else {
		for _, kw := range kws {
			fmt.Fprintln(out, kw)
		}
	}

	if status, _ := cmd.Flags().GetBool("status"); status {
		statuses, err := m.FilterStatus()
		if err != nil {
			logger.Fatal("describing filters", zap.Error(err))
		}
		fmt.Fprintln(out, filterStatusTable(statuses))
	}
}

func newCommandLogger() (*zap.Logger, error) {
	return loggerFromViper(viper.GetViper())
}

package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/jd-matcher/internal/document"
)

var convertCmd = &cobra.Command{
	Use:   "convert SOURCE [OUTPUT]",
	Short: "Convert a resume or job description to text, markdown or json",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		convert(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("format", "f", document.OutputMarkdown,
		"output format: "+strings.Join(document.OutputFormats(), ", "))
}

func convert(cmd *cobra.Command, args []string) {
	logger, err := newCommandLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	format, _ := cmd.Flags().GetString("format")

	doc, err := loadDocument("source", args[0], logger)
	if err != nil {
		logger.Fatal("loading document", zap.Error(err))
	}

	converted, err := document.Convert(doc, format)
	if err != nil {
		logger.Fatal("converting document", zap.Error(err))
	}

	if len(args) == 1 {
		fmt.Fprint(cmd.OutOrStdout(), converted)
		return
	}

	if err := os.WriteFile(args[1], []byte(converted), 0o644); err != nil {
		logger.Fatal("writing converted document", zap.Error(err))
	}
	logger.Info("document converted",
		zap.String("source", args[0]),
		zap.String("output", args[1]),
		zap.String("format", format),
	)
}

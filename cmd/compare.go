package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jd-matcher/internal/ai"
	"github.com/spigell/jd-matcher/internal/matcher"
	"github.com/spigell/jd-matcher/internal/report"
)

const (
	PromptShowReport = "Show report"
	PromptMissing    = "Show missing keywords"
	PromptDumpToFile = "Dump report to file"
	PromptAdvise     = "Ask AI advisor"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a resume with a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		compare(cmd)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringP("resume", "r", "", "resume file (txt, md, html or pdf)")
	compareCmd.Flags().String("job-desc", "", "job description file (txt, md, html or pdf)")
	compareCmd.Flags().StringP("format", "f", "", "report format: text or json (default from output.format)")
	compareCmd.Flags().StringP("output", "o", "", "write the report to this file instead of stdout")
	compareCmd.Flags().BoolP("interactive", "i", false, "open an interactive menu after the comparison")
	compareCmd.Flags().BoolP("advise", "a", false, "ask the AI advisor for resume improvements")

	compareCmd.MarkFlagRequired("resume")
	compareCmd.MarkFlagRequired("job-desc")

	viper.BindPFlag("output.format", compareCmd.Flags().Lookup("format"))
}

// session holds the state the interactive menu works on.
type session struct {
	report         *matcher.Report
	resume         string
	jobDescription string
	format         string
	advisor        ai.Advisor
	logger         *zap.Logger
}

func compare(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := newCommandLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the jd-matcher", zap.String("version", version))

	format, err := validateFormat(config.Output.Format)
	if err != nil {
		logger.Fatal("checking output format", zap.Error(err))
	}

	resumePath, _ := cmd.Flags().GetString("resume")
	jobPath, _ := cmd.Flags().GetString("job-desc")

	resume, err := loadDocument("resume", resumePath, logger)
	if err != nil {
		logger.Fatal("loading documents", zap.Error(err))
	}
	job, err := loadDocument("job_description", jobPath, logger)
	if err != nil {
		logger.Fatal("loading documents", zap.Error(err))
	}

	m, err := newMatcher(config.Matcher, logger)
	if err != nil {
		logger.Fatal("creating the matcher", zap.Error(err))
	}

	result, err := m.Compare(ctx, resume.Text, job.Text)
	if err != nil {
		if errors.Is(err, matcher.ErrEmptyKeywordSet) {
			logger.Fatal("comparing documents", zap.Error(err),
				zap.String("hint", "extend matcher.allowed-tags or check the job description text"),
			)
		}
		logger.Fatal("comparing documents", zap.Error(err))
	}

	s := &session{
		report:         result,
		resume:         resume.Text,
		jobDescription: job.Text,
		format:         format,
		logger:         logger,
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	advise, _ := cmd.Flags().GetBool("advise")

	if advise || interactive {
		advisor, err := newAdvisor(ctx, config.AI, logger)
		switch {
		case err == nil:
			s.advisor = advisor
		case advise:
			logger.Fatal("creating the ai advisor", zap.Error(err))
		default:
			logger.Warn("skipping AI advisor", zap.Error(err))
		}
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := writeReportFile(path, format, result); err != nil {
			logger.Fatal("writing the report", zap.Error(err))
		}
		logger.Info("report written", zap.String("filename", path))
	} else if err := writeReport(out, format, result); err != nil {
		logger.Fatal("writing the report", zap.Error(err))
	}

	if advise {
		if err := s.advise(ctx, out, config.AI.Gemini.Timeout); err != nil {
			logger.Fatal("getting ai advice", zap.Error(err))
		}
	}

	if !interactive {
		return
	}

	for {
		prompt := promptui.Select{
			Label: "What next?",
			Items: s.actions(),
		}

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, out, action, s, config.AI.Gemini.Timeout); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func (s *session) actions() []string {
	items := []string{PromptShowReport, PromptMissing, PromptDumpToFile}
	if s.advisor != nil {
		items = append(items, PromptAdvise)
	}
	return append(items, PromptExit)
}

func handleAction(ctx context.Context, w io.Writer, action string, s *session, timeout time.Duration) error {
	switch action {
	case PromptShowReport:
		return writeReport(w, s.format, s.report)
	case PromptMissing:
		return writeMissing(w, s.report)
	case PromptDumpToFile:
		filename, err := report.DumpToTmpFile(s.report)
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		s.logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptAdvise:
		if s.advisor == nil {
			return errors.New("ai advisor is not configured")
		}
		return s.advise(ctx, w, timeout)
	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (s *session) advise(ctx context.Context, w io.Writer, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	advice, err := s.advisor.Advise(ctx, ai.Request{
		Resume:         s.resume,
		JobDescription: s.jobDescription,
		Report:         s.report,
	})
	if err != nil {
		return err
	}
	return writeAdvice(w, s.format, advice)
}

func writeReportFile(path, format string, r *matcher.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeReport(f, format, r); err != nil {
		return err
	}
	return f.Close()
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spigell/jd-matcher/internal/ai"
	"github.com/spigell/jd-matcher/internal/matcher"
	"github.com/spigell/jd-matcher/internal/report"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func validateFormat(format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "", formatText:
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use %s or %s)", format, formatText, formatJSON)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeReport(w io.Writer, format string, r *matcher.Report) error {
	if format == formatJSON {
		return report.JSON(w, r)
	}
	_, err := io.WriteString(w, report.Text(r))
	return err
}

func writeMissing(w io.Writer, r *matcher.Report) error {
	missing := r.Missing()
	if len(missing) == 0 {
		_, err := fmt.Fprintln(w, "All job description keywords are present in the resume.")
		return err
	}
	_, err := fmt.Fprintf(w, "Missing keywords (%d): %s\n", len(missing), strings.Join(missing, ", "))
	return err
}

func writeAdvice(w io.Writer, format string, advice *ai.Advice) error {
	if format == formatJSON {
		return writeJSON(w, advice)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "AI advice (fit score %s%%):\n", report.Percent(advice.Score))
	if advice.Summary != "" {
		b.WriteString(advice.Summary)
		b.WriteString("\n")
	}
	for _, s := range advice.Suggestions {
		fmt.Fprintf(&b, "  - %s\n", s)
	}
	if len(advice.KeywordsToAdd) > 0 {
		fmt.Fprintf(&b, "Keywords to add: %s\n", strings.Join(advice.KeywordsToAdd, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

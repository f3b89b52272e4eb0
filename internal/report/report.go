// Package report renders match reports for people and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/spigell/jd-matcher/internal/matcher"
)

const (
	Title          = "Comparing Resume and Job Description:"
	Recommendation = "Try to include unmatched keywords in your Resume to improve the JD-Resume compatibility."
)

var headers = table.Row{"ID", "JD Keyword", "JD-Resume Match Result"}

// Text renders the report as the title, the keyword table, both percentages
// and the recommendation line.
func Text(r *matcher.Report) string {
	var b strings.Builder
	b.WriteString(Title)
	b.WriteString("\n")
	b.WriteString(Table(r.Records))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Match percentage based on Keywords: %s%%\n", Percent(r.KeywordMatch))
	fmt.Fprintf(&b, "Match percentage based on cosine similarity: %s%%\n", Percent(r.CosineSimilarity))
	b.WriteString(Recommendation)
	b.WriteString("\n")
	return b.String()
}

// Table renders match records as an ASCII table.
func Table(records []matcher.Record) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(headers)

	for _, rec := range records {
		tw.AppendRow(table.Row{strconv.Itoa(rec.Index), rec.Keyword, rec.Status})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// Percent formats a percentage with exactly two decimals.
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

type jsonReport struct {
	ID               string           `json:"id"`
	Records          []matcher.Record `json:"records"`
	KeywordMatch     float64          `json:"keyword_match"`
	CosineSimilarity float64          `json:"cosine_similarity"`
	Missing          []string         `json:"missing"`
	JobKeywords      []string         `json:"job_keywords"`
	ResumeKeywords   []string         `json:"resume_keywords"`
}

func toJSON(r *matcher.Report, id string) jsonReport {
	missing := r.Missing()
	if missing == nil {
		missing = []string{}
	}
	return jsonReport{
		ID:               id,
		Records:          r.Records,
		KeywordMatch:     r.KeywordMatch,
		CosineSimilarity: r.CosineSimilarity,
		Missing:          missing,
		JobKeywords:      r.JobKeywords,
		ResumeKeywords:   r.ResumeKeywords,
	}
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, r *matcher.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(r, uuid.NewString()))
}

// DumpToTmpFile stores the report as JSON in a new temporary file and
// returns its path.
func DumpToTmpFile(r *matcher.Report) (string, error) {
	id := uuid.NewString()
	file, err := os.CreateTemp("", "jd-match-"+id+"-*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(r, id)); err != nil {
		return "", err
	}
	return file.Name(), nil
}

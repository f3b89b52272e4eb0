package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/spigell/jd-matcher/internal/filtering"
)

func renderTable(headers []string, rows [][]string) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}

func filterStatusTable(statuses []filtering.Status) string {
	rows := make([][]string, 0, len(statuses))
	for _, st := range statuses {
		enabled := "yes"
		if !st.Enabled {
			enabled = "no"
		}

		details := ""
		for _, key := range []string{"allowed_tags", "extra_words", "path"} {
			if v, ok := st.Details[key]; ok {
				if details != "" {
					details += " "
				}
				details += key + "=" + v
			}
		}
		rows = append(rows, []string{st.Name, enabled, details})
	}
	return renderTable([]string{"Filter", "Enabled", "Details"}, rows)
}

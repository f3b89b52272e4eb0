package document

import (
	"encoding/json"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Output formats accepted by Convert.
const (
	OutputText     = "text"
	OutputMarkdown = "md"
	OutputJSON     = "json"
)

// OutputFormats lists the values accepted by Convert.
func OutputFormats() []string {
	return []string{OutputText, OutputMarkdown, OutputJSON}
}

// Convert renders doc in the requested output format. HTML input converted
// to Markdown keeps its structure; other inputs are written as extracted.
func Convert(doc *Document, output string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case OutputText, "txt":
		return doc.Text, nil
	case OutputMarkdown, "markdown":
		return toMarkdown(doc)
	case OutputJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("%w: output %q", ErrUnsupportedFormat, output)
	}
}

func toMarkdown(doc *Document) (string, error) {
	switch doc.Format {
	case FormatMarkdown:
		return doc.raw, nil
	case FormatHTML:
		cleaned, err := cleanHTML(doc.raw)
		if err != nil {
			return "", fmt.Errorf("cleaning html: %w", err)
		}
		md, err := htmltomarkdown.ConvertString(cleaned)
		if err != nil {
			return "", fmt.Errorf("converting to markdown: %w", err)
		}
		return strings.TrimSpace(md) + "\n", nil
	default:
		return doc.Text, nil
	}
}

// Package document loads resumes and job descriptions from files and turns
// them into plain text for the matcher.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format is a supported input format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

// ErrUnsupportedFormat is returned for files whose extension is not known.
var ErrUnsupportedFormat = errors.New("unsupported document format")

var extensions = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".pdf":      FormatPDF,
}

// Document is a loaded file.
type Document struct {
	Path   string `json:"path"`
	Format Format `json:"format"`
	// Text is the extracted plain text.
	Text string `json:"text"`
	// Pages is set for PDF input only.
	Pages int `json:"pages,omitempty"`

	raw string
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return format, nil
}

// Load reads path and extracts its text according to the file extension.
func Load(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	doc := &Document{Path: path, Format: format}

	if format == FormatPDF {
		text, pages, err := extractPDF(path)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", path, err)
		}
		doc.Text = text
		doc.Pages = pages
		return doc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc.raw = string(data)

	switch format {
	case FormatHTML:
		text, err := htmlToText(doc.raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		doc.Text = text
	default:
		doc.Text = doc.raw
	}

	return doc, nil
}

// LoadText is Load returning the extracted text only.
func LoadText(path string) (string, error) {
	doc, err := Load(path)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

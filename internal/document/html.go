package document

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const noise = "script, style, nav, header, footer, iframe, noscript"

// Elements that start and end a line of text. Everything else is inline.
var blocks = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "dd": {},
	"div": {}, "dl": {}, "dt": {}, "fieldset": {}, "figcaption": {},
	"figure": {}, "form": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {},
	"h5": {}, "h6": {}, "hr": {}, "li": {}, "main": {}, "ol": {}, "p": {},
	"pre": {}, "section": {}, "table": {}, "td": {}, "th": {}, "tr": {},
	"ul": {},
}

type lineWriter struct {
	lines []string
	cur   strings.Builder
}

func (w *lineWriter) flush() {
	text := strings.Join(strings.Fields(w.cur.String()), " ")
	if text != "" {
		w.lines = append(w.lines, text)
	}
	w.cur.Reset()
}

func (w *lineWriter) walk(s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		switch {
		case name == "#text":
			w.cur.WriteString(c.Text())
		case name == "br":
			w.flush()
		case isBlock(name):
			w.flush()
			w.walk(c)
			w.flush()
		default:
			w.walk(c)
		}
	})
}

func isBlock(name string) bool {
	_, ok := blocks[name]
	return ok
}

// htmlToText returns the visible body text with one line per block element.
// Inline markup is joined into the surrounding line.
func htmlToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find(noise).Remove()

	var w lineWriter
	w.walk(doc.Find("body"))
	w.flush()
	return strings.Join(w.lines, "\n"), nil
}

func cleanHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find(noise).Remove()
	return doc.Html()
}

package document

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleHTML = `<html>
<head><style>body { color: red; }</style><script>track()</script></head>
<body>
<nav>Home | Jobs</nav>
<h1>Senior Go Engineer</h1>
<p>We use <b>Kafka</b> and AWS.</p>
<ul><li>Kubernetes</li><li>Terraform</li></ul>
<footer>Copyright</footer>
</body>
</html>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"cv.txt":     FormatText,
		"CV.MD":      FormatMarkdown,
		"job.htm":    FormatHTML,
		"resume.pdf": FormatPDF,
		"notes.text": FormatText,
		"a/b/c.html": FormatHTML,
		"x.markdown": FormatMarkdown,
	}
	for path, expect := range tests {
		got, err := DetectFormat(path)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", path, err)
		}
		if got != expect {
			t.Fatalf("%s: expected %s, got %s", path, expect, got)
		}
	}

	if _, err := DetectFormat("resume.docx"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "resume.txt", "Python developer\nAWS")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "Python developer\nAWS" || doc.Format != FormatText {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestLoadHTML(t *testing.T) {
	text, err := LoadText(writeFile(t, "job.html", sampleHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "Senior Go Engineer\nWe use Kafka and AWS.\nKubernetes\nTerraform"
	if text != expected {
		t.Fatalf("expected %q, got %q", expected, text)
	}
}

func TestHTMLToTextKeepsNonParagraphBlocks(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "div and span",
			html:     "<p>About us</p><div>Requirements: Kafka, AWS, Terraform</div><span>Remote</span>",
			expected: "About us\nRequirements: Kafka, AWS, Terraform\nRemote",
		},
		{
			name:     "sections with line breaks",
			html:     "<section><h2>Stack</h2>Go<br>Postgres</section><article><div><span>Docker</span> and <i>Helm</i></div></article>",
			expected: "Stack\nGo\nPostgres\nDocker and Helm",
		},
		{
			name:     "bare body text",
			html:     "<body>  Kafka   engineer </body>",
			expected: "Kafka engineer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := htmlToText(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if text != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, text)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestConvertMarkdownFromHTML(t *testing.T) {
	doc, err := Load(writeFile(t, "job.html", sampleHTML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	md, err := Convert(doc, OutputMarkdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"# Senior Go Engineer", "**Kafka**", "Kubernetes"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in markdown:\n%s", want, md)
		}
	}
	for _, unwanted := range []string{"track()", "Copyright", "Home | Jobs"} {
		if strings.Contains(md, unwanted) {
			t.Fatalf("unexpected %q in markdown:\n%s", unwanted, md)
		}
	}
}

func TestConvertJSONAndText(t *testing.T) {
	doc, err := Load(writeFile(t, "cv.md", "# CV\n\nGo and Kafka"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := Convert(doc, "txt")
	if err != nil || text != "# CV\n\nGo and Kafka" {
		t.Fatalf("unexpected text conversion %q: %v", text, err)
	}

	out, err := Convert(doc, OutputJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded Document
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Format != FormatMarkdown || decoded.Text != doc.Text {
		t.Fatalf("unexpected decoded document: %+v", decoded)
	}

	if _, err := Convert(doc, "docx"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

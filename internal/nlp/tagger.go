package nlp

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// Penn Treebank tags used by the keyword filters.
const (
	TagProperNoun  = "NNP"
	TagNoun        = "NN"
	TagVerbPresent = "VBP"
	TagAdjective   = "JJ"
	TagCardinal    = "CD"
	TagDeterminer  = "DT"
)

const proseModelName = "en-v2.0.0"

// Token is a word unit with its part-of-speech tag.
type Token struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// Tagger splits normalized text into tagged tokens, preserving input order.
type Tagger interface {
	Name() string
	Tag(text string) ([]Token, error)
}

// ProseTagger tags tokens with the averaged perceptron model shipped with prose.
type ProseTagger struct {
	model *prose.Model
}

// NewProseTagger loads the tagging model. Build it once and share it.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{model: prose.ModelFromData(proseModelName)}
}

func (t *ProseTagger) Name() string { return "prose" }

func (t *ProseTagger) Tag(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.UsingModel(t.model),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}

	tokens := doc.Tokens()
	result := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		result = append(result, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return result, nil
}

// CaseTagger is a model-free tagger: whitespace tokens, digits are CD,
// stop-words are DT, capitalised words are NNP and everything else is NN.
type CaseTagger struct{}

// NewCaseTagger returns the model-free tagger.
func NewCaseTagger() *CaseTagger {
	return &CaseTagger{}
}

func (t *CaseTagger) Name() string { return "case" }

func (t *CaseTagger) Tag(text string) ([]Token, error) {
	fields := strings.Fields(text)
	result := make([]Token, 0, len(fields))
	for _, f := range fields {
		result = append(result, Token{Text: f, Tag: caseTag(f)})
	}
	return result, nil
}

func caseTag(word string) string {
	if isNumber(word) {
		return TagCardinal
	}
	if IsStopWord(word) {
		return TagDeterminer
	}
	first := []rune(word)[0]
	if unicode.IsUpper(first) {
		return TagProperNoun
	}
	return TagNoun
}

func isNumber(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

var taggers = map[string]func() Tagger{
	"prose": func() Tagger { return NewProseTagger() },
	"case":  func() Tagger { return NewCaseTagger() },
}

// TaggerByName builds a registered tagger. An empty name selects prose.
func TaggerByName(name string) (Tagger, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "prose"
	}
	build, ok := taggers[name]
	if !ok {
		return nil, fmt.Errorf("unknown tagger %q (available: %s)", name, strings.Join(TaggerNames(), ", "))
	}
	return build(), nil
}

// TaggerNames lists the registered tagger names in sorted order.
func TaggerNames() []string {
	names := make([]string, 0, len(taggers))
	for name := range taggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

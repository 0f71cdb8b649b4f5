// Package markup extracts class attribute values from markup text.
package markup

import (
	"regexp"
	"sort"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
	"go.uber.org/zap"
)

// Extractor scans text for class-attribute values and yields individual
// class names in source order. Input does not have to be well-formed markup:
// tags are tokenized with an HTML lexer, anything the lexer sees as plain
// text (for example a selection cut in the middle of a tag) is re-scanned
// with an attribute pattern so no class is lost.
type Extractor struct {
	log     *zap.Logger
	attrs   map[string]bool
	textPat *regexp.Regexp
}

// NewExtractor creates a new extractor. attributes lists attribute names to
// collect; when empty the conventional "class" and "className" are used.
func NewExtractor(log *zap.Logger, attributes ...string) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	if len(attributes) == 0 {
		attributes = []string{"class", "className"}
	}

	attrs := make(map[string]bool, len(attributes))
	quoted := make([]string, 0, len(attributes))
	for _, a := range attributes {
		attrs[strings.ToLower(a)] = true
		quoted = append(quoted, regexp.QuoteMeta(a))
	}
	// longest name first so "className" is not shadowed by "class"
	sort.Slice(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })

	return &Extractor{
		log:     log.Named("markup"),
		attrs:   attrs,
		textPat: regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\s*=\s*(?:"([^"]*)"|'([^']*)')`),
	}
}

// Classes returns every whitespace-separated word found inside matched
// class attributes, in the order attributes and words appear in the input.
// No matches produce an empty result, never an error.
func (e *Extractor) Classes(text string) []string {
	var classes []string

	l := html.NewLexer(parse.NewInputString(text))
	for {
		tt, data := l.Next()
		switch tt {
		case html.ErrorToken:
			e.log.Debug("Extracted classes", zap.Int("count", len(classes)), zap.Int("bytes", len(text)))
			return classes
		case html.AttributeToken:
			if !e.attrs[strings.ToLower(string(l.Text()))] {
				continue
			}
			classes = append(classes, strings.Fields(unquote(string(l.AttrVal())))...)
		case html.TextToken:
			classes = append(classes, e.scanText(string(data))...)
		}
	}
}

// scanText picks class attributes out of raw text that was not recognized as
// tag content.
func (e *Extractor) scanText(text string) []string {
	var classes []string
	for _, m := range e.textPat.FindAllStringSubmatch(text, -1) {
		val := m[1]
		if val == "" {
			val = m[2]
		}
		classes = append(classes, strings.Fields(val)...)
	}
	return classes
}

// unquote removes surrounding quotes from an attribute value.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

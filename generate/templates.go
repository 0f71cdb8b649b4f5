package generate

import (
	"bytes"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"go.uber.org/zap"
)

// Values is a struct that holds variables we make available for output name
// template expansion.
type Values struct {
	Context    string // always "generate"
	SourceFile string // source path relative to the walk root
	Blocks     int    // number of top level blocks in the result
	Classes    int    // number of class words extracted from the source
}

// expandOutputNameTemplate renders the configured output name template.
// Empty result or expansion failure falls back to default naming upstream.
func expandOutputNameTemplate(tmplText string, v Values, log *zap.Logger) string {
	tmpl, err := template.New("output-name").Funcs(sprig.FuncMap()).Parse(tmplText)
	if err != nil {
		log.Warn("Unable to parse output name template", zap.String("template", tmplText), zap.Error(err))
		return ""
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, v); err != nil {
		log.Warn("Unable to expand output name template", zap.String("template", tmplText), zap.Error(err))
		return ""
	}
	return buf.String()
}

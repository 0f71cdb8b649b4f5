// Package generate drives the markup to SCSS pipeline: extract class
// attributes, split them into BEM components, fold into a selector tree and
// render nested rule skeletons.
package generate

import (
	"go.uber.org/zap"

	"bemc/bem"
	"bemc/config"
	"bemc/markup"
	"bemc/scss"
)

// Options control a single pipeline run.
type Options struct {
	Indent          string
	Sort            config.SortMode
	ClassAttributes []string
}

// FromConfig builds pipeline options from generator configuration.
func FromConfig(cfg *config.GeneratorConfig) Options {
	return Options{
		Indent:          cfg.Indent,
		Sort:            cfg.Sort,
		ClassAttributes: cfg.ClassAttributes,
	}
}

// Generate runs the whole pipeline over text and returns the SCSS skeleton
// for every BEM class found. It is a total function: there are no error
// conditions, classes without a block name are skipped and input without
// class attributes produces empty output.
func Generate(text string, opts Options, log *zap.Logger) string {
	return pipeline(text, opts, log).text
}

// result carries rendered text and counters needed for output naming and logging.
type result struct {
	text    string
	blocks  int
	classes int
}

func pipeline(text string, opts Options, log *zap.Logger) result {
	if log == nil {
		log = zap.NewNop()
	}

	classes := markup.NewExtractor(log, opts.ClassAttributes...).Classes(text)

	forest := scss.NewForest()
	forest.Indent = opts.Indent
	for _, class := range classes {
		c := bem.Parse(class)
		if !c.Valid() {
			log.Debug("Skipping class without block name", zap.String("class", class))
			continue
		}
		forest.Add(c)
	}

	if opts.Sort == config.SortModeCanonical {
		forest.SortCanonical()
	}

	log.Debug("Generated selector tree", zap.Int("classes", len(classes)), zap.Int("blocks", forest.Len()))
	return result{text: forest.String(), blocks: forest.Len(), classes: len(classes)}
}

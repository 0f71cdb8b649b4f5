package generate

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"bemc/config"
	"bemc/state"
)

const outputExt = ".scss"

// buildOutputPath returns constructed output file path/name based on source
// path (relative to the walk root), destination directory and configuration.
// It uses either default naming scheme or user-defined template and takes
// into account whether to preserve source directory structure on the output.
func buildOutputPath(src, dst string, v Values, env *state.LocalEnv, log *zap.Logger) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}

	name := ""
	if env.Cfg.Generator.OutputNameTemplate != "" {
		name = expandOutputNameTemplate(env.Cfg.Generator.OutputNameTemplate, v, log)
	}
	if name == "" {
		// default: source base name with the stylesheet extension
		base := filepath.Base(src)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	name = strings.TrimSuffix(name, outputExt)

	if env.Cfg.Generator.SlugifyNames {
		name = slug.Make(name)
	}
	return filepath.Join(outDir, config.CleanFileName(name)+outputExt)
}

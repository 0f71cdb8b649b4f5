package generate

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/term"
	"golang.org/x/text/encoding/ianaindex"

	"bemc/archive"
	"bemc/config"
	"bemc/state"
)

// Run implements the "generate" subcommand. SOURCE is a markup file,
// directory, zip archive (possibly with a path inside) or "-"/absent for
// standard input. DESTINATION is an output file or directory; when absent,
// single-source output goes to stdout and batch output to the current
// directory.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if s := cmd.String("sort"); s != "" {
		mode, err := config.ParseSortMode(s)
		if err != nil {
			log.Warn("Unknown sort mode requested, keeping configured one", zap.Error(err))
		} else {
			env.Cfg.Generator.Sort = mode
		}
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	src := cmd.Args().Get(0)
	dst := cmd.Args().Get(1)

	if len(src) == 0 || src == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("no input source has been specified")
		}
		return processStream(ctx, os.Stdin, "stdin", dst, log)
	}

	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if len(dst) != 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("sort", env.Cfg.Generator.Sort))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process determines the input type (directory, archive, or single file) and
// dispatches accordingly. An archive source may carry a path inside the
// archive appended to the archive path itself.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return processDir(ctx, head, batchDestination(dst), log)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArc, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArc {
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, tail, "", batchDestination(dst), log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		if len(tail) != 0 {
			// plain file cannot have tail
			return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		// explicitly named file - accept any extension but never binary data
		file, err := os.Open(head)
		if err != nil {
			return fmt.Errorf("unable to open input source: %w", err)
		}
		defer file.Close()
		return processStream(ctx, file, filepath.Base(head), dst, log)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// batchDestination defaults empty destination to the current directory for
// sources producing multiple outputs.
func batchDestination(dst string) string {
	if len(dst) != 0 {
		return dst
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// processDir walks directory tree finding markup files and archives and
// processes them. Individual failures are logged and do not stop the walk.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	env := state.EnvFromContext(ctx)

	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		isArc, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArc {
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), dst, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		if !isMarkupName(path, env.Cfg.Generator.MarkupExtensions) {
			log.Debug("Skipping file, not recognized as markup", zap.String("file", path))
			return nil
		}

		count++

		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processMarkup(ctx, string(data), src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processArchive walks all files inside archive, finds markup files under
// "pathIn" and processes them.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) (err error) {
	env := state.EnvFromContext(ctx)

	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	err = archive.Walk(path, pathIn, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !isMarkupName(f.FileHeader.Name, env.Cfg.Generator.MarkupExtensions) {
			log.Debug("Skipping file, not recognized as markup", zap.String("archive", arc), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}

		cp := env.CodePage

		pathInArchive := f.FileHeader.Name
		if cp != nil && f.FileHeader.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", pathInArchive), zap.Error(err))
			}
		}
		if err := processMarkup(ctx, string(data), filepath.Join(pathOut, pathInArchive), dst, log); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	return err
}

// processStream handles a single explicitly named source (stdin or a direct
// file path): binary data is rejected, output goes to stdout when no
// destination was given.
func processStream(ctx context.Context, r io.Reader, src, dst string, log *zap.Logger) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read input source (%s): %w", src, err)
	}
	if looksBinary(data) {
		return fmt.Errorf("input source does not look like markup text (%s)", src)
	}
	return processMarkup(ctx, string(data), src, dst, log)
}

// processMarkup runs the pipeline over one source. "src" is the source path
// relative to the walk root (or a base name for direct sources), "dst" is
// the destination directory or file; empty dst means stdout.
func processMarkup(ctx context.Context, text, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Generation starting", zap.String("from", src))
	defer func(start time.Time) {
		// when multiple files are being processed we do not want one bad
		// input to stop the batch
		if r := recover(); r != nil {
			log.Error("Generation ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("generation panic: %v", r)
		} else {
			log.Info("Generation completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	res := pipeline(text, FromConfig(&env.Cfg.Generator), log)

	if len(dst) == 0 {
		outputName = "STDOUT"
		if _, err := io.WriteString(os.Stdout, res.text); err != nil {
			return fmt.Errorf("unable to write generated output: %w", err)
		}
		env.Rpt.StoreData(fmt.Sprintf("result/%s%s", filepath.Base(src), outputExt), []byte(res.text))
		return nil
	}

	if res.blocks == 0 {
		log.Debug("No BEM classes found, skipping output", zap.String("from", src))
		return nil
	}

	v := Values{Context: "generate", SourceFile: src, Blocks: res.blocks, Classes: res.classes}
	outputName = buildOutputPath(src, dst, v, env, log)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, []byte(res.text), 0644); err != nil {
		return fmt.Errorf("unable to write generated output: %w", err)
	}

	// Store generation result for debugging
	env.Rpt.Store(fmt.Sprintf("result/%s", filepath.Base(outputName)), outputName)

	return nil
}

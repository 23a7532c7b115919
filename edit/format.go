package edit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"tcss/config"
	"tcss/state"
	"tcss/store"
)

// Format reads stylesheets, normalizes them to canonical form and writes
// the result out. With a single file argument the file is rewritten in
// place, with a destination argument the result goes there instead. A
// source directory formats every *.css file under it into the destination
// directory, preserving relative layout.
func Format(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("fmt")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		src = env.Cfg.Document.StylesheetPath
	}
	if len(src) == 0 {
		return errors.New("no input stylesheet has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("unable to resolve source path: %w", err)
	}

	dst := cmd.Args().Get(1)
	if len(dst) != 0 {
		if dst, err = filepath.Abs(dst); err != nil {
			return fmt.Errorf("unable to resolve destination path: %w", err)
		}
	}

	fstore := files(env, log)
	if name := cmd.String("encoding"); len(name) != 0 {
		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil || enc == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", name), zap.Error(err))
		} else {
			fstore = store.New(log, store.WithEncoding(enc), store.WithBackup(env.Cfg.Document.Backup))
		}
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("unable to access source: %w", err)
	}

	if !fi.IsDir() {
		out := dst
		if len(out) == 0 {
			out = src
		} else if di, err := os.Stat(out); err == nil && di.IsDir() {
			name, err := outputName(env.Cfg.Document, filepath.Base(src))
			if err != nil {
				return err
			}
			out = filepath.Join(out, name)
		}
		return formatOne(env, fstore, log, src, out)
	}

	if len(dst) == 0 {
		dst = src
	}

	count := 0
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".css") {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		name, err := outputName(env.Cfg.Document, filepath.Base(rel))
		if err != nil {
			return err
		}
		out := filepath.Join(dst, filepath.Dir(rel), name)
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}
		if err := formatOne(env, fstore, log, path, out); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("Formatting done", zap.Int("files", count))
	return nil
}

func formatOne(env *state.LocalEnv, fstore *store.Files, log *zap.Logger, src, dst string) error {
	if src != dst && !env.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("destination file already exists: %s (use --overwrite)", dst)
		}
	}

	track(env, src)

	sheet, err := fstore.Load(src)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet %s: %w", src, err)
	}
	if err := fstore.Save(dst, sheet, env.Cfg.Document.Mode()); err != nil {
		return fmt.Errorf("unable to write stylesheet %s: %w", dst, err)
	}
	log.Debug("Formatted stylesheet", zap.String("from", src), zap.String("to", dst))
	return nil
}

// outputName runs the base name of a stylesheet through the configured
// output_name_template. Template gets {{.Name}} and {{.Ext}} and the full
// sprig function set, result is cleaned of characters unusable in file
// names on the current platform.
func outputName(doc config.DocumentConfig, base string) (string, error) {
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if doc.FileNameTransliterate {
		name = slug.Make(name)
	}

	tmpl, err := template.New(string(config.OutputNameTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(doc.OutputNameTemplate)
	if err != nil {
		return "", fmt.Errorf("bad output name template: %w", err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, struct{ Name, Ext string }{Name: name, Ext: ext}); err != nil {
		return "", fmt.Errorf("unable to execute output name template: %w", err)
	}

	out := config.CleanFileName(buf.String())
	if len(out) == 0 {
		return "", fmt.Errorf("output name template produced empty name for %q", base)
	}
	return out, nil
}

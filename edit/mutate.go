package edit

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tcss/css"
	"tcss/state"
)

//go:embed default.css
var starterSheet string

// Set stores a single property value, creating the selector when it does
// not exist yet, and writes the stylesheet back out.
func Set(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("set")

	sel, prop, value := cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2)
	if len(sel) == 0 || len(prop) == 0 || cmd.NArg() < 3 {
		return fmt.Errorf("set requires SELECTOR, PROPERTY and VALUE arguments")
	}

	path, err := styleFile(env, cmd.String("file"))
	if err != nil {
		return err
	}
	track(env, path)

	fstore := files(env, log)
	sheet, err := fstore.Load(path)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet %s: %w", path, err)
	}

	sheet.SetValue(sel, prop, value)

	if err := fstore.Save(path, sheet, env.Cfg.Document.Mode()); err != nil {
		return fmt.Errorf("unable to write stylesheet %s: %w", path, err)
	}
	log.Info("Property set", zap.String("selector", sel), zap.String("property", prop), zap.String("value", value))
	return nil
}

// Del removes a property from a selector or, when PROPERTY is omitted, the
// whole selector, and writes the stylesheet back out.
func Del(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("del")

	sel := cmd.Args().Get(0)
	if len(sel) == 0 {
		return fmt.Errorf("no selector has been specified")
	}
	prop := cmd.Args().Get(1)

	path, err := styleFile(env, cmd.String("file"))
	if err != nil {
		return err
	}
	track(env, path)

	fstore := files(env, log)
	sheet, err := fstore.Load(path)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet %s: %w", path, err)
	}

	if _, ok := sheet.Declarations(sel); !ok {
		return fmt.Errorf("selector %q not found in %s", sel, path)
	}
	if len(prop) == 0 {
		sheet.DeleteSelector(sel)
	} else {
		if _, ok := sheet.Value(sel, prop); !ok {
			return fmt.Errorf("property %q not found in %q", prop, sel)
		}
		sheet.DeleteValue(sel, prop)
	}

	if err := fstore.Save(path, sheet, env.Cfg.Document.Mode()); err != nil {
		return fmt.Errorf("unable to write stylesheet %s: %w", path, err)
	}
	log.Info("Deleted", zap.String("selector", sel), zap.String("property", prop))
	return nil
}

// Merge combines one or more source stylesheets into a destination. Sources
// are applied left to right on top of the destination's current content
// (when it exists), later values win per property.
func Merge(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("merge")

	if cmd.NArg() < 2 {
		return fmt.Errorf("merge requires DESTINATION and at least one SOURCE argument")
	}
	dst, err := filepath.Abs(cmd.Args().Get(0))
	if err != nil {
		return fmt.Errorf("unable to resolve destination path: %w", err)
	}

	fstore := files(env, log)

	sheet := css.New()
	if _, err := os.Stat(dst); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("destination file already exists: %s (use --overwrite to merge into it)", dst)
		}
		track(env, dst)
		if sheet, err = fstore.Load(dst); err != nil {
			return fmt.Errorf("unable to read stylesheet %s: %w", dst, err)
		}
	}

	for _, src := range cmd.Args().Slice()[1:] {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		src, err := filepath.Abs(src)
		if err != nil {
			return fmt.Errorf("unable to resolve source path: %w", err)
		}
		track(env, src)
		from, err := fstore.Load(src)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet %s: %w", src, err)
		}
		mergeInto(sheet, from)
		log.Debug("Merged stylesheet", zap.String("from", src))
	}

	if err := fstore.Save(dst, sheet, env.Cfg.Document.Mode()); err != nil {
		return fmt.Errorf("unable to write stylesheet %s: %w", dst, err)
	}
	log.Info("Merge done", zap.String("destination", dst), zap.Int("sources", cmd.NArg()-1))
	return nil
}

// mergeInto folds from into dst property by property, values from from win.
// A selector with an empty body still materializes in dst but never clears
// properties dst already holds.
func mergeInto(dst, from *css.Stylesheet) {
	for _, sel := range from.Selectors() {
		d, _ := from.Declarations(sel)
		if _, ok := dst.Declarations(sel); !ok {
			dst.SetDeclarations(sel, nil)
		}
		for name, value := range d {
			dst.SetValue(sel, name, value)
		}
	}
}

// Init writes a small starter stylesheet to the given path.
func Init(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("init")

	dst := cmd.Args().Get(0)
	if len(dst) == 0 {
		dst = env.Cfg.Document.StylesheetPath
	}
	if len(dst) == 0 {
		return fmt.Errorf("no destination stylesheet has been specified")
	}
	dst, err := filepath.Abs(dst)
	if err != nil {
		return fmt.Errorf("unable to resolve destination path: %w", err)
	}
	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return fmt.Errorf("destination file already exists: %s (use --overwrite)", dst)
	}

	sheet, err := css.Parse(starterSheet)
	if err != nil {
		return fmt.Errorf("bad starter stylesheet: %w", err)
	}
	if err := files(env, log).Save(dst, sheet, env.Cfg.Document.Mode()); err != nil {
		return fmt.Errorf("unable to write stylesheet %s: %w", dst, err)
	}
	log.Info("Stylesheet created", zap.String("path", dst))
	return nil
}

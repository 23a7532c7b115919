package edit

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/urfave/cli/v3"

	"tcss/css"
	"tcss/state"
)

// Get prints a whole rule for SELECTOR or, when PROPERTY is also given,
// just that property's value.
func Get(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("get")

	sel := cmd.Args().Get(0)
	if len(sel) == 0 {
		return fmt.Errorf("no selector has been specified")
	}
	prop := cmd.Args().Get(1)

	path, err := styleFile(env, cmd.String("file"))
	if err != nil {
		return err
	}

	sheet, err := files(env, log).Load(path)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet %s: %w", path, err)
	}

	decls, ok := sheet.Declarations(sel)
	if !ok {
		return fmt.Errorf("selector %q not found in %s", sel, path)
	}

	if len(prop) == 0 {
		out := css.New()
		out.SetDeclarations(sel, decls)
		fmt.Fprint(os.Stdout, out.String())
		return nil
	}

	value, ok := decls[prop]
	if !ok {
		return fmt.Errorf("property %q not found in %q", prop, sel)
	}
	fmt.Fprintln(os.Stdout, value)
	return nil
}

// List prints the selectors of a stylesheet in natural order, so "h2"
// sorts before "h10".
func List(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("list")

	path, err := styleFile(env, cmd.String("file"))
	if err != nil {
		return err
	}

	sheet, err := files(env, log).Load(path)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet %s: %w", path, err)
	}

	sels := sheet.Selectors()
	sort.Sort(natural.StringSlice(sels))
	for _, sel := range sels {
		fmt.Fprintln(os.Stdout, sel)
	}
	return nil
}

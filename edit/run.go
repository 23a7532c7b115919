// Package edit implements the stylesheet subcommands: formatting,
// querying, mutating and merging stylesheet files. All the interesting
// parsing/serialization logic lives in the css package, file access with
// locking in store - this package is the glue between command line and
// those two.
package edit

import (
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"tcss/state"
	"tcss/store"
)

// files builds the store for the current invocation honoring configured
// legacy encoding and backup policy.
func files(env *state.LocalEnv, log *zap.Logger) *store.Files {
	opts := []store.Option{store.WithBackup(env.Cfg.Document.Backup)}
	if env.CodePage != nil {
		opts = append(opts, store.WithEncoding(env.CodePage))
	}
	return store.New(log, opts...)
}

// styleFile resolves which stylesheet a command operates on: the --file
// flag when given, the configured document.stylesheet_path otherwise.
func styleFile(env *state.LocalEnv, flagValue string) (string, error) {
	path := flagValue
	if len(path) == 0 {
		path = env.Cfg.Document.StylesheetPath
	}
	if len(path) == 0 {
		return "", errors.New("no stylesheet has been specified (use --file or document.stylesheet_path)")
	}
	return filepath.Abs(path)
}

// track copies the pre-operation state of path into the debug report when
// one was requested.
func track(env *state.LocalEnv, path string) {
	if env.Rpt == nil {
		return
	}
	if err := env.Rpt.StoreCopy(fmt.Sprintf("input/%s", filepath.Base(path)), path); err != nil {
		env.Log.Warn("Unable to store input in debug report", zap.String("path", path), zap.Error(err))
	}
}

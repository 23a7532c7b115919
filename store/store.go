// Package store is the file layer around the css core: it owns path
// checks, advisory locking and OS error reporting so the core can stay a
// pure text-to-mapping transform.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/h2non/filetype"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"tcss/config"
	"tcss/css"
)

// Failure causes, discriminated with errors.Is. Load and Save never collapse
// different OS problems into one opaque error.
var (
	ErrMissingPath = errors.New("no file name specified")
	ErrNotFound    = errors.New("stylesheet does not exist")
	ErrNotAFile    = errors.New("not a stylesheet file")
	ErrPermission  = errors.New("permission denied")
	ErrLock        = errors.New("unable to lock stylesheet")
	ErrOpen        = errors.New("unable to open stylesheet")
	ErrRead        = errors.New("unable to read stylesheet")
	ErrWrite       = errors.New("unable to write stylesheet")
	ErrClose       = errors.New("unable to close stylesheet")
)

// Option adjusts Files behavior.
type Option func(*Files)

// WithEncoding makes Load transcode file contents from enc to UTF-8 before
// parsing. Useful for stylesheets inherited from legacy tooling.
func WithEncoding(enc encoding.Encoding) Option {
	return func(f *Files) { f.enc = enc }
}

// WithBackup makes Save preserve an existing destination as "<path>.bak"
// before overwriting it.
func WithBackup(mode config.BackupMode) Option {
	return func(f *Files) { f.backup = mode }
}

// Files loads and saves stylesheet files.
type Files struct {
	log    *zap.Logger
	enc    encoding.Encoding
	backup config.BackupMode
}

// New creates a Files instance.
func New(log *zap.Logger, opts ...Option) *Files {
	if log == nil {
		log = zap.NewNop()
	}
	f := &Files{log: log.Named("store")}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Load reads and parses the stylesheet at path. The file is read under a
// shared advisory lock which is released before the handle is closed; other
// readers are never blocked, concurrent writers are.
func (f *Files) Load(path string) (*css.Stylesheet, error) {
	if len(path) == 0 {
		return nil, ErrMissingPath
	}

	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%q: %w", path, ErrNotFound)
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%q: %w", path, ErrPermission)
	case err != nil:
		return nil, fmt.Errorf("%q: %w: %v", path, ErrOpen, err)
	case !fi.Mode().IsRegular():
		return nil, fmt.Errorf("%q: %w", path, ErrNotAFile)
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%q: %w", path, ErrPermission)
		}
		return nil, fmt.Errorf("%q: %w: %v", path, ErrOpen, err)
	}
	if err := lockShared(file); err != nil {
		err = fmt.Errorf("%q: %w: %v", path, ErrLock, err)
		return nil, multierr.Append(err, f.closeFile(path, file))
	}

	data, err := io.ReadAll(file)
	if err != nil {
		err = fmt.Errorf("%q: %w: %v", path, ErrRead, err)
	}
	err = multierr.Combine(err, f.unlockFile(path, file), f.closeFile(path, file))
	if err != nil {
		return nil, err
	}

	// A recognizable binary signature means somebody pointed us at an image,
	// archive or the like - reject it before the parser chokes on garbage.
	if t, _ := filetype.Match(data); t != filetype.Unknown {
		return nil, fmt.Errorf("%q: looks like %s: %w", path, t.MIME.Value, ErrNotAFile)
	}

	if f.enc != nil {
		if data, err = f.enc.NewDecoder().Bytes(data); err != nil {
			return nil, fmt.Errorf("%q: %w: %v", path, ErrRead, err)
		}
	}

	f.log.Debug("Loaded stylesheet", zap.String("path", path), zap.Int("bytes", len(data)))
	return css.Parse(string(data))
}

// Save serializes the sheet and writes it to path under an exclusive
// advisory lock, creating the file with perm when absent and truncating it
// after the lock is held.
func (f *Files) Save(path string, sheet *css.Stylesheet, perm fs.FileMode) (err error) {
	if len(path) == 0 {
		return ErrMissingPath
	}
	if sheet == nil {
		return errors.New("no stylesheet to save")
	}
	text := sheet.String()

	if err := f.backupExisting(path); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, perm)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%q: %w", path, ErrPermission)
		}
		return fmt.Errorf("%q: %w: %v", path, ErrOpen, err)
	}
	if err := lockExclusive(file); err != nil {
		err = fmt.Errorf("%q: %w: %v", path, ErrLock, err)
		return multierr.Append(err, f.closeFile(path, file))
	}

	if err = file.Truncate(0); err == nil {
		_, err = file.WriteString(text)
	}
	if err != nil {
		err = fmt.Errorf("%q: %w: %v", path, ErrWrite, err)
	}
	err = multierr.Combine(err, f.unlockFile(path, file), f.closeFile(path, file))
	if err != nil {
		return err
	}

	f.log.Debug("Stored stylesheet", zap.String("path", path), zap.Int("bytes", len(text)))
	return nil
}

// backupExisting preserves the current content of path according to the
// configured backup mode. Missing destination is not an error.
func (f *Files) backupExisting(path string) error {
	if f.backup == config.BackupModeNone {
		return nil
	}
	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%q: %w: %v", path, ErrOpen, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%q: %w", path, ErrNotAFile)
	}

	bak := path + ".bak"
	switch f.backup {
	case config.BackupModeMove:
		if err := os.Rename(path, bak); err != nil {
			return fmt.Errorf("%q: backup: %w: %v", path, ErrWrite, err)
		}
	case config.BackupModeCopy:
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%q: backup: %w: %v", path, ErrRead, err)
		}
		if err := os.WriteFile(bak, data, fi.Mode().Perm()); err != nil {
			return fmt.Errorf("%q: backup: %w: %v", path, ErrWrite, err)
		}
	}
	f.log.Debug("Preserved previous stylesheet", zap.String("path", bak), zap.Stringer("mode", f.backup))
	return nil
}

func (f *Files) unlockFile(path string, file *os.File) error {
	if err := unlock(file); err != nil {
		return fmt.Errorf("%q: unlock: %w: %v", path, ErrClose, err)
	}
	return nil
}

func (f *Files) closeFile(path string, file *os.File) error {
	if err := file.Close(); err != nil {
		return fmt.Errorf("%q: %w: %v", path, ErrClose, err)
	}
	return nil
}

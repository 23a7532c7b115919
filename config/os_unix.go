//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName drops path separators from a would-be file name and strips
// leading dots so results never hide in or escape the destination directory.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		switch sym {
		case os.PathSeparator, os.PathListSeparator:
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(out, ".")
	if len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}

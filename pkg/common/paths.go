package common

import (
	"os"
	"path/filepath"
	"strings"
)

// ExecutablePath returns the absolute path of the running binary with all
// symlinks resolved. If this is not possible the first program argument is
// used instead.
func ExecutablePath() string {
	if fn, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(fn); err == nil {
			return resolved
		}
		return fn
	}
	if fn, err := filepath.Abs(os.Args[0]); err == nil {
		return fn
	}
	return os.Args[0]
}

func ExecutableDirectory() string {
	return filepath.Dir(ExecutablePath())
}

// ExecutableBasename returns the file name of the running binary without
// its extension.
func ExecutableBasename() string {
	base := filepath.Base(ExecutablePath())
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// BesideExecutable returns <directory of binary>/<basename of binary><suffix>.
func BesideExecutable(suffix string) string {
	return filepath.Join(ExecutableDirectory(), ExecutableBasename()+suffix)
}

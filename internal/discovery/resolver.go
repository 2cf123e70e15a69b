package discovery

import (
	"path/filepath"

	"github.com/spf13/afero"

	"vtp/internal/errors"
)

// Resolver maps a root path to a directory on the filesystem by searching an
// ordered list of resource roots, first hit wins
type Resolver struct {
	fs    afero.Fs
	roots []string
}

// NewResolver creates a Resolver over fs searching the given resource roots.
// With no roots the current directory is searched.
func NewResolver(fs afero.Fs, roots []string) *Resolver {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	return &Resolver{fs: fs, roots: roots}
}

// Resolve returns the resolved location of path. Absolute paths are used as
// they are; relative paths are looked up under each resource root in turn.
func (r *Resolver) Resolve(path string) (string, error) {
	if filepath.IsAbs(path) {
		if r.exists(path) {
			return filepath.Clean(path), nil
		}
		return "", errors.NewConfigurationError("cannot find test directory", path, nil)
	}

	for _, root := range r.roots {
		candidate := filepath.Join(root, path)
		if r.exists(candidate) {
			return candidate, nil
		}
	}

	return "", errors.NewConfigurationError("cannot find test directory", path, nil)
}

func (r *Resolver) exists(path string) bool {
	_, err := r.fs.Stat(path)
	return err == nil
}

package discovery

import (
	"os"
	"strings"

	"github.com/spf13/afero"

	"vtp/internal/domain"
	"vtp/internal/errors"
)

// VectorExtension is the suffix a file must carry to be treated as a vector file
const VectorExtension = ".json"

// Locator finds vector files under resolved root directories
type Locator struct {
	fs       afero.Fs
	resolver *Resolver
	excludes *ExcludeSet
}

// NewLocator creates a new Locator that resolves roots with resolver and
// skips files named in excludes
func NewLocator(fs afero.Fs, resolver *Resolver, excludes *ExcludeSet) *Locator {
	if excludes == nil {
		excludes = NewExcludeSet()
	}
	return &Locator{fs: fs, resolver: resolver, excludes: excludes}
}

// Locate resolves every root and returns the vector files found beneath them,
// in walk order. Any unresolvable root or walk failure aborts the whole call.
func (l *Locator) Locate(roots ...string) ([]domain.VectorFile, error) {
	var files []domain.VectorFile

	for _, root := range roots {
		dir, err := l.resolver.Resolve(root)
		if err != nil {
			return nil, err
		}

		found, err := l.Scan(dir)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	return files, nil
}

// Scan walks dir recursively and returns the eligible vector files in it
func (l *Locator) Scan(dir string) ([]domain.VectorFile, error) {
	var files []domain.VectorFile

	err := afero.Walk(l.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if !strings.HasSuffix(path, VectorExtension) {
			return nil
		}

		if l.excludes.Excluded(path) {
			return nil
		}

		files = append(files, domain.NewVectorFile(path, dir))
		return nil
	})
	if err != nil {
		return nil, errors.NewDiscoveryError(dir, err)
	}

	return files, nil
}

package discovery

import (
	"path/filepath"
	"sort"
)

// ExcludeSet holds vector filenames that must never be opened
type ExcludeSet struct {
	names map[string]bool
}

// NewExcludeSet creates an ExcludeSet holding the given filenames
func NewExcludeSet(names ...string) *ExcludeSet {
	s := &ExcludeSet{names: make(map[string]bool)}
	s.Add(names...)
	return s
}

// Add adds filenames to the set. Only the base name is compared, so
// "case.json" excludes that file in every directory.
func (s *ExcludeSet) Add(names ...string) {
	for _, name := range names {
		s.names[name] = true
	}
}

// Excluded reports whether the file at path is excluded by name
func (s *ExcludeSet) Excluded(path string) bool {
	return s.names[filepath.Base(path)]
}

// Names returns the excluded filenames in sorted order
func (s *ExcludeSet) Names() []string {
	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}


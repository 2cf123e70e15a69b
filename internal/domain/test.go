package domain

import "path/filepath"

// VectorFile is a test-vector file selected for loading
type VectorFile struct {
	Path string // Full path to the file, as used for path filtering
	Root string // Resolved root directory the file was found under
}

// NewVectorFile creates a VectorFile for the given path and root
func NewVectorFile(path, root string) VectorFile {
	return VectorFile{Path: path, Root: root}
}

// RelPath returns the path relative to its root, or the full path if it has none
func (f VectorFile) RelPath() string {
	if f.Root == "" {
		return f.Path
	}
	rel, err := filepath.Rel(f.Root, f.Path)
	if err != nil {
		return f.Path
	}
	return rel
}

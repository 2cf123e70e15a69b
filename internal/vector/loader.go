// Package vector decodes test-vector files into a map from test name to the
// caller's mapped type.
package vector

import (
	"reflect"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"

	"vtp/internal/domain"
	"vtp/internal/errors"
)

// json decodes vector files. Numbers stay json.Number so large integers in
// generic values survive untouched. jsoniter has no ceiling on string
// length, which vectors embedding large byte blobs and code payloads rely on.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Loader reads vector files and maps each test case onto S
type Loader[S any] struct {
	fs       afero.Fs
	typeName string
}

// NewLoader creates a new Loader reading from fs
func NewLoader[S any](fs afero.Fs) *Loader[S] {
	return &Loader[S]{fs: fs, typeName: TypeName[S]()}
}

// TypeName returns the Go type name used in errors for the mapped type S.
func TypeName[S any]() string {
	return reflect.TypeOf((*S)(nil)).Elem().String()
}

// Load reads file and decodes it into test cases keyed by name
func (l *Loader[S]) Load(file domain.VectorFile) (map[string]S, error) {
	data, err := afero.ReadFile(l.fs, file.Path)
	if err != nil {
		return nil, errors.NewParseError(file.Path, l.typeName, err)
	}
	return l.Decode(file.Path, data)
}

// Decode decodes the contents of the vector file at path
func (l *Loader[S]) Decode(path string, data []byte) (map[string]S, error) {
	var cases map[string]S
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, errors.NewParseError(path, l.typeName, err)
	}
	// A bare null decodes cleanly into a nil map.
	if cases == nil {
		return nil, errors.NewParseError(path, l.typeName, errors.ErrNotObject)
	}
	return cases, nil
}

// SortedNames returns the test names of cases in lexical order
func SortedNames[S any](cases map[string]S) []string {
	names := make([]string, 0, len(cases))
	for name := range cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

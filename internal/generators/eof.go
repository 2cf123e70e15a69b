// Package generators holds the generators the vtp command line knows how to
// apply to vector files.
package generators

import (
	"encoding/hex"

	"vtp/internal/collector"
	"vtp/internal/vector"
)

// EOFTestCase is one test of an EOF validation vector file.
type EOFTestCase struct {
	Info    map[string]any       `json:"_info,omitempty"`
	Vectors map[string]EOFVector `json:"vectors"`
}

// EOFVector is one container under test with its expected result per fork.
type EOFVector struct {
	Code          string               `json:"code"`
	ContainerKind string               `json:"containerKind,omitempty"`
	Results       map[string]EOFResult `json:"results"`
}

// EOFResult is the expected validation outcome on one fork.
type EOFResult struct {
	Exception string `json:"exception,omitempty"`
	Result    bool   `json:"result"`
}

// EOF returns a generator emitting one extended tuple per vector and fork.
// Only the given forks are emitted; with none, every fork is.
func EOF(forks ...string) collector.Generator[EOFTestCase, EOFResult] {
	inScope := make(map[string]bool, len(forks))
	for _, fork := range forks {
		inScope[fork] = true
	}

	return collector.GeneratorFunc[EOFTestCase, EOFResult](func(name, fullPath string, raw EOFTestCase, c *collector.Collector[EOFResult]) {
		for _, vectorName := range vector.SortedNames(raw.Vectors) {
			v := raw.Vectors[vectorName]
			code, err := DecodeHex(v.Code)

			for _, fork := range vector.SortedNames(v.Results) {
				if len(inScope) > 0 && !inScope[fork] {
					continue
				}
				// Undecodable code still shows up, as a tuple that never runs.
				c.AddExtended(name+"/"+vectorName, fullPath, fork, code, v.ContainerKind, v.Results[fork], err == nil)
			}
		}
	})
}

// DecodeHex decodes an optionally 0x-prefixed hex string.
func DecodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	return hex.DecodeString(s)
}

// EncodeHex encodes b as a 0x-prefixed hex string.
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// Raw returns the identity generator over generic JSON values.
func Raw() collector.Generator[any, any] {
	return collector.Identity[any]()
}

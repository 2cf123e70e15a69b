// Package pattern compiles the include and ignore filters applied to test
// names and vector file paths.
package pattern

import (
	"regexp"

	"vtp/internal/errors"
)

// Matcher reports whether a candidate string is selected by a filter.
type Matcher interface {
	Matches(candidate string) bool
}

// Pattern is a compiled regular expression that matches anywhere in the
// candidate, not only the whole string.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// Compile compiles a filter pattern. A malformed pattern is a configuration
// error.
func Compile(source string) (*Pattern, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid filter pattern", source, err)
	}
	return &Pattern{source: source, re: re}, nil
}

// Matches reports whether any substring of candidate matches the pattern.
func (p *Pattern) Matches(candidate string) bool {
	return p.re.MatchString(candidate)
}

// String returns the pattern source.
func (p *Pattern) String() string {
	return p.source
}

type matchAll struct{}

func (matchAll) Matches(string) bool { return true }

func (matchAll) String() string { return "<all>" }

// All returns a matcher that selects every candidate.
func All() Matcher {
	return matchAll{}
}

// Set is an ordered list of matchers.
type Set []Matcher

// CompileAll compiles every source and returns them as a Set. The first
// malformed source aborts compilation.
func CompileAll(sources ...string) (Set, error) {
	set := make(Set, 0, len(sources))
	for _, source := range sources {
		p, err := Compile(source)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}

// Any reports whether at least one matcher in the set selects candidate.
func (s Set) Any(candidate string) bool {
	for _, m := range s {
		if m.Matches(candidate) {
			return true
		}
	}
	return false
}

// Empty reports whether the set holds no matchers.
func (s Set) Empty() bool {
	return len(s) == 0
}

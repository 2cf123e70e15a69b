// Package collector accumulates the parameter tuples emitted by a generator
// and decides, per tuple, whether it is runnable under the active filters.
package collector

import "vtp/internal/pattern"

// Reference suites are large; start with room for a good number of tuples.
const initialCapacity = 256

// Policy is the include/ignore filter pair of one generation run.
type Policy struct {
	Includes pattern.Set
	Ignores  pattern.Set
}

// NameMatches reports whether candidate passes the policy. With any include
// pattern registered only included candidates pass and ignores are not
// consulted; otherwise everything passes unless it is ignored.
func (p Policy) NameMatches(candidate string) bool {
	if !p.Includes.Empty() {
		return p.Includes.Any(candidate)
	}
	return !p.Ignores.Any(candidate)
}

// Enabled computes the runnable flag of a tuple. Name and path must both pass.
func (p Policy) Enabled(name, fullPath string, shouldRun bool) bool {
	return shouldRun && p.NameMatches(name) && p.NameMatches(fullPath)
}

// Collector gathers the tuples of a single generation run. It is not safe
// for concurrent use.
type Collector[T any] struct {
	policy Policy
	tuples []Tuple
}

// New creates a Collector applying policy
func New[T any](policy Policy) *Collector[T] {
	return &Collector[T]{
		policy: policy,
		tuples: make([]Tuple, 0, initialCapacity),
	}
}

// Add appends a standard (name, value, enabled) tuple.
func (c *Collector[T]) Add(name, fullPath string, value T, shouldRun bool) {
	c.tuples = append(c.tuples, Standard[T]{
		Name:    name,
		Value:   value,
		Enabled: c.policy.Enabled(name, fullPath, shouldRun),
		path:    fullPath,
	})
}

// AddExtended appends an extended tuple carrying the fork, code and container
// kind the test runs against.
func (c *Collector[T]) AddExtended(name, fullPath, fork string, code []byte, containerKind string, value T, shouldRun bool) {
	c.tuples = append(c.tuples, Extended[T]{
		Name:          name,
		Fork:          fork,
		Code:          code,
		ContainerKind: containerKind,
		Value:         value,
		Enabled:       c.policy.Enabled(name, fullPath, shouldRun),
		path:          fullPath,
	})
}

// Parameters returns the collected tuples in the order they were added.
func (c *Collector[T]) Parameters() []Tuple {
	return c.tuples
}

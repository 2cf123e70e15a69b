// Package params builds the parameter sets fed to parameterized tests from
// directories of JSON test-vector files.
//
// A Builder is configured with chained calls and then asked to Generate:
//
//	tuples, err := params.NewIdentity[StateTest](config.New()).
//		ExcludeFiles("ValueOverflow.json").
//		Ignore("stQuadraticComplexity").
//		Generate("GeneralStateTests")
//
// Every tuple carries a runnable flag computed from the include and ignore
// patterns, so a suite can be narrowed without touching the vector files.
package params

import (
	"github.com/spf13/afero"

	"vtp/internal/collector"
	"vtp/internal/config"
	"vtp/internal/discovery"
	"vtp/internal/domain"
	"vtp/internal/errors"
	"vtp/internal/pattern"
	"vtp/internal/vector"
)

// Builder generates tuples of final type T from vector files mapped onto S.
// Configure it completely before calling Generate; it is not safe to mutate
// while a Generate call is running.
type Builder[S, T any] struct {
	fs            afero.Fs
	resourceRoots []string
	excludes      *discovery.ExcludeSet
	includes      pattern.Set
	ignores       pattern.Set
	generator     collector.Generator[S, T]

	// first malformed pattern, reported by Generate
	err error
}

// New creates a Builder without a generator. Resource roots and the default
// include pattern come from cfg.
func New[S, T any](cfg *config.Config) *Builder[S, T] {
	b := &Builder[S, T]{
		fs:            afero.NewOsFs(),
		resourceRoots: cfg.GetResourceRoots(),
		excludes:      discovery.NewExcludeSet(),
	}
	if cfg.Include != "" {
		b.Include(cfg.Include)
	}
	return b
}

// NewIdentity creates a Builder whose file-mapped type is the final type,
// using the identity generator.
func NewIdentity[T any](cfg *config.Config) *Builder[T, T] {
	return New[T, T](cfg).Generator(collector.Identity[T]())
}

// FromConfig creates a Builder and applies the excludes and ignores of cfg.
func FromConfig[S, T any](cfg *config.Config) *Builder[S, T] {
	b := New[S, T](cfg).
		ExcludeFiles(cfg.ExcludeFiles...).
		Ignore(cfg.Ignore...)
	if cfg.IgnoreAll {
		b.IgnoreAll()
	}
	return b
}

// Fs sets the filesystem vector files are discovered and read from.
func (b *Builder[S, T]) Fs(fs afero.Fs) *Builder[S, T] {
	b.fs = fs
	return b
}

// ResourceRoots replaces the roots searched when resolving relative paths.
func (b *Builder[S, T]) ResourceRoots(roots ...string) *Builder[S, T] {
	b.resourceRoots = roots
	return b
}

// ExcludeFiles skips vector files with these base names.
func (b *Builder[S, T]) ExcludeFiles(filenames ...string) *Builder[S, T] {
	b.excludes.Add(filenames...)
	return b
}

// Include restricts runnable tuples to names and paths matching any of the
// patterns. Once an include is registered, ignores stop applying.
func (b *Builder[S, T]) Include(patterns ...string) *Builder[S, T] {
	b.includes = b.addPatterns(b.includes, patterns)
	return b
}

// Ignore marks tuples whose name or path matches any pattern as not runnable.
func (b *Builder[S, T]) Ignore(patterns ...string) *Builder[S, T] {
	b.ignores = b.addPatterns(b.ignores, patterns)
	return b
}

// IgnoreAll marks every tuple as not runnable, unless includes are present.
func (b *Builder[S, T]) IgnoreAll() *Builder[S, T] {
	b.ignores = append(b.ignores, pattern.All())
	return b
}

// Generator sets the generator turning raw test cases into tuples.
func (b *Builder[S, T]) Generator(g collector.Generator[S, T]) *Builder[S, T] {
	b.generator = g
	return b
}

// Err returns the first configuration error recorded by a setter.
func (b *Builder[S, T]) Err() error {
	return b.err
}

func (b *Builder[S, T]) addPatterns(set pattern.Set, patterns []string) pattern.Set {
	compiled, err := pattern.CompileAll(patterns...)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return set
	}
	return append(set, compiled...)
}

// Locate resolves roots and returns the vector files beneath them that are
// not excluded.
func (b *Builder[S, T]) Locate(roots ...string) ([]domain.VectorFile, error) {
	resolver := discovery.NewResolver(b.fs, b.resourceRoots)
	return discovery.NewLocator(b.fs, resolver, b.excludes).Locate(roots...)
}

// Generate discovers the vector files under roots and returns the tuples
// generated from them. Any failure aborts the whole call.
func (b *Builder[S, T]) Generate(roots ...string) ([]collector.Tuple, error) {
	if err := b.check(); err != nil {
		return nil, err
	}

	files, err := b.Locate(roots...)
	if err != nil {
		return nil, err
	}

	return b.GenerateFiles(files)
}

// GenerateFiles runs the load, generate and collect steps over files that
// were already discovered.
func (b *Builder[S, T]) GenerateFiles(files []domain.VectorFile) ([]collector.Tuple, error) {
	if err := b.check(); err != nil {
		return nil, err
	}

	c := collector.New[T](b.Policy())
	loader := vector.NewLoader[S](b.fs)

	for _, file := range files {
		cases, err := loader.Load(file)
		if err != nil {
			return nil, err
		}
		for _, name := range vector.SortedNames(cases) {
			b.generator.Generate(name, file.Path, cases[name], c)
		}
	}

	return c.Parameters(), nil
}

// Policy returns the filter policy a Generate call applies.
func (b *Builder[S, T]) Policy() collector.Policy {
	return collector.Policy{
		Includes: append(pattern.Set(nil), b.includes...),
		Ignores:  append(pattern.Set(nil), b.ignores...),
	}
}

func (b *Builder[S, T]) check() error {
	if b.err != nil {
		return b.err
	}
	if b.generator == nil {
		return errors.NewConfigurationError("missing generator", "", errors.ErrMissingGenerator)
	}
	return nil
}

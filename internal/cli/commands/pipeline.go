package commands

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"vtp/internal/collector"
	"vtp/internal/config"
	"vtp/internal/domain"
	"vtp/internal/generators"
	"vtp/internal/params"
	"vtp/internal/pattern"
)

// progressFunc is called after each vector file with the number of files
// done and the tuples generated so far
type progressFunc func(done int, tuples []collector.Tuple)

// result is the outcome of one discovery and generation run
type result struct {
	Files  []domain.VectorFile
	Tuples []collector.Tuple
	Meta   domain.SnapshotMeta
}

// generate discovers and generates the vectors under roots with the
// generator matching the configured layout
func generate(cfg *config.Config, fs afero.Fs, logger logrus.FieldLogger, roots []string, located func(files int), progress progressFunc) (*result, error) {
	switch cfg.Layout {
	case config.LayoutEOF:
		b := params.FromConfig[generators.EOFTestCase, generators.EOFResult](cfg).
			Fs(fs).
			Generator(generators.EOF(cfg.Forks...))
		return run(b, cfg, logger, roots, located, progress)
	default:
		b := params.FromConfig[any, any](cfg).
			Fs(fs).
			Generator(generators.Raw())
		return run(b, cfg, logger, roots, located, progress)
	}
}

// run generates file by file so progress can be reported. Every tuple's
// enabled flag depends only on its own name and path, so this yields the
// same tuples as a single Generate call.
func run[S, T any](b *params.Builder[S, T], cfg *config.Config, logger logrus.FieldLogger, roots []string, located func(files int), progress progressFunc) (*result, error) {
	start := time.Now()

	if err := b.Err(); err != nil {
		return nil, err
	}

	files, err := b.Locate(roots...)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{"roots": roots, "files": len(files)}).Debug("Located vector files")
	if located != nil {
		located(len(files))
	}

	var tuples []collector.Tuple
	for i, file := range files {
		batch, err := b.GenerateFiles([]domain.VectorFile{file})
		if err != nil {
			return nil, err
		}
		tuples = append(tuples, batch...)
		logger.WithFields(logrus.Fields{"root": file.Root, "file": file.RelPath(), "tuples": len(batch)}).Debug("Generated test parameters")

		if progress != nil {
			progress(i+1, tuples)
		}
	}

	policy := b.Policy()
	meta := domain.SnapshotMeta{
		Roots:       roots,
		Layout:      cfg.Layout,
		VectorFiles: len(files),
		TotalTuples: len(tuples),
		Includes:    patternSources(policy.Includes),
		Ignores:     patternSources(policy.Ignores),
		Duration:    time.Since(start).Round(time.Millisecond).String(),
		Timestamp:   start.Format(time.RFC3339),
	}
	meta.EnabledTuples = len(params.Runnable(tuples))

	return &result{Files: files, Tuples: tuples, Meta: meta}, nil
}

func patternSources(set pattern.Set) []string {
	sources := make([]string, 0, len(set))
	for _, m := range set {
		if s, ok := m.(fmt.Stringer); ok {
			sources = append(sources, s.String())
		}
	}
	return sources
}

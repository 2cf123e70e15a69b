package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"vtp/internal/collector"
	"vtp/internal/config"
	"vtp/internal/storage"
	"vtp/internal/ui"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config    *config.Config
	fs        afero.Fs
	logger    logrus.FieldLogger
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(
	cfg *config.Config,
	fs afero.Fs,
	logger logrus.FieldLogger,
	store storage.Storage,
	formatter *ui.Formatter,
) *GenerateCommand {
	return &GenerateCommand{
		config:    cfg,
		fs:        fs,
		logger:    logger,
		storage:   store,
		formatter: formatter,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	var bar *ui.ProgressBar
	located := func(files int) {
		bar = ui.NewProgressBar(files)
	}
	progress := func(done int, tuples []collector.Tuple) {
		enabled := 0
		for _, tuple := range tuples {
			if tuple.Runnable() {
				enabled++
			}
		}
		bar.Update(done, enabled, len(tuples)-enabled)
	}

	res, err := generate(gc.config, gc.fs, gc.logger, args, located, progress)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if err := gc.storage.Save(res.Tuples, res.Meta); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	gc.logger.WithField("path", gc.config.GetOutputPath()).Info("Saved snapshot")

	gc.formatter.PrintSummary(res.Meta)
	color.Cyan("Snapshot written to %s", gc.config.GetOutputPath())
	return nil
}

package commands

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"vtp/internal/config"
	"vtp/internal/domain"
	"vtp/internal/storage"
	"vtp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	fs        afero.Fs
	logger    logrus.FieldLogger
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	fs afero.Fs,
	logger logrus.FieldLogger,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		fs:        fs,
		logger:    logger,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	res, err := generate(lc.config, lc.fs, lc.logger, args, nil, nil)
	if err != nil {
		return err
	}

	if len(res.Tuples) == 0 {
		color.Yellow("No test parameters found")
		return nil
	}

	records := make([]domain.TupleRecord, 0, len(res.Tuples))
	for _, tuple := range res.Tuples {
		records = append(records, storage.ToRecord(tuple))
	}

	if err := lc.formatter.PrintTupleList(records, lc.config.Flags.ShowValues); err != nil {
		return err
	}
	lc.formatter.PrintSummary(res.Meta)
	return nil
}

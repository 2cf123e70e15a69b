package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vtp/internal/config"
	"vtp/internal/storage"
	"vtp/internal/ui"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	config  *config.Config
	logger  logrus.FieldLogger
	storage storage.Storage
	viewer  ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(
	cfg *config.Config,
	logger logrus.FieldLogger,
	store storage.Storage,
	viewer ui.Viewer,
) *BrowseCommand {
	return &BrowseCommand{
		config:  cfg,
		logger:  logger,
		storage: store,
		viewer:  viewer,
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	snapshot, err := bc.storage.Load()
	if err != nil {
		return fmt.Errorf("failed to load snapshot (run generate first): %w", err)
	}

	if len(snapshot.Tuples) == 0 {
		color.Yellow("Snapshot %s holds no tuples", bc.config.GetOutputPath())
		return nil
	}
	bc.logger.WithField("tuples", len(snapshot.Tuples)).Debug("Loaded snapshot")

	return bc.viewer.View(snapshot)
}

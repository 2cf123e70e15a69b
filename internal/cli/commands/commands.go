package commands

import (
	"vtp/internal/cli"
	"vtp/internal/config"
	"vtp/internal/storage"
	"vtp/internal/ui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	List     *ListCommand
	Generate *GenerateCommand
	Browse   *BrowseCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, logger *logrus.Logger) *Commands {
	// Initialize dependencies
	fs := afero.NewOsFs()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	browser := ui.NewBrowser(cfg)

	return &Commands{
		List:     NewListCommand(cfg, fs, logger, formatter),
		Generate: NewGenerateCommand(cfg, fs, logger, jsonStorage, formatter),
		Browse:   NewBrowseCommand(cfg, logger, jsonStorage, browser),
	}
}

// prepare reloads the config from parsed flags and applies the log level
func prepare(flags *cli.Flags, cfg *config.Config, logger *logrus.Logger) error {
	loaded, err := config.Load(flags.ToConfigFlags())
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	*cfg = *loaded

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, logger *logrus.Logger) {
	rootCmd.PersistentFlags().StringVar(&flags.ProjectPath, "project", "", "Project directory holding .env and the storage folder")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", "", "Path to the snapshot file (default storage/test-parameters.json)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		return prepare(flags, cfg, logger)
	}

	addFilterFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringSliceVarP(&flags.ResourceRoots, "resource-root", "r", nil, "Directory searched for relative vector roots (repeatable)")
		cmd.Flags().StringSliceVarP(&flags.ExcludeFiles, "exclude", "e", nil, "Vector file base name to skip (repeatable)")
		cmd.Flags().StringVarP(&flags.Include, "include", "i", "", "Only enable tuples whose name and path match this pattern (overrides $"+config.EnvInclude+")")
		cmd.Flags().StringSliceVar(&flags.Ignore, "ignore", nil, "Disable tuples whose name or path matches this pattern (repeatable)")
		cmd.Flags().BoolVar(&flags.IgnoreAll, "ignore-all", false, "Disable every tuple unless an include pattern matches")
		cmd.Flags().StringVarP(&flags.Layout, "layout", "l", "", "Vector layout: standard or eof")
		cmd.Flags().StringSliceVar(&flags.Forks, "fork", nil, "Fork to generate for the eof layout (repeatable, default all)")
	}

	// List command
	listCmd := &cobra.Command{
		Use:   "list <root>...",
		Short: "List test parameters",
		Long:  "Load the vector files under the given roots and print the generated parameter tuples as a tree",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.List.Execute,
	}
	addFilterFlags(listCmd)
	listCmd.Flags().BoolVar(&flags.ShowValues, "values", false, "Print each tuple's value")
	rootCmd.AddCommand(listCmd)

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate <root>...",
		Short: "Generate test parameters and save a snapshot",
		Long:  "Load the vector files under the given roots, generate the parameter tuples and save them as a JSON snapshot",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.Generate.Execute,
	}
	addFilterFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the last snapshot interactively",
		Long:  "Display the tuples from the last generate run in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Browse.Execute,
	}
	rootCmd.AddCommand(browseCmd)
}

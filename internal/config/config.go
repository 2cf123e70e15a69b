package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Resource roots used to resolve relative vector root paths
	ResourceRoots []string

	// Filter settings
	ExcludeFiles []string
	Include      string // Default include pattern, seeded from VTP_INCLUDE
	Ignore       []string
	IgnoreAll    bool

	// Generation settings
	Layout string
	Forks  []string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	LogLevel string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath   string
	ResourceRoots []string
	ExcludeFiles  []string
	Include       string
	Ignore        []string
	IgnoreAll     bool
	Layout        string
	Forks         []string
	Output        string
	LogLevel      string
	ShowValues    bool
}

// New creates a new Config with defaults. The default include pattern is
// read from the environment here, once.
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		Include:        os.Getenv(EnvInclude),
		Layout:         DefaultLayout,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		LogLevel:       DefaultLogLevel,
	}
	// Copy default resource roots
	cfg.ResourceRoots = make([]string, len(DefaultResourceRoots))
	copy(cfg.ResourceRoots, DefaultResourceRoots)
	return cfg
}

// Load loads the project's .env file, creates a config and applies flags
func Load(flags Flags) (*Config, error) {
	projectPath := flags.ProjectPath
	if projectPath == "" {
		projectPath = DefaultProjectPath
	}
	if err := LoadEnv(projectPath); err != nil {
		return nil, err
	}

	cfg := New()
	cfg.Apply(flags)
	return cfg, nil
}

// LoadEnv loads <projectPath>/.env into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnv(projectPath string) error {
	envPath := filepath.Join(projectPath, EnvFile)
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("failed to load %s: %w", envPath, err)
	}
	return nil
}

// Apply applies flag overrides on top of the current values
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}
	if len(flags.ResourceRoots) > 0 {
		c.ResourceRoots = flags.ResourceRoots
	}
	c.ExcludeFiles = append(c.ExcludeFiles, flags.ExcludeFiles...)
	if flags.Include != "" {
		c.Include = flags.Include
	}
	c.Ignore = append(c.Ignore, flags.Ignore...)
	if flags.IgnoreAll {
		c.IgnoreAll = true
	}
	if flags.Layout != "" {
		c.Layout = flags.Layout
	}
	if len(flags.Forks) > 0 {
		c.Forks = flags.Forks
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
}

// GetResourceRoots returns the resource roots as absolute paths, relative
// ones joined to the project path. Vector file paths inherit them, so path
// filters always see full paths.
func (c *Config) GetResourceRoots() []string {
	roots := make([]string, 0, len(c.ResourceRoots))
	for _, root := range c.ResourceRoots {
		if !filepath.IsAbs(root) {
			root = filepath.Join(c.ProjectPath, root)
		}
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
		roots = append(roots, root)
	}
	return roots
}

// GetOutputPath returns the full path to the snapshot file. An explicit
// --output flag wins; otherwise it lives under the project.
// Resolves to an absolute path so generate and browse always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := c.Flags.Output
	if p == "" {
		p = filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// Validate checks settings the core cannot check itself
func (c *Config) Validate() error {
	switch c.Layout {
	case LayoutStandard, LayoutEOF:
	default:
		return fmt.Errorf("unknown layout %q (expected %q or %q)", c.Layout, LayoutStandard, LayoutEOF)
	}
	return nil
}

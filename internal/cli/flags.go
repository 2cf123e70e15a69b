package cli

import "vtp/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath:   f.ProjectPath,
		ResourceRoots: f.ResourceRoots,
		ExcludeFiles:  f.ExcludeFiles,
		Include:       f.Include,
		Ignore:        f.Ignore,
		IgnoreAll:     f.IgnoreAll,
		Layout:        f.Layout,
		Forks:         f.Forks,
		Output:        f.Output,
		LogLevel:      f.LogLevel,
		ShowValues:    f.ShowValues,
	}
}

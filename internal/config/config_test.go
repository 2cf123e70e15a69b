package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	t.Setenv(EnvInclude, "")
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Layout != DefaultLayout {
		t.Errorf("expected Layout %s, got %s", DefaultLayout, cfg.Layout)
	}

	if len(cfg.ResourceRoots) != len(DefaultResourceRoots) {
		t.Errorf("expected %d resource roots, got %d", len(DefaultResourceRoots), len(cfg.ResourceRoots))
	}

	if cfg.Include != "" {
		t.Errorf("expected no default include, got %q", cfg.Include)
	}

	cfg.ResourceRoots[0] = "changed"
	if DefaultResourceRoots[0] == "changed" {
		t.Error("config should not share the default resource roots slice")
	}
}

func TestNew_IncludeFromEnvironment(t *testing.T) {
	t.Setenv(EnvInclude, "stCreate2|stExample")

	cfg := New()
	if cfg.Include != "stCreate2|stExample" {
		t.Errorf("expected include from environment, got %q", cfg.Include)
	}

	// Read once: later changes do not affect an existing config.
	os.Setenv(EnvInclude, "other")
	if cfg.Include != "stCreate2|stExample" {
		t.Errorf("expected include to stay fixed, got %q", cfg.Include)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "vtp-config-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := os.WriteFile(filepath.Join(tmpDir, EnvFile), []byte("VTP_INCLUDE=fromdotenv\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	t.Run("dotenv seeds unset variable", func(t *testing.T) {
		t.Setenv(EnvInclude, "")
		os.Unsetenv(EnvInclude)

		cfg, err := Load(Flags{ProjectPath: tmpDir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Include != "fromdotenv" {
			t.Errorf("expected include from .env, got %q", cfg.Include)
		}
	})

	t.Run("environment wins over dotenv", func(t *testing.T) {
		t.Setenv(EnvInclude, "fromenv")

		cfg, err := Load(Flags{ProjectPath: tmpDir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Include != "fromenv" {
			t.Errorf("expected include from environment, got %q", cfg.Include)
		}
	})

	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv(EnvInclude, "fromenv")

		cfg, err := Load(Flags{ProjectPath: tmpDir, Include: "fromflag"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Include != "fromflag" {
			t.Errorf("expected include from flag, got %q", cfg.Include)
		}
	})

	t.Run("missing dotenv is fine", func(t *testing.T) {
		if _, err := Load(Flags{ProjectPath: filepath.Join(tmpDir, "nowhere")}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestConfig_Apply(t *testing.T) {
	t.Setenv(EnvInclude, "")
	cfg := New()
	cfg.Apply(Flags{
		ResourceRoots: []string{"/abs/resources"},
		ExcludeFiles:  []string{"case.json"},
		Ignore:        []string{"stSlow"},
		IgnoreAll:     true,
		Layout:        LayoutEOF,
		Forks:         []string{"Prague", "Osaka"},
		LogLevel:      "debug",
	})

	if diff := cmp.Diff([]string{"/abs/resources"}, cfg.ResourceRoots); diff != "" {
		t.Errorf("unexpected resource roots (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"case.json"}, cfg.ExcludeFiles); diff != "" {
		t.Errorf("unexpected excludes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"stSlow"}, cfg.Ignore); diff != "" {
		t.Errorf("unexpected ignores (-want +got):\n%s", diff)
	}
	if !cfg.IgnoreAll {
		t.Error("expected IgnoreAll")
	}
	if cfg.Layout != LayoutEOF {
		t.Errorf("expected layout %s, got %s", LayoutEOF, cfg.Layout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestConfig_GetResourceRoots(t *testing.T) {
	cfg := &Config{
		ProjectPath:   "/project",
		ResourceRoots: []string{".", "testdata", "/abs/resources"},
	}

	expected := []string{"/project", "/project/testdata", "/abs/resources"}
	if diff := cmp.Diff(expected, cfg.GetResourceRoots()); diff != "" {
		t.Errorf("unexpected roots (-want +got):\n%s", diff)
	}
}

func TestConfig_GetResourceRoots_RelativeProject(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	cfg := &Config{
		ProjectPath:   ".",
		ResourceRoots: []string{".", "testdata"},
	}

	expected := []string{cwd, filepath.Join(cwd, "testdata")}
	if diff := cmp.Diff(expected, cfg.GetResourceRoots()); diff != "" {
		t.Errorf("unexpected roots (-want +got):\n%s", diff)
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath:    "/project",
				OutputJSONDir:  DefaultOutputJSONDir,
				OutputJSONFile: DefaultOutputJSONFile,
			},
			expected: "/project/storage/test-parameters.json",
		},
		{
			name: "output flag",
			config: &Config{
				ProjectPath:    "/project",
				OutputJSONDir:  DefaultOutputJSONDir,
				OutputJSONFile: DefaultOutputJSONFile,
				Flags:          Flags{Output: "/tmp/out.json"},
			},
			expected: "/tmp/out.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetOutputPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	for _, layout := range []string{LayoutStandard, LayoutEOF} {
		if err := (&Config{Layout: layout}).Validate(); err != nil {
			t.Errorf("layout %s: unexpected error %v", layout, err)
		}
	}
	if err := (&Config{Layout: "yaml"}).Validate(); err == nil {
		t.Error("expected error for unknown layout")
	}
}

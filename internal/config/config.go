// Package config handles loading and validating gitref configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/jokarl/gitref/internal/git"
)

// FileName is the configuration file searched for in the current directory.
const FileName = ".gitref.hcl"

// Config represents the gitref configuration
type Config struct {
	Version int           `hcl:"version,attr"`
	Git     *GitConfig    `hcl:"git,block"`
	Refs    *RefsConfig   `hcl:"refs,block"`
	Output  *OutputConfig `hcl:"output,block"`
	Log     *LogConfig    `hcl:"log,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// GitConfig defines how the git executable is spawned
type GitConfig struct {
	Path string            `hcl:"path,optional"`
	Env  map[string]string `hcl:"env,optional"`
	UID  *int              `hcl:"uid,optional"`
	GID  *int              `hcl:"gid,optional"`
}

// RefsConfig defines which ref names are shown by the refs command
type RefsConfig struct {
	Include []string `hcl:"include,optional"`
	Exclude []string `hcl:"exclude,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// LogConfig defines logging settings
type LogConfig struct {
	Level string `hcl:"level,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Settings validates the git block and converts it into git.Settings.
// Env entries are sorted by key.
func (c *Config) Settings() (git.Settings, error) {
	if err := validateGit(c.Git); err != nil {
		return git.Settings{}, err
	}
	if c.Git == nil {
		return git.Settings{Path: git.DefaultPath}, nil
	}

	keys := make([]string, 0, len(c.Git.Env))
	for k := range c.Git.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+c.Git.Env[k])
	}

	path := c.Git.Path
	if path == "" {
		path = git.DefaultPath
	}

	return git.Settings{
		Path: path,
		Env:  env,
		UID:  c.Git.UID,
		GID:  c.Git.GID,
	}, nil
}

// Load loads configuration from the specified path or searches for it
// Search order: configPath (if provided), .gitref.hcl in cwd
func Load(configPath string) (*Config, error) {
	var path string

	if configPath != "" {
		// Explicit path provided
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		path = findConfigFile()
	}

	if path == "" {
		// No config found, use defaults
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for .gitref.hcl in the current directory
func findConfigFile() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	cwdPath := filepath.Join(cwd, FileName)
	if _, err := os.Stat(cwdPath); err == nil {
		return cwdPath
	}
	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	// Apply defaults for missing optional blocks
	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Git == nil {
		cfg.Git = defaults.Git
	} else if cfg.Git.Path == "" {
		cfg.Git.Path = defaults.Git.Path
	}

	if cfg.Refs == nil {
		cfg.Refs = defaults.Refs
	} else if len(cfg.Refs.Include) == 0 {
		cfg.Refs.Include = defaults.Refs.Include
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}

	if cfg.Log == nil {
		cfg.Log = defaults.Log
	} else if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
}

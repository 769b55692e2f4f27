package config

import "github.com/jokarl/gitref/internal/git"

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		Git: &GitConfig{
			Path: git.DefaultPath,
			Env:  map[string]string{},
		},
		Refs: &RefsConfig{
			Include: []string{"**"},
			Exclude: []string{},
		},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Log: &LogConfig{
			Level: "warn",
		},
	}
}

// DefaultConfigHCL returns the starter file written by gitref init.
func DefaultConfigHCL() string {
	return `# gitref configuration
version = 1

git {
  # Executable used for git ls-remote, looked up in PATH unless absolute.
  path = "git"

  # Extra environment for every git invocation.
  env = {
    GIT_TERMINAL_PROMPT = "0"
  }

  # Run git as another user (unix only).
  # uid = 1000
  # gid = 1000
}

# Glob patterns over ref names shown by "gitref refs".
refs {
  include = ["**"]
  exclude = []
}

output {
  format = "text" # text | json
  color  = "auto" # auto | always | never
}

log {
  level = "warn" # trace | debug | info | warn | error | off
}
`
}

package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/gitref/internal/output"
)

// InvalidSettingsError reports a configuration value that cannot be used.
type InvalidSettingsError struct {
	Field   string
	Value   string
	Message string
}

func (e *InvalidSettingsError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.Version != 1 {
		return &InvalidSettingsError{
			Field:   "version",
			Value:   fmt.Sprint(cfg.Version),
			Message: "only version 1 is supported",
		}
	}

	if err := validateGit(cfg.Git); err != nil {
		return err
	}

	if cfg.Refs != nil {
		for _, p := range append(append([]string{}, cfg.Refs.Include...), cfg.Refs.Exclude...) {
			if !doublestar.ValidatePattern(p) {
				return &InvalidSettingsError{Field: "refs pattern", Value: p, Message: "malformed glob"}
			}
		}
	}

	if cfg.Output != nil {
		if err := ValidateFormat(cfg.Output.Format); err != nil {
			return err
		}
		if err := ValidateColor(cfg.Output.Color); err != nil {
			return err
		}
	}

	if cfg.Log != nil {
		if err := ValidateLogLevel(cfg.Log.Level); err != nil {
			return err
		}
	}

	return nil
}

func validateGit(g *GitConfig) error {
	if g == nil {
		return nil
	}
	if strings.TrimSpace(g.Path) == "" && g.Path != "" {
		return &InvalidSettingsError{Field: "git path", Message: "must not be blank"}
	}
	for k := range g.Env {
		if k == "" || strings.Contains(k, "=") {
			return &InvalidSettingsError{Field: "git env key", Value: k, Message: "must be non-empty and contain no '='"}
		}
	}
	if err := validateID("git uid", g.UID); err != nil {
		return err
	}
	return validateID("git gid", g.GID)
}

// validateID checks that a uid or gid fits an unsigned 32-bit id.
func validateID(field string, id *int) error {
	if id == nil {
		return nil
	}
	if *id < 0 || int64(*id) > math.MaxUint32 {
		return &InvalidSettingsError{
			Field:   field,
			Value:   fmt.Sprint(*id),
			Message: fmt.Sprintf("must be an integer between 0 and %d", uint32(math.MaxUint32)),
		}
	}
	return nil
}

// ValidateFormat checks an output format. Empty means the default.
func ValidateFormat(format string) error {
	if format == "" || output.IsValidFormat(format) {
		return nil
	}
	return &InvalidSettingsError{
		Field:   "output format",
		Value:   format,
		Message: "must be one of " + strings.Join(output.ValidFormats(), ", "),
	}
}

// ValidateColor checks a color mode. Empty means the default.
func ValidateColor(mode string) error {
	switch mode {
	case "", "auto", "always", "never":
		return nil
	default:
		return &InvalidSettingsError{Field: "color mode", Value: mode, Message: "must be 'auto', 'always', or 'never'"}
	}
}

// ValidateLogLevel checks a log level name. Empty means the default.
func ValidateLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if hclog.LevelFromString(level) == hclog.NoLevel {
		return &InvalidSettingsError{Field: "log level", Value: level, Message: "must be trace, debug, info, warn, error or off"}
	}
	return nil
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jokarl/gitref/internal/config"
)

var forceFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create starter .gitref.hcl configuration",
	Long: `Create a new .gitref.hcl configuration file in the current directory
with documented default settings.

The generated configuration includes comments explaining each option:
the git executable and its environment, ref filters, output and logging.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, err := filepath.Abs(config.FileName)
	if err != nil {
		return fmt.Errorf("failed to resolve configuration path: %w", err)
	}

	verb := "Created"
	if _, err := os.Stat(configPath); err == nil {
		if !forceFlag {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
		}
		verb = "Overwrote"
	}

	if err := os.WriteFile(configPath, []byte(config.DefaultConfigHCL()), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	// Read the file back so the summary shows what resolve and refs will see.
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("generated configuration does not load: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s %s\n", verb, configPath)
	fmt.Fprintf(w, "  git     path %q, %d env %s\n", cfg.Git.Path, len(cfg.Git.Env), plural(len(cfg.Git.Env), "entry", "entries"))
	fmt.Fprintf(w, "  refs    include %s, exclude %s\n", patternList(cfg.Refs.Include), patternList(cfg.Refs.Exclude))
	fmt.Fprintf(w, "  output  format %s, color %s\n", cfg.Output.Format, cfg.Output.Color)
	fmt.Fprintf(w, "  log     level %s\n", cfg.Log.Level)
	fmt.Fprintln(w, `Next: run "gitref resolve <locator>" or "gitref refs <locator>"`)
	return nil
}

func patternList(patterns []string) string {
	if len(patterns) == 0 {
		return "none"
	}
	return strings.Join(patterns, " ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

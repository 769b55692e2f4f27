package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jokarl/gitref/internal/config"
	"github.com/jokarl/gitref/internal/git"
	"github.com/jokarl/gitref/internal/output"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	configFlag   string
	gitPathFlag  string
	logLevelFlag string
	formatFlag   string
	colorFlag    string
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "gitref",
	Short: "Resolve git dependency committishes without cloning",
	Long: `gitref resolves git dependency specifiers such as
git+https://github.com/org/repo.git#semver:^1.2.0 to an exact commit.

It lists the remote's tags and heads with git ls-remote and resolves the
committish against them, so nothing is cloned.`,
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel running git
// processes.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFlag, "config", "", "Path to config file (default: ./"+config.FileName+")")
	flags.StringVar(&gitPathFlag, "git-path", "", "Git executable (overrides git.path)")
	flags.StringVar(&logLevelFlag, "log-level", "", "Log level: trace, debug, info, warn, error, off")
	flags.StringVar(&formatFlag, "format", "", "Output format: text, json")
	flags.StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")

	rootCmd.SetUsageTemplate(usageTemplate())
}

// session bundles what a command needs after configuration is loaded.
type session struct {
	cfg    *config.Config
	logger hclog.Logger
	client *git.Client
}

// newSession loads the config, applies flag overrides and builds the
// logger and git client.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}

	if gitPathFlag != "" {
		cfg.Git.Path = gitPathFlag
	}
	if logLevelFlag != "" {
		cfg.Log.Level = logLevelFlag
	}
	if formatFlag != "" {
		cfg.Output.Format = formatFlag
	}
	if colorFlag != "" {
		cfg.Output.Color = colorFlag
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "gitref",
		Level:  hclog.LevelFromString(cfg.Log.Level),
		Output: cmd.ErrOrStderr(),
	})
	if cfg.ConfigPath() != "" {
		logger.Debug("loaded config", "path", cfg.ConfigPath())
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		client: git.NewClientWithLogger(settings, logger.Named("git")),
	}, nil
}

// commandContext returns the command's context, or a background context
// when the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func (s *session) renderer(w io.Writer) output.Renderer {
	return output.NewRenderer(output.Format(s.cfg.Output.Format), shouldUseColor(w, s.cfg.Output.Color))
}

func shouldUseColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		// Check if the writer is a terminal
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}

// remoteHint explains how to get past a failed remote listing of url.
// It returns "" when err has no known cause.
func remoteHint(url string, err error) string {
	// Not-found is checked first: its stderr mentions access rights, and a local
	// path may contain digits that read as an HTTP status.
	switch {
	case git.IsRepositoryNotFound(err):
		return fmt.Sprintf("hint: no repository at %s; check the URL, or your access if the repository is private", url)
	case git.IsAuthError(err):
		return fmt.Sprintf("hint: authentication failed for %s; check your credentials or SSH agent, "+
			"and set GIT_TERMINAL_PROMPT=0 in git.env to fail fast instead of prompting", url)
	default:
		return ""
	}
}

// usageTemplate returns a custom usage template that highlights init.
func usageTemplate() string {
	return `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if not .HasParent}}

Configuration:
  {{.CommandPath}} init    Create a starter ` + config.FileName + `{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// DefaultPath is the executable looked up when Settings.Path is empty.
const DefaultPath = "git"

// Settings is the validated configuration used to spawn git.
type Settings struct {
	// Path is the git executable, either a bare name resolved through PATH
	// or an absolute path.
	Path string

	// Env contains additional KEY=VALUE environment variables.
	// These are appended to the current environment.
	Env []string

	// UID and GID, when set, run git as a different user (unix only).
	UID *int
	GID *int
}

func (s Settings) path() string {
	if s.Path == "" {
		return DefaultPath
	}
	return s.Path
}

// Client runs git commands with a fixed set of Settings.
// A Client holds no mutable state and is safe for concurrent use.
type Client struct {
	settings Settings
	logger   hclog.Logger
}

// NewClient creates a Client that logs warnings to stderr.
func NewClient(settings Settings) *Client {
	return NewClientWithLogger(settings, hclog.New(&hclog.LoggerOptions{
		Name:   "gitref-git",
		Level:  hclog.Warn,
		Output: os.Stderr,
	}))
}

// NewClientWithLogger creates a Client with a custom logger.
func NewClientWithLogger(settings Settings, logger hclog.Logger) *Client {
	return &Client{
		settings: settings,
		logger:   logger,
	}
}

// Settings returns the settings the client was created with.
func (c *Client) Settings() Settings {
	return c.settings
}

// Run executes a git command and returns the stdout output with surrounding
// whitespace trimmed.
// If git cannot be found the error wraps ErrGitNotFound. If the command fails,
// a *GitError is returned with stderr context. If ctx is done before the
// command finishes, the process is killed and ctx.Err() is returned wrapped.
func (c *Client) Run(ctx context.Context, args []string) (string, error) {
	out, err := c.run(ctx, args)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *Client) run(ctx context.Context, args []string) (string, error) {
	gitPath, err := exec.LookPath(c.settings.path())
	if err != nil {
		return "", fmt.Errorf("%w (looked for %q)", ErrGitNotFound, c.settings.path())
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Inherit environment for credentials, SSH config, etc.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, c.settings.Env...)

	applyCredential(cmd, c.settings)

	c.logger.Debug("running git", "path", gitPath, "args", args)

	err = cmd.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("git %s interrupted: %w", firstArg(args), ctxErr)
		}

		exitCode := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &GitError{
			Command:  args,
			ExitCode: exitCode,
			Stderr:   stderr.String(),
		}
	}

	return stdout.String(), nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

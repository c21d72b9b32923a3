// Package app wires the rowalign command: configuration (flags, environment,
// .env and config files), logging, dataset loading and report output.
package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
)

// App holds the command's dependencies.
type App struct {
	version string
	stdout  io.Writer
	stderr  io.Writer
	viper   *viper.Viper
}

// Option customizes an App.
type Option func(*App)

// WithOutput redirects report output and log output.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout, a.stderr = stdout, stderr
	}
}

// New creates an App with a fresh configuration registry.
func New(version string, opts ...Option) *App {
	a := &App{
		version: version,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		viper:   viper.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Execute runs the command with args (without the program name).
func (a *App) Execute(ctx context.Context, args []string) error {
	cmd := a.createRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	return cmd.ExecuteContext(ctx)
}

// ContextWithSignals returns a context canceled on SIGINT or SIGTERM, so an
// interrupted run stops at the aligner's next checkpoint.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// ExitOnError prints err to stderr and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("rowalign: " + err.Error() + "\n")
		os.Exit(1)
	}
}

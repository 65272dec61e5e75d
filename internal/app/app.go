// Package app wires configuration, input, counters and output into the
// coincount command.
package app

import (
	"errors"
	"flag"
	"io"

	"github.com/agbru/coincount/internal/coins"
	"github.com/agbru/coincount/internal/config"
)

// Application represents the coincount application instance.
type Application struct {
	Config    config.AppConfig
	Factory   coins.CounterFactory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CounterFactory for the application.
func WithFactory(f coins.CounterFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = coins.NewDefaultFactory()
	}

	programName := "coincount"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

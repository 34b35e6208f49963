package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/config"
	"github.com/hay-kot/eventhub/internal/core/session"
	"github.com/hay-kot/eventhub/internal/eventhub"
	"github.com/hay-kot/eventhub/internal/printer"
)

// ErrReported is returned by a command whose failure has already been shown
// to the user. main exits non-zero without printing it again.
var ErrReported = errors.New("operation failed")

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	APIURL     string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Sessions holds the logged-in user and token. The API client reads its
	// bearer token from it.
	Sessions *session.Store

	// Client talks to the EventHub backend
	Client *api.Client
}

// Service builds an eventhub.Service that reports through notify.
func (f *Flags) Service(notify eventhub.Notifier) *eventhub.Service {
	logger := log.With().Str("component", "eventhub").Logger()
	return eventhub.New(f.Client, f.Sessions, notify, logger)
}

// bootstrapped builds a Service that prints notifications and restores the
// persisted session before returning.
func (f *Flags) bootstrapped(ctx context.Context) *eventhub.Service {
	svc := f.Service(printer.Ctx(ctx))
	svc.Bootstrap(ctx)
	return svc
}

// report turns a failed Result into ErrReported. The notifier has already
// printed the message.
func report(r eventhub.Result) error {
	if !r.Success {
		return ErrReported
	}
	return nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "eventhub", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "eventhub")
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is usable. All problems are
// reported together as criterio.FieldErrors.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" {
		errs = errs.Append("data_dir", errors.New("data directory cannot be empty"))
	}

	if err := validateBaseURL(c.API.BaseURL); err != nil {
		errs = errs.Append("api.base_url", err)
	}

	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		errs = errs.Append("tracing.endpoint", errors.New("required when tracing is enabled"))
	}

	if c.TUI.RefreshInterval < 0 {
		errs = errs.Append("tui.refresh_interval", errors.New("cannot be negative"))
	}

	return errs.ToError()
}

// ValidateDeep runs Validate and additionally checks the files the
// configuration points at.
func (c *Config) ValidateDeep(configPath string) error {
	var errs criterio.FieldErrorsBuilder

	if err := c.Validate(); err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs = errs.Append(fe.Field, fe.Err)
		}
	}

	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil && info.IsDir() {
			errs = errs.Append("config", fmt.Errorf("%s is a directory, not a file", configPath))
		} else if err != nil && !os.IsNotExist(err) {
			errs = errs.Append("config", fmt.Errorf("cannot access %s: %w", configPath, err))
		}
	}

	if c.DataDir != "" {
		if info, err := os.Stat(c.DataDir); err == nil && !info.IsDir() {
			errs = errs.Append("data_dir", fmt.Errorf("%s exists but is not a directory", c.DataDir))
		}
	}

	return errs.ToError()
}

// Warnings returns non-fatal issues with the configuration.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if u, err := url.Parse(c.API.BaseURL); err == nil && u.Scheme == "http" && !isLocalHost(u.Hostname()) {
		warnings = append(warnings, ValidationWarning{
			Category: "API",
			Item:     "base_url",
			Message:  "credentials will be sent over plain HTTP",
		})
	}

	if c.Tracing.Enabled && c.Tracing.Insecure {
		warnings = append(warnings, ValidationWarning{
			Category: "Tracing",
			Item:     "insecure",
			Message:  "traces are exported without TLS",
		})
	}

	if c.TUI.RefreshInterval > 0 && c.TUI.RefreshInterval < 5*time.Second {
		warnings = append(warnings, ValidationWarning{
			Category: "TUI",
			Item:     "refresh_interval",
			Message:  fmt.Sprintf("%s is very short and may overload the backend", c.TUI.RefreshInterval),
		})
	}

	return warnings
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return errors.New("cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("missing host")
	}

	return nil
}

func isLocalHost(host string) bool {
	switch host {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}

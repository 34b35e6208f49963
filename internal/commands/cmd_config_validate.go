package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/eventhub/internal/core/config"
	"github.com/hay-kot/eventhub/internal/printer"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "eventhub config validate [--format text|json]",
				Description: "Checks the backend URL, tracing settings and credentials path of the loaded config.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type configFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type configReport struct {
	Valid    bool                       `json:"valid"`
	Errors   []configFieldError         `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	fieldErrs := fieldErrors(cfg.ValidateDeep(cmd.flags.ConfigPath))
	warnings := cfg.Warnings()

	if cmd.format == "json" {
		report := configReport{Valid: len(fieldErrs) == 0, Warnings: warnings}
		for _, fe := range fieldErrs {
			report.Errors = append(report.Errors, configFieldError{Field: fe.Field, Message: fe.Err.Error()})
		}
		if err := writeJSON(c.Root().Writer, report); err != nil {
			return err
		}
		if !report.Valid {
			return ErrReported
		}
		return nil
	}

	p := printer.Ctx(ctx)

	tracing := "disabled"
	if cfg.Tracing.Enabled {
		tracing = cfg.Tracing.Endpoint
	}
	printFindings(p, "Settings", []finding{
		{printer.LevelInfo, "config", cmd.flags.ConfigPath},
		{printer.LevelInfo, "api.base_url", cfg.API.BaseURL},
		{printer.LevelInfo, "credentials", cfg.TokenFile()},
		{printer.LevelInfo, "tracing", tracing},
	})

	problems := make([]finding, 0, len(fieldErrs)+len(warnings))
	for _, fe := range fieldErrs {
		label := fe.Field
		if label == "" {
			label = "config"
		}
		problems = append(problems, finding{printer.LevelError, label, fe.Err.Error()})
	}
	for _, w := range warnings {
		label := w.Category
		if w.Item != "" {
			label += " " + w.Item
		}
		problems = append(problems, finding{printer.LevelWarn, label, w.Message})
	}
	printFindings(p, "Problems", problems)

	return conclude(p, "config validate", len(fieldErrs), len(warnings))
}

// fieldErrors flattens a validation error into field errors. Errors that
// are not criterio.FieldErrors become a single entry without a field.
func fieldErrors(err error) criterio.FieldErrors {
	if err == nil {
		return nil
	}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return criterio.FieldErrors{{Err: err}}
}

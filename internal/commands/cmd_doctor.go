package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/eventhub/internal/commands/doctor"
	"github.com/hay-kot/eventhub/internal/core/session"
	"github.com/hay-kot/eventhub/internal/printer"
	"github.com/hay-kot/eventhub/internal/store/jsonfile"
)

type DoctorCmd struct {
	flags  *Flags
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Check configuration, credentials and backend connectivity",
		UsageText:   "eventhub doctor [--format text|json]",
		Description: "Checks the config file, the stored token and whether the backend accepts it. Exits non-zero if any check fails.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

// doctorReport is the JSON shape of a doctor run.
type doctorReport struct {
	Healthy bool `json:"healthy"`
	Summary struct {
		Passed int `json:"passed"`
		Warned int `json:"warned"`
		Failed int `json:"failed"`
	} `json:"summary"`
	Checks []doctor.Result `json:"checks"`
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	file := jsonfile.NewKVStore(cmd.flags.Config.TokenFile())

	results := doctor.RunAll(ctx, []doctor.Check{
		doctor.NewConfigCheck(cmd.flags.Config, cmd.flags.ConfigPath),
		doctor.NewCredentialsCheck(file),
		doctor.NewBackendCheck(cmd.flags.Client, session.NewKVTokenStore(file)),
	})
	passed, warned, failed := doctor.Summary(results)

	if cmd.format == "json" {
		var report doctorReport
		report.Healthy = failed == 0
		report.Summary.Passed, report.Summary.Warned, report.Summary.Failed = passed, warned, failed
		report.Checks = results
		if err := writeJSON(c.Root().Writer, report); err != nil {
			return err
		}
		if failed > 0 {
			return ErrReported
		}
		return nil
	}

	p := printer.Ctx(ctx)
	for _, result := range results {
		findings := make([]finding, 0, len(result.Items))
		for _, item := range result.Items {
			findings = append(findings, finding{
				level:  statusLevel(item.Status),
				label:  item.Label,
				detail: item.Detail,
			})
		}
		printFindings(p, result.Name, findings)
	}

	return conclude(p, "doctor", failed, warned)
}

func statusLevel(s doctor.Status) printer.Level {
	switch s {
	case doctor.StatusFail:
		return printer.LevelError
	case doctor.StatusWarn:
		return printer.LevelWarn
	default:
		return printer.LevelSuccess
	}
}

package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/eventhub/internal/printer"
)

type SyncCmd struct {
	flags *Flags
}

// NewSyncCmd creates a new sync command
func NewSyncCmd(flags *Flags) *SyncCmd {
	return &SyncCmd{flags: flags}
}

// Register adds the sync command to the application
func (cmd *SyncCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "sync",
		Usage:       "Refresh events and clubs",
		UsageText:   "eventhub sync",
		Description: "Fetches events and clubs concurrently and prints a summary. Useful to check connectivity.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *SyncCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)
	svc := cmd.flags.bootstrapped(ctx)

	if err := svc.Sync(ctx, nil, nil); err != nil {
		return err
	}

	who := "anonymous"
	if s := svc.Session(); s.Authenticated() {
		who = s.User.Name
	}

	p.Successf("Synced %d events and %d clubs", len(svc.Events()), len(svc.Clubs()))
	p.Infof("Backend %s as %s", cmd.flags.Client.BaseURL(), who)
	return nil
}

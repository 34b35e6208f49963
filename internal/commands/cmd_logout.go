package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/eventhub/internal/printer"
)

type LogoutCmd struct {
	flags *Flags
}

// NewLogoutCmd creates a new logout command
func NewLogoutCmd(flags *Flags) *LogoutCmd {
	return &LogoutCmd{flags: flags}
}

// Register adds the logout command to the application
func (cmd *LogoutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "logout",
		Usage:       "Forget the stored session",
		UsageText:   "eventhub logout",
		Description: "Removes the stored token. Nothing is sent to the backend.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *LogoutCmd) run(ctx context.Context, _ *cli.Command) error {
	svc := cmd.flags.Service(printer.Ctx(ctx))
	return report(svc.Logout(ctx))
}

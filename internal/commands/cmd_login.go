package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/printer"
)

type LoginCmd struct {
	flags *Flags
	creds api.Credentials
}

// NewLoginCmd creates a new login command
func NewLoginCmd(flags *Flags) *LoginCmd {
	return &LoginCmd{flags: flags}
}

// Register adds the login command to the application
func (cmd *LoginCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "login",
		Usage:     "Log in to EventHub",
		UsageText: "eventhub login [--email <email>] [--password <password>]",
		Description: `Authenticates with the backend and stores the session token so later
commands run as you.

Missing fields are prompted for when running in a terminal.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "account email",
				Destination: &cmd.creds.Email,
			},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "account password",
				Sources:     cli.EnvVars("EVENTHUB_PASSWORD"),
				Destination: &cmd.creds.Password,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LoginCmd) run(ctx context.Context, _ *cli.Command) error {
	if cmd.creds.Email == "" || cmd.creds.Password == "" {
		if !interactive() {
			return fmt.Errorf("--email and --password are required when not running in a terminal")
		}
		if err := promptCredentials(ctx, &cmd.creds); err != nil {
			return err
		}
	}

	if err := cmd.creds.Validate(); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	svc := cmd.flags.Service(printer.Ctx(ctx))
	return report(svc.Login(ctx, cmd.creds))
}

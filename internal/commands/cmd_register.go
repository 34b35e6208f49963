package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/session"
	"github.com/hay-kot/eventhub/internal/printer"
)

type RegisterCmd struct {
	flags *Flags
	reg   api.Registration
	role  string
}

// NewRegisterCmd creates a new register command
func NewRegisterCmd(flags *Flags) *RegisterCmd {
	return &RegisterCmd{flags: flags}
}

// Register adds the register command to the application
func (cmd *RegisterCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "register",
		Usage:     "Create an account and log in",
		UsageText: "eventhub register [--name <name>] [--email <email>] [--password <password>] [--role user|leader]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "display name",
				Destination: &cmd.reg.Name,
			},
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "account email",
				Destination: &cmd.reg.Email,
			},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "account password (at least 6 characters)",
				Sources:     cli.EnvVars("EVENTHUB_PASSWORD"),
				Destination: &cmd.reg.Password,
			},
			&cli.StringFlag{
				Name:        "role",
				Usage:       "requested role (the backend decides)",
				Destination: &cmd.role,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RegisterCmd) run(ctx context.Context, _ *cli.Command) error {
	cmd.reg.Role = session.Role(cmd.role)

	if cmd.reg.Name == "" || cmd.reg.Email == "" || cmd.reg.Password == "" {
		if !interactive() {
			return fmt.Errorf("--name, --email and --password are required when not running in a terminal")
		}
		if err := promptRegistration(ctx, &cmd.reg); err != nil {
			return err
		}
	}

	if err := cmd.reg.Validate(); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	svc := cmd.flags.Service(printer.Ctx(ctx))
	return report(svc.Register(ctx, cmd.reg))
}

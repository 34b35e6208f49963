package commands

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/eventhub/internal/core/session"
	"github.com/hay-kot/eventhub/internal/styles"
)

type WhoamiCmd struct {
	flags *Flags
}

// NewWhoamiCmd creates a new whoami command
func NewWhoamiCmd(flags *Flags) *WhoamiCmd {
	return &WhoamiCmd{flags: flags}
}

// Register adds the whoami command to the application
func (cmd *WhoamiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "whoami",
		Usage:       "Show the logged in account",
		UsageText:   "eventhub whoami",
		Description: "Verifies the stored token with the backend and prints the account it belongs to.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *WhoamiCmd) run(ctx context.Context, c *cli.Command) error {
	svc := cmd.flags.bootstrapped(ctx)

	user, err := svc.Require("")
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if interactive() {
		_, _ = fmt.Fprintln(out, styles.BannerStyle.Render(styles.Banner()))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "ID\t%d\n", user.ID)
	_, _ = fmt.Fprintf(w, "Name\t%s\n", user.Name)
	if user.Email != "" {
		_, _ = fmt.Fprintf(w, "Email\t%s\n", user.Email)
	}
	_, _ = fmt.Fprintf(w, "Role\t%s\n", user.Role)

	if claims, err := session.ParseClaims(svc.Session().Token); err == nil && !claims.ExpiresAt.IsZero() {
		_, _ = fmt.Fprintf(w, "Expires\t%s (in %s)\n",
			claims.ExpiresAt.Local().Format(time.RFC1123),
			time.Until(claims.ExpiresAt).Round(time.Minute))
	}

	return w.Flush()
}

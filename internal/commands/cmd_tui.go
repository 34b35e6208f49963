package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/eventhub/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{
		flags: flags,
	}
}

// Register adds the browse command to the application
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "browse",
		Usage:     "Open the interactive event and club browser",
		UsageText: "eventhub browse",
		Description: `Keys:
  tab        switch between events and clubs
  enter      show details (esc closes)
  r          refresh
  g / i / x  RSVP going / interested / declined
  j          join the selected club
  /          filter
  q          quit`,
		Action: cmd.run,
	})

	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	toasts := &tui.Toasts{}
	svc := cmd.flags.Service(toasts)

	opts := tui.Options{
		RefreshInterval: cmd.flags.Config.TUI.RefreshInterval,
	}

	m := tui.New(ctx, svc, toasts, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/eventhub/internal/core/catalog"
	"github.com/hay-kot/eventhub/internal/printer"
	"github.com/hay-kot/eventhub/internal/styles"
)

type ClubsCmd struct {
	flags *Flags

	filters []string
	match   string
	asJSON  bool

	input catalog.ClubInput
}

// NewClubsCmd creates a new clubs command
func NewClubsCmd(flags *Flags) *ClubsCmd {
	return &ClubsCmd{flags: flags}
}

// Register adds the clubs command group to the application
func (cmd *ClubsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "clubs",
		Usage: "Browse, create and join clubs",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List clubs",
				UsageText: "eventhub clubs ls [--filter key=value]... [--match <glob>] [--json]",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:        "filter",
						Aliases:     []string{"f"},
						Usage:       "backend filter as key=value (repeatable)",
						Destination: &cmd.filters,
					},
					&cli.StringFlag{
						Name:        "match",
						Aliases:     []string{"m"},
						Usage:       "glob matched against club names",
						Destination: &cmd.match,
					},
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "print JSON instead of a table",
						Destination: &cmd.asJSON,
					},
				},
				Action: cmd.runList,
			},
			{
				Name:      "show",
				Usage:     "Show club details",
				UsageText: "eventhub clubs show <id>",
				Action:    cmd.runShow,
			},
			{
				Name:      "create",
				Usage:     "Create a club",
				UsageText: "eventhub clubs create [--name <name>] [--description <text>]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "club name", Destination: &cmd.input.Name},
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "club description", Destination: &cmd.input.Description},
				},
				Action: cmd.runCreate,
			},
			{
				Name:      "join",
				Usage:     "Join a club",
				UsageText: "eventhub clubs join <id>",
				Action:    cmd.runJoin,
			},
		},
	})

	return app
}

func (cmd *ClubsCmd) runList(ctx context.Context, c *cli.Command) error {
	params, err := parseParams(cmd.filters)
	if err != nil {
		return err
	}

	svc := cmd.flags.bootstrapped(ctx)
	if r := svc.FetchClubs(ctx, params); !r.Success {
		return fmt.Errorf("%s", r.Error)
	}

	clubs, err := catalog.Match(svc.Clubs(), cmd.match, catalog.ClubName)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.asJSON {
		return writeJSON(out, clubs)
	}

	if len(clubs) == 0 {
		printer.Ctx(ctx).Infof("No clubs found")
		return nil
	}

	return writeClubTable(out, clubs)
}

func (cmd *ClubsCmd) runShow(ctx context.Context, c *cli.Command) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}

	svc := cmd.flags.bootstrapped(ctx)
	if r := svc.FetchClubs(ctx, nil); !r.Success {
		return fmt.Errorf("%s", r.Error)
	}

	club, ok := svc.Club(id)
	if !ok {
		return fmt.Errorf("club %d not found", id)
	}

	_, err = fmt.Fprint(c.Root().Writer, styles.RenderMarkdown(club.Markdown(), 80))
	return err
}

func (cmd *ClubsCmd) runCreate(ctx context.Context, _ *cli.Command) error {
	svc := cmd.flags.bootstrapped(ctx)
	if _, err := svc.Require(""); err != nil {
		return err
	}

	if cmd.input.Name == "" && interactive() {
		if err := promptClub(ctx, &cmd.input); err != nil {
			return err
		}
	}

	if err := cmd.input.Validate(); err != nil {
		return fmt.Errorf("create club: %w", err)
	}

	res := svc.CreateClub(ctx, cmd.input)
	if !res.Success {
		return ErrReported
	}

	printer.Ctx(ctx).Infof("Club ID %d", res.Data.ID)
	return nil
}

func (cmd *ClubsCmd) runJoin(ctx context.Context, c *cli.Command) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}

	svc := cmd.flags.bootstrapped(ctx)
	if _, err := svc.Require(""); err != nil {
		return err
	}

	return report(svc.JoinClub(ctx, id))
}

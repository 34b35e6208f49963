package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/eventhub/internal/core/catalog"
	"github.com/hay-kot/eventhub/internal/printer"
	"github.com/hay-kot/eventhub/internal/styles"
)

type EventsCmd struct {
	flags *Flags

	// ls
	filters []string
	match   string
	asJSON  bool

	// create
	input  catalog.EventInput
	clubID int

	// rsvp
	status string
}

// NewEventsCmd creates a new events command
func NewEventsCmd(flags *Flags) *EventsCmd {
	return &EventsCmd{flags: flags}
}

// Register adds the events command group to the application
func (cmd *EventsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:    "events",
		Aliases: []string{"ev"},
		Usage:   "Browse, create and RSVP to events",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List events",
				UsageText: "eventhub events ls [--filter key=value]... [--match <glob>] [--json]",
				Description: `Fetches the event list from the backend.

--filter values are sent to the backend as query parameters.
--match filters the result locally by title, e.g. --match '*fair*'.`,
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
						Usage:       "glob matched against event titles",
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
				Usage:     "Show event details",
				UsageText: "eventhub events show <id>",
				Action:    cmd.runShow,
			},
			{
				Name:      "create",
				Usage:     "Create an event",
				UsageText: "eventhub events create [--title ...] [--date YYYY-MM-DD] [--start HH:MM] [--end HH:MM] [--location ...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Usage: "event title", Destination: &cmd.input.Title},
					&cli.StringFlag{Name: "description", Usage: "event description", Destination: &cmd.input.Description},
					&cli.StringFlag{Name: "date", Usage: "date (YYYY-MM-DD)", Destination: &cmd.input.Date},
					&cli.StringFlag{Name: "start", Usage: "start time (HH:MM)", Destination: &cmd.input.StartTime},
					&cli.StringFlag{Name: "end", Usage: "end time (HH:MM)", Destination: &cmd.input.EndTime},
					&cli.StringFlag{Name: "location", Usage: "where the event happens", Destination: &cmd.input.Location},
					&cli.IntFlag{Name: "capacity", Usage: "maximum attendees", Destination: &cmd.input.Capacity},
					&cli.IntFlag{Name: "club", Usage: "hosting club ID", Destination: &cmd.clubID},
				},
				Action: cmd.runCreate,
			},
			{
				Name:      "rsvp",
				Usage:     "RSVP to an event",
				UsageText: "eventhub events rsvp <id> [--status going|interested|declined]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "status",
						Aliases:     []string{"s"},
						Usage:       "attendance status",
						Value:       string(catalog.RSVPGoing),
						Destination: &cmd.status,
					},
				},
				Action: cmd.runRSVP,
			},
		},
	})

	return app
}

func (cmd *EventsCmd) runList(ctx context.Context, c *cli.Command) error {
	params, err := parseParams(cmd.filters)
	if err != nil {
		return err
	}

	svc := cmd.flags.bootstrapped(ctx)
	if r := svc.FetchEvents(ctx, params); !r.Success {
		return fmt.Errorf("%s", r.Error)
	}

	events, err := catalog.Match(svc.Events(), cmd.match, catalog.EventTitle)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.asJSON {
		return writeJSON(out, events)
	}

	if len(events) == 0 {
		printer.Ctx(ctx).Infof("No events found")
		return nil
	}

	return writeEventTable(out, events)
}

func (cmd *EventsCmd) runShow(ctx context.Context, c *cli.Command) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}

	svc := cmd.flags.bootstrapped(ctx)
	if r := svc.FetchEvents(ctx, nil); !r.Success {
		return fmt.Errorf("%s", r.Error)
	}

	event, ok := svc.Event(id)
	if !ok {
		return fmt.Errorf("event %d not found", id)
	}

	_, err = fmt.Fprint(c.Root().Writer, styles.RenderMarkdown(event.Markdown(), 80))
	return err
}

func (cmd *EventsCmd) runCreate(ctx context.Context, _ *cli.Command) error {
	svc := cmd.flags.bootstrapped(ctx)
	if _, err := svc.Require(""); err != nil {
		return err
	}

	if cmd.clubID > 0 {
		cmd.input.ClubID = &cmd.clubID
	}

	if cmd.input.Validate() != nil && interactive() {
		if err := promptEvent(ctx, &cmd.input); err != nil {
			return err
		}
	}

	if err := cmd.input.Validate(); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	res := svc.CreateEvent(ctx, cmd.input)
	if !res.Success {
		return ErrReported
	}

	printer.Ctx(ctx).Infof("Event ID %d", res.Data.ID)
	return nil
}

func (cmd *EventsCmd) runRSVP(ctx context.Context, c *cli.Command) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}

	svc := cmd.flags.bootstrapped(ctx)
	if _, err := svc.Require(""); err != nil {
		return err
	}

	return report(svc.RSVPEvent(ctx, id, catalog.RSVPStatus(cmd.status)))
}

func idArg(c *cli.Command) (int, error) {
	if c.Args().Len() == 0 {
		return 0, fmt.Errorf("id required\n\nUsage: %s", c.UsageText)
	}

	id, err := strconv.Atoi(c.Args().First())
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", c.Args().First())
	}
	return id, nil
}

package commands

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/hay-kot/eventhub/internal/api"
	"github.com/hay-kot/eventhub/internal/core/catalog"
	"github.com/hay-kot/eventhub/internal/core/session"
	"github.com/hay-kot/eventhub/internal/core/validate"
	"github.com/hay-kot/eventhub/internal/styles"
)

// interactive reports whether prompts can be shown. Tests replace it.
var interactive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var errAborted = errors.New("aborted")

func runForm(ctx context.Context, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).
		WithTheme(styles.FormTheme()).
		RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return errAborted
	}
	return err
}

func promptCredentials(ctx context.Context, creds *api.Credentials) error {
	return runForm(ctx, huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Value(&creds.Email).
			Validate(validate.Required),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password).
			Validate(validate.Required),
	).Title("Log in to EventHub"))
}

func promptRegistration(ctx context.Context, reg *api.Registration) error {
	role := string(reg.Role)
	if role == "" {
		role = string(session.RoleUser)
	}

	err := runForm(ctx, huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(&reg.Name).
			Validate(validate.Required),
		huh.NewInput().
			Title("Email").
			Value(&reg.Email).
			Validate(validate.Email),
		huh.NewInput().
			Title("Password").
			Description("At least 6 characters").
			EchoMode(huh.EchoModePassword).
			Value(&reg.Password).
			Validate(validate.Password),
		huh.NewSelect[string]().
			Title("Role").
			Options(
				huh.NewOption("Student", string(session.RoleUser)),
				huh.NewOption("Club leader", string(session.RoleLeader)),
			).
			Value(&role),
	).Title("Create an EventHub account"))
	if err != nil {
		return err
	}

	reg.Role = session.Role(role)
	return nil
}

func promptEvent(ctx context.Context, in *catalog.EventInput) error {
	capacity := ""
	if in.Capacity > 0 {
		capacity = strconv.Itoa(in.Capacity)
	}

	err := runForm(ctx, huh.NewGroup(
		huh.NewInput().Title("Title").Value(&in.Title).Validate(validate.Required),
		huh.NewText().Title("Description").Value(&in.Description),
		huh.NewInput().Title("Date").Placeholder("2024-09-01").Value(&in.Date).Validate(validate.Required),
		huh.NewInput().Title("Start time").Placeholder("18:00").Value(&in.StartTime).Validate(validate.Required),
		huh.NewInput().Title("End time").Placeholder("20:00").Value(&in.EndTime).Validate(validate.Required),
		huh.NewInput().Title("Location").Value(&in.Location).Validate(validate.Required),
		huh.NewInput().Title("Capacity").Placeholder("50").Value(&capacity).Validate(optionalCount),
	).Title("New event"))
	if err != nil {
		return err
	}

	if capacity != "" {
		in.Capacity, _ = strconv.Atoi(capacity)
	}
	return nil
}

func promptClub(ctx context.Context, in *catalog.ClubInput) error {
	return runForm(ctx, huh.NewGroup(
		huh.NewInput().Title("Name").Value(&in.Name).Validate(validate.Required),
		huh.NewText().Title("Description").Value(&in.Description),
	).Title("New club"))
}

func optionalCount(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return errors.New("must be a whole number")
	}
	return nil
}

package eventhub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/eventhub/internal/core/catalog"
)

func TestFetchClubs_ReplacesCache(t *testing.T) {
	f := newFixture(t)
	f.svc.clubs.Append(catalog.Club{ID: 1, Name: "Old"})
	f.backend.listClubs = func(catalog.Params) ([]catalog.Club, error) {
		return []catalog.Club{{ID: 3, Name: "Chess", MemberCount: 12}}, nil
	}

	res := f.svc.FetchClubs(context.Background(), nil)

	assert.True(t, res.Success)
	assert.Equal(t, []catalog.Club{{ID: 3, Name: "Chess", MemberCount: 12}}, f.svc.Clubs())
}

func TestFetchClubs_Failure(t *testing.T) {
	f := newFixture(t)
	f.backend.listClubs = func(catalog.Params) ([]catalog.Club, error) {
		return nil, backendErr(503, "maintenance")
	}

	res := f.svc.FetchClubs(context.Background(), nil)

	assert.Equal(t, Result{Error: "Failed to fetch clubs"}, res)
	assert.Equal(t, Status{Err: "Failed to fetch clubs"}, f.svc.Status(KindClubs))
	assert.Empty(t, f.notes.Notes())
}

func TestCreateClub_AppendsServerRecord(t *testing.T) {
	f := newFixture(t)
	stored := catalog.Club{ID: 11, Name: "Chess", CreatedBy: 1, MemberCount: 1}
	f.backend.createClub = func(in catalog.ClubInput) (catalog.Club, error) {
		assert.Equal(t, "Chess", in.Name)
		return stored, nil
	}

	res := f.svc.CreateClub(context.Background(), catalog.ClubInput{Name: "Chess"})

	assert.True(t, res.Success)
	assert.Equal(t, stored, res.Data)
	assert.Equal(t, []catalog.Club{stored}, f.svc.Clubs())
	assert.Equal(t, []note{{"success", "Club created successfully!"}}, f.notes.Notes())
}

func TestCreateClub_NameTaken(t *testing.T) {
	f := newFixture(t)
	before := []catalog.Club{{ID: 3, Name: "Chess"}}
	f.svc.clubs.Replace(f.svc.clubs.Begin(), before)
	f.backend.createClub = func(catalog.ClubInput) (catalog.Club, error) {
		return catalog.Club{}, backendErr(409, "name taken")
	}

	res := f.svc.CreateClub(context.Background(), catalog.ClubInput{Name: "Chess"})

	assert.Equal(t, Result{Success: false, Error: "name taken"}, res.Result)
	assert.Equal(t, before, f.svc.Clubs())
	assert.Equal(t, []note{{"error", "name taken"}}, f.notes.Notes())
}

func TestJoinClub_Refreshes(t *testing.T) {
	f := newFixture(t)
	f.svc.clubs.Replace(f.svc.clubs.Begin(), []catalog.Club{{ID: 3, Name: "Chess", MemberCount: 1}})
	f.backend.joinClub = func(id int) error {
		assert.Equal(t, 3, id)
		return nil
	}
	f.backend.listClubs = func(catalog.Params) ([]catalog.Club, error) {
		return []catalog.Club{{ID: 3, Name: "Chess", MemberCount: 2}}, nil
	}

	res := f.svc.JoinClub(context.Background(), 3)

	assert.True(t, res.Success)
	assert.Equal(t, []string{"joinClub", "listClubs"}, f.backend.Calls())

	club, ok := f.svc.Club(3)
	require.True(t, ok)
	assert.Equal(t, 2, club.MemberCount)
	assert.Equal(t, []note{{"success", "Successfully joined club!"}}, f.notes.Notes())
}

func TestJoinClub_Failure(t *testing.T) {
	f := newFixture(t)
	f.backend.joinClub = func(int) error { return backendErr(400, "Already a member") }

	res := f.svc.JoinClub(context.Background(), 3)

	assert.Equal(t, Result{Error: "Already a member"}, res)
	assert.Equal(t, []string{"joinClub"}, f.backend.Calls())
}

func TestApplyClubUpdate(t *testing.T) {
	f := newFixture(t)
	f.svc.clubs.Replace(f.svc.clubs.Begin(), []catalog.Club{{ID: 3, Name: "Chess"}})

	assert.True(t, f.svc.ApplyClubUpdate(catalog.Club{ID: 3, Name: "Chess & Go"}))
	assert.Equal(t, "Chess & Go", f.svc.Clubs()[0].Name)
}

func TestSync(t *testing.T) {
	f := newFixture(t)
	f.backend.listEvents = func(catalog.Params) ([]catalog.Event, error) {
		return []catalog.Event{{ID: 5, Title: "Fair"}}, nil
	}
	f.backend.listClubs = func(catalog.Params) ([]catalog.Club, error) {
		return nil, backendErr(500, "")
	}

	err := f.svc.Sync(context.Background(), nil, nil)

	require.Error(t, err)
	assert.Equal(t, "Failed to fetch clubs", err.Error())
	assert.Len(t, f.svc.Events(), 1, "events refresh completes even though clubs failed")
}

package services_test

import (
	"context"
	"testing"

	"premadehub_server/models"
	"premadehub_server/services"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	ctx   context.Context
	store *services.MemoryStore

	profiles     *services.UserProfileService
	teams        *services.TeamService
	invitations  *services.InvitationService
	joinRequests *services.JoinRequestService
	browse       *services.BrowseService
}

var testProfiles = []models.UserProfile{
	{UserID: "u1", SummonerName: "Faker", SummonerTag: "KR1", Region: "KR", Rank: "Challenger", Role: "Mid"},
	{UserID: "u2", SummonerName: "Caps", SummonerTag: "EUW", Region: "EUW", Rank: "Grandmaster", Role: "Mid"},
	{UserID: "u3", SummonerName: "Rekkles", SummonerTag: "EUW", Region: "EUW", Rank: "Challenger", Role: "ADC"},
	{UserID: "u4", SummonerName: "Jankos", SummonerTag: "EUW", Region: "EUW", Rank: "Grandmaster", Role: "Jungle"},
	{UserID: "u5", SummonerName: "Mikyx", SummonerTag: "EUW", Region: "EUW", Rank: "Master", Role: "Support"},
	{UserID: "u6", SummonerName: "Wunder", SummonerTag: "EUW", Region: "EUW", Rank: "Master", Role: "Top"},
}

func setupTest(t *testing.T) testEnv {
	t.Helper()

	store := services.NewMemoryStore()
	profiles := &services.UserProfileService{Store: store}

	env := testEnv{
		ctx:      context.Background(),
		store:    store,
		profiles: profiles,
		teams:    &services.TeamService{Store: store, Users: profiles},
		invitations: &services.InvitationService{
			Store: store,
			Teams: store,
			Users: profiles,
		},
		joinRequests: &services.JoinRequestService{
			Store: store,
			Teams: store,
			Users: profiles,
		},
		browse: &services.BrowseService{Teams: store, Users: profiles},
	}

	for _, profile := range testProfiles {
		_, err := profiles.AddUserProfile(env.ctx, profile)
		require.NoError(t, err)
	}
	return env
}

// mustCreateTeam creates a team through the service and fails the test on
// error.
func mustCreateTeam(t *testing.T, env testEnv, teamType, name, privacy, createdBy string) *models.Team {
	t.Helper()
	team, err := env.teams.CreateTeam(env.ctx, teamType, name, privacy, createdBy)
	require.NoError(t, err)
	return team
}

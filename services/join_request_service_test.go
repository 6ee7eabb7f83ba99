package services_test

import (
	"context"
	"sync"
	"testing"

	"premadehub_server/models"
	"premadehub_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendJoinRequestSnapshotsTeamAndRequester(t *testing.T) {
	env := setupTest(t)
	team := mustCreateTeam(t, env, models.TeamTypeClash, "G2 Tryouts", models.TeamPrivacyOpen, "u1")

	request, err := env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u2")
	require.NoError(t, err)

	assert.Equal(t, "G2 Tryouts", request.TeamName)
	assert.Equal(t, models.TeamTypeClash, request.TeamType)
	assert.Equal(t, "Caps", request.UserName)
	assert.Equal(t, "Caps#EUW", request.RequesterDisplayName())
	assert.Equal(t, models.StatusPending, request.Status)

	// Renaming the team afterwards leaves the snapshot untouched.
	require.NoError(t, env.teams.RenameTeam(env.ctx, team.TeamID, "G2 Main"))
	stored, err := env.store.GetJoinRequest(env.ctx, request.RequestID)
	require.NoError(t, err)
	assert.Equal(t, "G2 Tryouts", stored.TeamName)
}

func TestSendJoinRequestRejectsDuplicates(t *testing.T) {
	env := setupTest(t)
	team := mustCreateTeam(t, env, models.TeamTypeClash, "", models.TeamPrivacyOpen, "u1")

	_, err := env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u2")
	require.NoError(t, err)

	_, err = env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u2")
	require.ErrorIs(t, err, services.ErrDuplicateRequest)

	// A second requester is unaffected.
	_, err = env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u3")
	require.NoError(t, err)
}

func TestSendJoinRequestMissingOrInactiveTeam(t *testing.T) {
	env := setupTest(t)

	_, err := env.joinRequests.SendJoinRequest(env.ctx, "no-such-team", "u2")
	require.ErrorIs(t, err, services.ErrTeamNotFound)

	team := mustCreateTeam(t, env, models.TeamTypeDuo, "", models.TeamPrivacyOpen, "u1")
	require.NoError(t, env.teams.DeleteTeam(env.ctx, team.TeamID, "u1"))

	_, err = env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u2")
	require.ErrorIs(t, err, services.ErrTeamNotFound)
}

func TestSendJoinRequestAllowedOnFullTeam(t *testing.T) {
	env := setupTest(t)
	team := mustCreateTeam(t, env, models.TeamTypeDuo, "", models.TeamPrivacyOpen, "u1")
	require.NoError(t, env.store.AddMember(env.ctx, team.TeamID, "u2"))

	// Capacity is only enforced at accept time.
	request, err := env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u3")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, request.Status)
}

func TestGetTeamJoinRequestsCreatorOnly(t *testing.T) {
	env := setupTest(t)
	team := mustCreateTeam(t, env, models.TeamTypeClash, "", models.TeamPrivacyOpen, "u1")
	require.NoError(t, env.store.CreateJoinRequest(env.ctx, models.JoinRequest{
		RequestID: "r-old", TeamID: team.TeamID, UserID: "u2",
		Status: models.StatusPending, CreatedAt: "2025-08-01T10:00:00Z",
	}))
	require.NoError(t, env.store.CreateJoinRequest(env.ctx, models.JoinRequest{
		RequestID: "r-new", TeamID: team.TeamID, UserID: "u3",
		Status: models.StatusPending, CreatedAt: "2025-08-02T10:00:00Z",
	}))

	requests, err := env.joinRequests.GetTeamJoinRequests(env.ctx, team.TeamID, "u1")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "r-new", requests[0].RequestID)

	_, err = env.joinRequests.GetTeamJoinRequests(env.ctx, team.TeamID, "u2")
	require.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestAcceptJoinRequestAddsMember(t *testing.T) {
	env := setupTest(t)
	team := mustCreateTeam(t, env, models.TeamTypeClash, "", models.TeamPrivacyOpen, "u1")
	request, err := env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u2")
	require.NoError(t, err)

	require.NoError(t, env.joinRequests.AcceptJoinRequest(env.ctx, request.RequestID, "u1"))

	stored, err := env.store.GetTeam(env.ctx, team.TeamID)
	require.NoError(t, err)
	assert.True(t, stored.HasMember("u2"))

	// The flip already happened, so a second accept reports the stale state.
	err = env.joinRequests.AcceptJoinRequest(env.ctx, request.RequestID, "u1")
	require.ErrorIs(t, err, services.ErrInvalidState)
}

func TestAcceptJoinRequestAuthorization(t *testing.T) {
	env := setupTest(t)
	team := mustCreateTeam(t, env, models.TeamTypeClash, "", models.TeamPrivacyOpen, "u1")
	request, err := env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u2")
	require.NoError(t, err)

	err = env.joinRequests.AcceptJoinRequest(env.ctx, request.RequestID, "u2")
	require.ErrorIs(t, err, services.ErrUnauthorized)

	err = env.joinRequests.AcceptJoinRequest(env.ctx, "missing", "u1")
	require.ErrorIs(t, err, services.ErrRequestNotFound)

	stored, err := env.store.GetJoinRequest(env.ctx, request.RequestID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

func TestAcceptJoinRequestFullTeamLeavesRequestPending(t *testing.T) {
	env := setupTest(t)
	team := mustCreateTeam(t, env, models.TeamTypeDuo, "", models.TeamPrivacyOpen, "u1")
	request, err := env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u3")
	require.NoError(t, err)

	require.NoError(t, env.store.AddMember(env.ctx, team.TeamID, "u2"))

	err = env.joinRequests.AcceptJoinRequest(env.ctx, request.RequestID, "u1")
	require.ErrorIs(t, err, services.ErrTeamFull)

	stored, err := env.store.GetJoinRequest(env.ctx, request.RequestID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)
}

// fullOnAddTeamStore fails every member append, forcing the accept path to
// compensate after the status flip has already happened.
type fullOnAddTeamStore struct {
	services.TeamStore
}

func (s fullOnAddTeamStore) AddMember(ctx context.Context, teamID, userID string) error {
	return services.ErrTeamFull
}

func TestAcceptJoinRequestReopensOnAddFailure(t *testing.T) {
	env := setupTest(t)
	team := mustCreateTeam(t, env, models.TeamTypeDuo, "", models.TeamPrivacyOpen, "u1")
	request, err := env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u2")
	require.NoError(t, err)

	svc := &services.JoinRequestService{
		Store: env.store,
		Teams: fullOnAddTeamStore{TeamStore: env.store},
		Users: env.profiles,
	}

	err = svc.AcceptJoinRequest(env.ctx, request.RequestID, "u1")
	require.ErrorIs(t, err, services.ErrTeamFull)

	// The request was reopened, so a retry can still succeed.
	stored, err := env.store.GetJoinRequest(env.ctx, request.RequestID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, stored.Status)

	require.NoError(t, env.joinRequests.AcceptJoinRequest(env.ctx, request.RequestID, "u1"))
}

func TestConcurrentAcceptsForLastSeat(t *testing.T) {
	env := setupTest(t)
	team := mustCreateTeam(t, env, models.TeamTypeDuo, "", models.TeamPrivacyOpen, "u1")

	first, err := env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u2")
	require.NoError(t, err)
	second, err := env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u3")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []string{first.RequestID, second.RequestID} {
		wg.Add(1)
		go func(i int, requestID string) {
			defer wg.Done()
			errs[i] = env.joinRequests.AcceptJoinRequest(env.ctx, requestID, "u1")
		}(i, id)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, services.ErrTeamFull)
		}
	}
	assert.Equal(t, 1, winners)

	stored, err := env.store.GetTeam(env.ctx, team.TeamID)
	require.NoError(t, err)
	assert.Len(t, stored.MemberIDs, team.MaxSize())
}

func TestRejectJoinRequestCreatorOnly(t *testing.T) {
	env := setupTest(t)
	team := mustCreateTeam(t, env, models.TeamTypeClash, "", models.TeamPrivacyOpen, "u1")
	request, err := env.joinRequests.SendJoinRequest(env.ctx, team.TeamID, "u2")
	require.NoError(t, err)

	err = env.joinRequests.RejectJoinRequest(env.ctx, request.RequestID, "u2")
	require.ErrorIs(t, err, services.ErrUnauthorized)

	require.NoError(t, env.joinRequests.RejectJoinRequest(env.ctx, request.RequestID, "u1"))

	stored, err := env.store.GetTeam(env.ctx, team.TeamID)
	require.NoError(t, err)
	assert.False(t, stored.HasMember("u2"))

	err = env.joinRequests.AcceptJoinRequest(env.ctx, request.RequestID, "u1")
	require.ErrorIs(t, err, services.ErrInvalidState)
}

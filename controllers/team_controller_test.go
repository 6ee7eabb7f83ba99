package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"premadehub_server/models"
	"premadehub_server/routes"
	"premadehub_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiEnv struct {
	store  *services.MemoryStore
	router *mux.Router
}

func setupAPI(t *testing.T) apiEnv {
	t.Helper()

	store := services.NewMemoryStore()
	profiles := &services.UserProfileService{Store: store}
	teams := &services.TeamService{Store: store, Users: profiles}
	invitations := &services.InvitationService{Store: store, Teams: store, Users: profiles}
	joinRequests := &services.JoinRequestService{Store: store, Teams: store, Users: profiles}
	browse := &services.BrowseService{Teams: store, Users: profiles}

	router := mux.NewRouter()
	routes.RegisterTeamRoutes(router, teams, browse)
	routes.RegisterInvitationRoutes(router, invitations)
	routes.RegisterJoinRequestRoutes(router, joinRequests)
	routes.RegisterUserProfileRoutes(router, profiles)

	ctx := context.Background()
	for _, p := range []models.UserProfile{
		{UserID: "u1", SummonerName: "Faker", SummonerTag: "KR1", Rank: "Challenger", Role: "Mid"},
		{UserID: "u2", SummonerName: "Caps", SummonerTag: "EUW", Rank: "Grandmaster", Role: "Mid"},
	} {
		require.NoError(t, store.PutUserProfile(ctx, p))
	}

	return apiEnv{store: store, router: router}
}

func (e apiEnv) do(t *testing.T, method, path, caller string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if caller != "" {
		req.Header.Set("X-User-Id", caller)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateTeamEndpoint(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/teams", "u1", map[string]string{"type": "clash"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var team models.Team
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&team))
	assert.Equal(t, "Clash Team", team.Name)
	assert.Equal(t, []string{"u1"}, team.MemberIDs)

	rec = env.do(t, http.MethodGet, "/api/teams/"+team.TeamID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateTeamRequiresCaller(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/teams", "", map[string]string{"type": "duo"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTeamInvalidType(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/teams", "u1", map[string]string{"type": "aram"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTeamNotFound(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/teams/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvitationEndpointsFlow(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/invitations", "u1", map[string]string{
		"toUserId": "u2",
		"teamType": "duo",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var invitation models.TeamInvitation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&invitation))
	assert.Equal(t, "Faker", invitation.FromUserName)

	// Duplicate invite to the same user is rejected up front.
	rec = env.do(t, http.MethodPost, "/api/invitations", "u1", map[string]string{
		"toUserId": "u2",
		"teamType": "duo",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Only the invitee may accept.
	rec = env.do(t, http.MethodPut, "/api/invitations/"+invitation.InvitationID+"/accept", "u1", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/invitations/"+invitation.InvitationID+"/accept", "u2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var accepted struct {
		Team models.Team `json:"team"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&accepted))
	assert.Equal(t, []string{"u1", "u2"}, accepted.Team.MemberIDs)

	// Accepting again hits the terminal state.
	rec = env.do(t, http.MethodPut, "/api/invitations/"+invitation.InvitationID+"/accept", "u2", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSendInvitationUnknownInvitee(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/invitations", "u1", map[string]string{
		"toUserId": "ghost",
		"teamType": "duo",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJoinRequestEndpointsFlow(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/teams", "u1", map[string]string{
		"type":    "clash",
		"privacy": "open",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var team models.Team
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&team))

	rec = env.do(t, http.MethodPost, "/api/join-requests", "u2", map[string]string{
		"teamId": team.TeamID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var request models.JoinRequest
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&request))

	// Only the creator may list or resolve requests.
	rec = env.do(t, http.MethodGet, "/api/join-requests/team/"+team.TeamID, "u2", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/join-requests/team/"+team.TeamID, "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/join-requests/"+request.RequestID+"/accept", "u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := env.store.GetTeam(context.Background(), team.TeamID)
	require.NoError(t, err)
	assert.True(t, stored.HasMember("u2"))
}

func TestProfileEndpoints(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/profiles", "u3", models.UserProfile{
		SummonerName: "Chovy", SummonerTag: "KR2", Region: "KR",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/profiles/u3", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.UserProfile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&profile))
	assert.Equal(t, "u3", profile.UserID)
	assert.Equal(t, "Chovy", profile.SummonerName)
}

func TestUpdateProfileEndpointTogglesLookingForDuo(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPatch, "/api/profiles/u1", "u1", map[string]any{
		"lookingForDuo": true,
		"rank":          "Grandmaster",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.UserProfile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.True(t, updated.LookingForDuo)
	assert.Equal(t, "Grandmaster", updated.Rank)
	assert.Equal(t, "Faker", updated.SummonerName)

	rec = env.do(t, http.MethodGet, "/api/profiles/u1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stored models.UserProfile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stored))
	assert.True(t, stored.LookingForDuo)

	rec = env.do(t, http.MethodPatch, "/api/profiles/ghost", "ghost", map[string]any{
		"lookingForClash": true,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package services

import (
	"context"
	"sort"
	"sync"

	"premadehub_server/models"
)

// MemoryStore is an in-process implementation of every store interface, used
// for local development (STORAGE_BACKEND=memory) and tests. A single mutex
// serializes all mutations, which trivially satisfies the per-team atomicity
// required of AddMember.
type MemoryStore struct {
	mu           sync.Mutex
	teams        map[string]models.Team
	invitations  map[string]models.TeamInvitation
	joinRequests map[string]models.JoinRequest
	profiles     map[string]models.UserProfile
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teams:        make(map[string]models.Team),
		invitations:  make(map[string]models.TeamInvitation),
		joinRequests: make(map[string]models.JoinRequest),
		profiles:     make(map[string]models.UserProfile),
	}
}

// ---- TeamStore ----

func (m *MemoryStore) CreateTeam(ctx context.Context, team models.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	team.MemberIDs = append([]string(nil), team.MemberIDs...)
	m.teams[team.TeamID] = team
	return nil
}

func (m *MemoryStore) GetTeam(ctx context.Context, teamID string) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	team, ok := m.teams[teamID]
	if !ok {
		return nil, ErrTeamNotFound
	}
	dup := team
	dup.MemberIDs = append([]string(nil), team.MemberIDs...)
	return &dup, nil
}

func (m *MemoryStore) AddMember(ctx context.Context, teamID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	team, ok := m.teams[teamID]
	if !ok || !team.IsActive() {
		return ErrTeamNotFound
	}
	if team.HasMember(userID) {
		return ErrAlreadyMember
	}
	if team.IsFull() {
		return ErrTeamFull
	}
	team.MemberIDs = append(team.MemberIDs, userID)
	m.teams[teamID] = team
	return nil
}

func (m *MemoryStore) RemoveMember(ctx context.Context, teamID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	team, ok := m.teams[teamID]
	if !ok {
		return ErrTeamNotFound
	}
	for i, id := range team.MemberIDs {
		if id == userID {
			team.MemberIDs = append(team.MemberIDs[:i], team.MemberIDs[i+1:]...)
			m.teams[teamID] = team
			return nil
		}
	}
	return nil // Absent members are a no-op.
}

func (m *MemoryStore) UpdateTeamName(ctx context.Context, teamID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	team, ok := m.teams[teamID]
	if !ok || !team.IsActive() {
		return ErrTeamNotFound
	}
	team.Name = name
	m.teams[teamID] = team
	return nil
}

func (m *MemoryStore) UpdateTeamPrivacy(ctx context.Context, teamID, privacy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	team, ok := m.teams[teamID]
	if !ok || !team.IsActive() {
		return ErrTeamNotFound
	}
	team.Privacy = privacy
	m.teams[teamID] = team
	return nil
}

func (m *MemoryStore) DeactivateTeam(ctx context.Context, teamID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	team, ok := m.teams[teamID]
	if !ok || !team.IsActive() {
		return ErrTeamNotFound
	}
	team.Status = models.TeamStatusInactive
	m.teams[teamID] = team
	return nil
}

func (m *MemoryStore) ListTeamsByMember(ctx context.Context, userID string) ([]models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var teams []models.Team
	for _, team := range m.teams {
		if team.IsActive() && team.HasMember(userID) {
			dup := team
			dup.MemberIDs = append([]string(nil), team.MemberIDs...)
			teams = append(teams, dup)
		}
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].CreatedAt > teams[j].CreatedAt
	})
	return teams, nil
}

func (m *MemoryStore) ListOpenTeams(ctx context.Context, limit int32) ([]models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var teams []models.Team
	for _, team := range m.teams {
		if team.IsActive() && team.Privacy == models.TeamPrivacyOpen && !team.IsFull() {
			dup := team
			dup.MemberIDs = append([]string(nil), team.MemberIDs...)
			teams = append(teams, dup)
		}
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].CreatedAt > teams[j].CreatedAt
	})
	if int32(len(teams)) > limit {
		teams = teams[:limit]
	}
	return teams, nil
}

// ---- InvitationStore ----

func (m *MemoryStore) CreateInvitation(ctx context.Context, invitation models.TeamInvitation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invitations[invitation.InvitationID] = invitation
	return nil
}

func (m *MemoryStore) GetInvitation(ctx context.Context, invitationID string) (*models.TeamInvitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	invitation, ok := m.invitations[invitationID]
	if !ok {
		return nil, ErrInvitationNotFound
	}
	return &invitation, nil
}

func (m *MemoryStore) ListPendingInvitations(ctx context.Context, toUserID string) ([]models.TeamInvitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var invitations []models.TeamInvitation
	for _, invitation := range m.invitations {
		if invitation.ToUserID == toUserID && invitation.Status == models.StatusPending {
			invitations = append(invitations, invitation)
		}
	}
	sort.Slice(invitations, func(i, j int) bool {
		return invitations[i].CreatedAt > invitations[j].CreatedAt
	})
	return invitations, nil
}

func (m *MemoryStore) HasPendingInvitation(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, invitation := range m.invitations {
		if invitation.FromUserID == fromUserID && invitation.ToUserID == toUserID && invitation.Status == models.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) TransitionInvitation(ctx context.Context, invitationID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	invitation, ok := m.invitations[invitationID]
	if !ok {
		return ErrInvitationNotFound
	}
	if invitation.Status != models.StatusPending {
		return ErrInvalidState
	}
	invitation.Status = status
	m.invitations[invitationID] = invitation
	return nil
}

// ---- JoinRequestStore ----

func (m *MemoryStore) CreateJoinRequest(ctx context.Context, request models.JoinRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.joinRequests[request.RequestID] = request
	return nil
}

func (m *MemoryStore) GetJoinRequest(ctx context.Context, requestID string) (*models.JoinRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.joinRequests[requestID]
	if !ok {
		return nil, ErrRequestNotFound
	}
	return &request, nil
}

func (m *MemoryStore) ListPendingJoinRequests(ctx context.Context, teamID string) ([]models.JoinRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var requests []models.JoinRequest
	for _, request := range m.joinRequests {
		if request.TeamID == teamID && request.Status == models.StatusPending {
			requests = append(requests, request)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt > requests[j].CreatedAt
	})
	return requests, nil
}

func (m *MemoryStore) HasPendingJoinRequest(ctx context.Context, teamID, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, request := range m.joinRequests {
		if request.TeamID == teamID && request.UserID == userID && request.Status == models.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) TransitionJoinRequest(ctx context.Context, requestID, status string) error {
	return m.flipJoinRequestStatus(requestID, models.StatusPending, status)
}

func (m *MemoryStore) ReopenJoinRequest(ctx context.Context, requestID string) error {
	return m.flipJoinRequestStatus(requestID, models.StatusAccepted, models.StatusPending)
}

func (m *MemoryStore) flipJoinRequestStatus(requestID, from, to string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.joinRequests[requestID]
	if !ok {
		return ErrRequestNotFound
	}
	if request.Status != from {
		return ErrInvalidState
	}
	request.Status = to
	m.joinRequests[requestID] = request
	return nil
}

// ---- UserProfileStore ----

func (m *MemoryStore) PutUserProfile(ctx context.Context, profile models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *MemoryStore) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

func (m *MemoryStore) UpdateUserProfile(ctx context.Context, userID string, updates models.UserProfileUpdates) (*models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	if updates.SummonerName != nil {
		profile.SummonerName = *updates.SummonerName
	}
	if updates.SummonerTag != nil {
		profile.SummonerTag = *updates.SummonerTag
	}
	if updates.Region != nil {
		profile.Region = *updates.Region
	}
	if updates.Rank != nil {
		profile.Rank = *updates.Rank
	}
	if updates.Role != nil {
		profile.Role = *updates.Role
	}
	if updates.LookingForDuo != nil {
		profile.LookingForDuo = *updates.LookingForDuo
	}
	if updates.LookingForClash != nil {
		profile.LookingForClash = *updates.LookingForClash
	}
	if updates.Email != nil {
		profile.Email = *updates.Email
	}
	if updates.AvatarKey != nil {
		profile.AvatarKey = *updates.AvatarKey
	}
	m.profiles[userID] = profile
	return &profile, nil
}

func (m *MemoryStore) DeleteUserProfile(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.profiles, userID)
	return nil
}

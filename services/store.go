package services

import (
	"context"

	"premadehub_server/models"
)

// TeamStore owns the authoritative set of Team records. AddMember is the one
// mandatory mutual-exclusion boundary in the system: its capacity and
// duplicate checks must be atomic with the append relative to other
// membership mutations on the same team, so last-seat races resolve to
// exactly one winner.
type TeamStore interface {
	// CreateTeam persists a new team record.
	CreateTeam(ctx context.Context, team models.Team) error
	// GetTeam returns a team by id regardless of status, or ErrTeamNotFound.
	GetTeam(ctx context.Context, teamID string) (*models.Team, error)
	// AddMember appends userID to the member list. Fails with ErrTeamNotFound
	// (missing or inactive team), ErrTeamFull, or ErrAlreadyMember.
	AddMember(ctx context.Context, teamID, userID string) error
	// RemoveMember removes userID if present; removing an absent member is a
	// no-op, not an error. Fails with ErrTeamNotFound for a missing team.
	RemoveMember(ctx context.Context, teamID, userID string) error
	// UpdateTeamName renames an active team, or fails with ErrTeamNotFound.
	UpdateTeamName(ctx context.Context, teamID, name string) error
	// UpdateTeamPrivacy changes an active team's privacy, or fails with
	// ErrTeamNotFound.
	UpdateTeamPrivacy(ctx context.Context, teamID, privacy string) error
	// DeactivateTeam soft-deletes an active team, or fails with
	// ErrTeamNotFound.
	DeactivateTeam(ctx context.Context, teamID string) error
	// ListTeamsByMember returns all active teams containing userID.
	ListTeamsByMember(ctx context.Context, userID string) ([]models.Team, error)
	// ListOpenTeams returns active, open, non-full teams ordered by createdAt
	// descending, bounded by limit.
	ListOpenTeams(ctx context.Context, limit int32) ([]models.Team, error)
}

// InvitationStore owns TeamInvitation records. Status flips are
// compare-and-set on the pending state, never blind writes.
type InvitationStore interface {
	CreateInvitation(ctx context.Context, invitation models.TeamInvitation) error
	GetInvitation(ctx context.Context, invitationID string) (*models.TeamInvitation, error)
	// ListPendingInvitations returns pending invitations addressed to the
	// user, newest first.
	ListPendingInvitations(ctx context.Context, toUserID string) ([]models.TeamInvitation, error)
	HasPendingInvitation(ctx context.Context, fromUserID, toUserID string) (bool, error)
	// TransitionInvitation flips a pending invitation to a terminal status.
	// Fails with ErrInvitationNotFound or ErrInvalidState.
	TransitionInvitation(ctx context.Context, invitationID, status string) error
}

// JoinRequestStore owns JoinRequest records.
type JoinRequestStore interface {
	CreateJoinRequest(ctx context.Context, request models.JoinRequest) error
	GetJoinRequest(ctx context.Context, requestID string) (*models.JoinRequest, error)
	// ListPendingJoinRequests returns pending requests for a team, newest
	// first.
	ListPendingJoinRequests(ctx context.Context, teamID string) ([]models.JoinRequest, error)
	HasPendingJoinRequest(ctx context.Context, teamID, userID string) (bool, error)
	// TransitionJoinRequest flips a pending request to a terminal status.
	// Fails with ErrRequestNotFound or ErrInvalidState.
	TransitionJoinRequest(ctx context.Context, requestID, status string) error
	// ReopenJoinRequest compensates a failed accept by flipping an accepted
	// request back to pending. Fails with ErrRequestNotFound or
	// ErrInvalidState.
	ReopenJoinRequest(ctx context.Context, requestID string) error
}

// UserProfileStore owns player profile records.
type UserProfileStore interface {
	PutUserProfile(ctx context.Context, profile models.UserProfile) error
	// GetUserProfile returns a profile or ErrProfileNotFound.
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	// UpdateUserProfile applies the set fields of a partial update to an
	// existing profile and returns the result, or ErrProfileNotFound.
	UpdateUserProfile(ctx context.Context, userID string, updates models.UserProfileUpdates) (*models.UserProfile, error)
	DeleteUserProfile(ctx context.Context, userID string) error
}

// UserDirectory is the read-only profile lookup the coordinators use to
// denormalize display data into invitation and join request records.
type UserDirectory interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

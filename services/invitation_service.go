package services

import (
	"context"
	"time"

	"premadehub_server/models"

	"github.com/google/uuid"
)

// InvitationService handles the team invitation lifecycle: a directed
// proposal from one player to another to form a brand-new team. Accepting
// never attaches to an existing team.
type InvitationService struct {
	Store InvitationStore
	Teams TeamStore
	Users UserDirectory
}

// SendInvitation snapshots the inviter's display identity and creates a
// pending invitation. A failed profile lookup aborts before anything is
// written. Duplicate prevention is the caller's job via
// HasPendingInvitation; two concurrent sends can race and both land.
func (s *InvitationService) SendInvitation(ctx context.Context, fromUserID, toUserID, teamType string) (*models.TeamInvitation, error) {
	if !models.IsValidTeamType(teamType) {
		return nil, ErrInvalidTeamType
	}

	profile, err := s.Users.GetUserProfile(ctx, fromUserID)
	if err != nil {
		return nil, err
	}

	invitation := models.TeamInvitation{
		InvitationID: uuid.NewString(),
		FromUserID:   fromUserID,
		FromUserName: profile.SummonerName,
		FromUserTag:  profile.SummonerTag,
		ToUserID:     toUserID,
		TeamType:     teamType,
		Status:       models.StatusPending,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.Store.CreateInvitation(ctx, invitation); err != nil {
		return nil, err
	}
	return &invitation, nil
}

// HasPendingInvitation reports whether a pending invitation already exists
// for the (from, to) pair.
func (s *InvitationService) HasPendingInvitation(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	return s.Store.HasPendingInvitation(ctx, fromUserID, toUserID)
}

// GetPendingInvitations lists pending invitations addressed to the user,
// newest first.
func (s *InvitationService) GetPendingInvitations(ctx context.Context, toUserID string) ([]models.TeamInvitation, error) {
	return s.Store.ListPendingInvitations(ctx, toUserID)
}

// AcceptInvitation flips a pending invitation to accepted and creates the
// team: the inviter becomes the creator, then the invitee takes the second
// seat. The compare-and-set flip runs first so concurrent accepts produce
// exactly one team; the loser sees ErrInvalidState. Only the invitee may
// accept.
func (s *InvitationService) AcceptInvitation(ctx context.Context, invitationID, callerID string) (*models.Team, error) {
	invitation, err := s.Store.GetInvitation(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	if invitation.ToUserID != callerID {
		return nil, ErrUnauthorized
	}

	if err := s.Store.TransitionInvitation(ctx, invitationID, models.StatusAccepted); err != nil {
		return nil, err
	}

	team := models.Team{
		TeamID:    uuid.NewString(),
		Type:      invitation.TeamType,
		Name:      models.DefaultTeamName(invitation.TeamType),
		Privacy:   models.TeamPrivacyInviteOnly,
		CreatedBy: invitation.FromUserID,
		MemberIDs: []string{invitation.FromUserID},
		Status:    models.TeamStatusActive,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.Teams.CreateTeam(ctx, team); err != nil {
		return nil, err
	}
	if err := s.Teams.AddMember(ctx, team.TeamID, invitation.ToUserID); err != nil {
		return nil, err
	}
	team.MemberIDs = append(team.MemberIDs, invitation.ToUserID)
	return &team, nil
}

// RejectInvitation flips a pending invitation to rejected. Only the invitee
// may reject.
func (s *InvitationService) RejectInvitation(ctx context.Context, invitationID, callerID string) error {
	invitation, err := s.Store.GetInvitation(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.ToUserID != callerID {
		return ErrUnauthorized
	}
	return s.Store.TransitionInvitation(ctx, invitationID, models.StatusRejected)
}

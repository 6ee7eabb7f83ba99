package services

import (
	"context"
	"log"
	"time"

	"premadehub_server/models"

	"github.com/google/uuid"
)

// JoinRequestService handles join requests against existing open teams.
// Listing and resolving requests is restricted to the team's creator.
type JoinRequestService struct {
	Store JoinRequestStore
	Teams TeamStore
	Users UserDirectory
}

// SendJoinRequest creates a pending request carrying snapshots of the team's
// name/type and the requester's display identity. Capacity is deliberately
// not checked here: a team may hold more pending requests than open seats,
// and capacity is enforced at accept time.
func (s *JoinRequestService) SendJoinRequest(ctx context.Context, teamID, userID string) (*models.JoinRequest, error) {
	pending, err := s.Store.HasPendingJoinRequest(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrDuplicateRequest
	}

	team, err := s.Teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.IsActive() {
		return nil, ErrTeamNotFound
	}

	profile, err := s.Users.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	request := models.JoinRequest{
		RequestID: uuid.NewString(),
		TeamID:    teamID,
		TeamName:  team.Name,
		TeamType:  team.Type,
		UserID:    userID,
		UserName:  profile.SummonerName,
		UserTag:   profile.SummonerTag,
		UserRank:  profile.Rank,
		UserRole:  profile.Role,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.Store.CreateJoinRequest(ctx, request); err != nil {
		return nil, err
	}
	return &request, nil
}

// GetTeamJoinRequests lists pending requests for a team, newest first. Only
// the team's creator may see them.
func (s *JoinRequestService) GetTeamJoinRequests(ctx context.Context, teamID, callerID string) ([]models.JoinRequest, error) {
	team, err := s.Teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.IsActive() {
		return nil, ErrTeamNotFound
	}
	if team.CreatedBy != callerID {
		return nil, ErrUnauthorized
	}
	return s.Store.ListPendingJoinRequests(ctx, teamID)
}

// AcceptJoinRequest grants the requester a seat. Capacity is validated
// before the status flip, the flip is a compare-and-set so the same request
// cannot be accepted twice, and a member append that still loses a last-seat
// race is compensated by reopening the request: the caller then sees the
// store's ErrTeamFull and the request stays pending.
func (s *JoinRequestService) AcceptJoinRequest(ctx context.Context, requestID, callerID string) error {
	request, err := s.Store.GetJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}

	team, err := s.Teams.GetTeam(ctx, request.TeamID)
	if err != nil {
		return err
	}
	if !team.IsActive() {
		return ErrTeamNotFound
	}
	if team.CreatedBy != callerID {
		return ErrUnauthorized
	}
	if team.IsFull() {
		return ErrTeamFull
	}

	if err := s.Store.TransitionJoinRequest(ctx, requestID, models.StatusAccepted); err != nil {
		return err
	}

	if err := s.Teams.AddMember(ctx, request.TeamID, request.UserID); err != nil {
		if reopenErr := s.Store.ReopenJoinRequest(ctx, requestID); reopenErr != nil {
			log.Printf("Failed to reopen join request %s after member add failure: %v", requestID, reopenErr)
		}
		return err
	}
	return nil
}

// RejectJoinRequest flips a pending request to rejected. Only the team's
// creator may reject.
func (s *JoinRequestService) RejectJoinRequest(ctx context.Context, requestID, callerID string) error {
	request, err := s.Store.GetJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}

	team, err := s.Teams.GetTeam(ctx, request.TeamID)
	if err != nil {
		return err
	}
	if team.CreatedBy != callerID {
		return ErrUnauthorized
	}
	return s.Store.TransitionJoinRequest(ctx, requestID, models.StatusRejected)
}

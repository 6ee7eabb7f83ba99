package services

import (
	"context"
	"time"

	"premadehub_server/models"

	"github.com/google/uuid"
)

// TeamService handles team lifecycle and membership operations
type TeamService struct {
	Store TeamStore
	Users UserDirectory
}

// CreateTeam creates a new active team with the creator as sole member.
// Creation never fails on capacity since every type seats at least two.
func (s *TeamService) CreateTeam(ctx context.Context, teamType, name, privacy, createdBy string) (*models.Team, error) {
	if !models.IsValidTeamType(teamType) {
		return nil, ErrInvalidTeamType
	}
	if name == "" {
		name = models.DefaultTeamName(teamType)
	}
	switch privacy {
	case "":
		privacy = models.TeamPrivacyInviteOnly
	case models.TeamPrivacyOpen, models.TeamPrivacyInviteOnly:
	default:
		return nil, ErrInvalidPrivacy
	}

	team := models.Team{
		TeamID:    uuid.NewString(),
		Type:      teamType,
		Name:      name,
		Privacy:   privacy,
		CreatedBy: createdBy,
		MemberIDs: []string{createdBy},
		Status:    models.TeamStatusActive,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.Store.CreateTeam(ctx, team); err != nil {
		return nil, err
	}
	return &team, nil
}

// GetTeam returns a team by id with its member list enriched from the user
// directory. Direct-id lookup is the one read path that includes inactive
// teams.
func (s *TeamService) GetTeam(ctx context.Context, teamID string) (*models.TeamDetails, error) {
	team, err := s.Store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return s.enrichTeam(ctx, *team), nil
}

// GetMyTeams returns all active teams the user belongs to, enriched.
func (s *TeamService) GetMyTeams(ctx context.Context, userID string) ([]models.TeamDetails, error) {
	teams, err := s.Store.ListTeamsByMember(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]models.TeamDetails, 0, len(teams))
	for _, team := range teams {
		details = append(details, *s.enrichTeam(ctx, team))
	}
	return details, nil
}

// AddMember appends a user to the team. Capacity and duplicate enforcement
// happen atomically inside the store.
func (s *TeamService) AddMember(ctx context.Context, teamID, userID string) error {
	return s.Store.AddMember(ctx, teamID, userID)
}

// RemoveMember removes a user from the team; removing an absent user is a
// no-op. The team stays active even when it ends up empty; deactivation is
// always an explicit call.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID string) error {
	return s.Store.RemoveMember(ctx, teamID, userID)
}

// RenameTeam updates an active team's display name.
func (s *TeamService) RenameTeam(ctx context.Context, teamID, name string) error {
	return s.Store.UpdateTeamName(ctx, teamID, name)
}

// UpdateTeamPrivacy switches an active team between open and invite-only.
func (s *TeamService) UpdateTeamPrivacy(ctx context.Context, teamID, privacy string) error {
	if privacy != models.TeamPrivacyOpen && privacy != models.TeamPrivacyInviteOnly {
		return ErrInvalidPrivacy
	}
	return s.Store.UpdateTeamPrivacy(ctx, teamID, privacy)
}

// DeleteTeam soft-deletes a team. Only a current member may deactivate it.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID, callerID string) error {
	team, err := s.Store.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if !team.IsActive() {
		return ErrTeamNotFound
	}
	if !team.HasMember(callerID) {
		return ErrUnauthorized
	}
	return s.Store.DeactivateTeam(ctx, teamID)
}

// enrichTeam attaches profile snapshots for every member. Members whose
// profile lookup fails are skipped rather than failing the whole read.
func (s *TeamService) enrichTeam(ctx context.Context, team models.Team) *models.TeamDetails {
	details := models.TeamDetails{Team: team, Members: []models.TeamMember{}}
	for _, memberID := range team.MemberIDs {
		profile, err := s.Users.GetUserProfile(ctx, memberID)
		if err != nil {
			continue
		}
		details.Members = append(details.Members, models.TeamMember{
			UserID:       memberID,
			SummonerName: profile.SummonerName,
			SummonerTag:  profile.SummonerTag,
			Rank:         profile.Rank,
			Role:         profile.Role,
		})
	}
	return &details
}

package services

import (
	"context"

	"premadehub_server/models"
)

// DefaultBrowseLimit is the fixed page size for the browse read path.
const DefaultBrowseLimit = 50

// BrowseService is the read path listing open, non-full teams a player could
// request to join.
type BrowseService struct {
	Teams TeamStore
	Users UserDirectory
}

// GetBrowsableTeams lists active, open, non-full teams newest first,
// excluding any team the caller already belongs to. Pagination beyond the
// single page is out of scope.
func (s *BrowseService) GetBrowsableTeams(ctx context.Context, excludeUserID string, limit int32) ([]models.TeamDetails, error) {
	if limit <= 0 || limit > DefaultBrowseLimit {
		limit = DefaultBrowseLimit
	}

	teams, err := s.Teams.ListOpenTeams(ctx, limit)
	if err != nil {
		return nil, err
	}

	details := make([]models.TeamDetails, 0, len(teams))
	for _, team := range teams {
		if team.HasMember(excludeUserID) {
			continue
		}
		enriched := models.TeamDetails{Team: team, Members: []models.TeamMember{}}
		for _, memberID := range team.MemberIDs {
			profile, err := s.Users.GetUserProfile(ctx, memberID)
			if err != nil {
				continue
			}
			enriched.Members = append(enriched.Members, models.TeamMember{
				UserID:       memberID,
				SummonerName: profile.SummonerName,
				SummonerTag:  profile.SummonerTag,
				Rank:         profile.Rank,
				Role:         profile.Role,
			})
		}
		details = append(details, enriched)
	}
	return details, nil
}

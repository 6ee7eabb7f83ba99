package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"premadehub_server/models"
	"premadehub_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoTeamStore persists teams in the Teams table. Membership mutations use
// conditional updates so capacity and duplicate checks are atomic with the
// write: DynamoDB rejects the update when the condition no longer holds, and
// a re-read classifies the failure.
type DynamoTeamStore struct {
	Dynamo *DynamoService
}

func teamKey(teamID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"teamId": &types.AttributeValueMemberS{Value: teamID},
	}
}

func (s *DynamoTeamStore) CreateTeam(ctx context.Context, team models.Team) error {
	return s.Dynamo.PutItem(ctx, models.Team{}.TableName(), team)
}

func (s *DynamoTeamStore) GetTeam(ctx context.Context, teamID string) (*models.Team, error) {
	item, err := s.Dynamo.GetItem(ctx, models.Team{}.TableName(), teamKey(teamID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrTeamNotFound
	}

	var team models.Team
	if err := attributevalue.UnmarshalMap(item, &team); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}
	return &team, nil
}

const memberMutationAttempts = 3

func (s *DynamoTeamStore) AddMember(ctx context.Context, teamID, userID string) error {
	for attempt := 0; attempt < memberMutationAttempts; attempt++ {
		team, err := s.GetTeam(ctx, teamID)
		if err != nil {
			return err
		}
		if !team.IsActive() {
			return ErrTeamNotFound
		}
		if team.HasMember(userID) {
			return ErrAlreadyMember
		}
		if team.IsFull() {
			return ErrTeamFull
		}

		_, err = s.Dynamo.UpdateItemWithCondition(
			ctx,
			models.Team{}.TableName(),
			teamKey(teamID),
			"SET memberIds = list_append(memberIds, :new)",
			"attribute_exists(teamId) AND #s = :active AND size(memberIds) < :cap AND NOT contains(memberIds, :uid)",
			map[string]types.AttributeValue{
				":new": &types.AttributeValueMemberL{
					Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: userID}},
				},
				":active": &types.AttributeValueMemberS{Value: models.TeamStatusActive},
				":cap":    &types.AttributeValueMemberN{Value: strconv.Itoa(team.MaxSize())},
				":uid":    &types.AttributeValueMemberS{Value: userID},
			},
			map[string]string{"#s": "status"},
		)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrConditionalCheckFailed) {
			return err
		}
		// Lost a race; re-read and either classify or retry.
	}
	return fmt.Errorf("failed to add member to team '%s': too many conflicting writes", teamID)
}

func (s *DynamoTeamStore) RemoveMember(ctx context.Context, teamID, userID string) error {
	for attempt := 0; attempt < memberMutationAttempts; attempt++ {
		team, err := s.GetTeam(ctx, teamID)
		if err != nil {
			return err
		}

		index := -1
		for i, id := range team.MemberIDs {
			if id == userID {
				index = i
				break
			}
		}
		if index < 0 {
			return nil // Absent members are a no-op.
		}

		path := fmt.Sprintf("memberIds[%d]", index)
		_, err = s.Dynamo.UpdateItemWithCondition(
			ctx,
			models.Team{}.TableName(),
			teamKey(teamID),
			"REMOVE "+path,
			path+" = :uid",
			map[string]types.AttributeValue{
				":uid": &types.AttributeValueMemberS{Value: userID},
			},
			nil,
		)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrConditionalCheckFailed) {
			return err
		}
		// The list shifted under us; re-read for the new index.
	}
	return fmt.Errorf("failed to remove member from team '%s': too many conflicting writes", teamID)
}

func (s *DynamoTeamStore) UpdateTeamName(ctx context.Context, teamID, name string) error {
	return s.updateActiveTeamField(ctx, teamID, "SET #n = :v", map[string]string{"#n": "name", "#s": "status"}, name)
}

func (s *DynamoTeamStore) UpdateTeamPrivacy(ctx context.Context, teamID, privacy string) error {
	return s.updateActiveTeamField(ctx, teamID, "SET privacy = :v", map[string]string{"#s": "status"}, privacy)
}

func (s *DynamoTeamStore) updateActiveTeamField(ctx context.Context, teamID, updateExpression string, names map[string]string, value string) error {
	_, err := s.Dynamo.UpdateItemWithCondition(
		ctx,
		models.Team{}.TableName(),
		teamKey(teamID),
		updateExpression,
		"attribute_exists(teamId) AND #s = :active",
		map[string]types.AttributeValue{
			":v":      &types.AttributeValueMemberS{Value: value},
			":active": &types.AttributeValueMemberS{Value: models.TeamStatusActive},
		},
		names,
	)
	if errors.Is(err, ErrConditionalCheckFailed) {
		return ErrTeamNotFound
	}
	return err
}

func (s *DynamoTeamStore) DeactivateTeam(ctx context.Context, teamID string) error {
	_, err := s.Dynamo.UpdateItemWithCondition(
		ctx,
		models.Team{}.TableName(),
		teamKey(teamID),
		"SET #s = :inactive",
		"attribute_exists(teamId) AND #s = :active",
		map[string]types.AttributeValue{
			":inactive": &types.AttributeValueMemberS{Value: models.TeamStatusInactive},
			":active":   &types.AttributeValueMemberS{Value: models.TeamStatusActive},
		},
		map[string]string{"#s": "status"},
	)
	if errors.Is(err, ErrConditionalCheckFailed) {
		return ErrTeamNotFound
	}
	return err
}

func (s *DynamoTeamStore) ListTeamsByMember(ctx context.Context, userID string) ([]models.Team, error) {
	var teams []models.Team
	err := s.Dynamo.ScanWithFilter(
		ctx,
		models.Team{}.TableName(),
		"#s = :active AND contains(memberIds, :uid)",
		map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: models.TeamStatusActive},
			":uid":    &types.AttributeValueMemberS{Value: userID},
		},
		map[string]string{"#s": "status"},
		nil,
		&teams,
	)
	if err != nil {
		return nil, err
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].CreatedAt > teams[j].CreatedAt
	})
	return teams, nil
}

func (s *DynamoTeamStore) ListOpenTeams(ctx context.Context, limit int32) ([]models.Team, error) {
	var teams []models.Team
	err := s.Dynamo.ScanWithFilter(
		ctx,
		models.Team{}.TableName(),
		"#s = :active AND privacy = :open",
		map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberS{Value: models.TeamStatusActive},
			":open":   &types.AttributeValueMemberS{Value: models.TeamPrivacyOpen},
		},
		map[string]string{"#s": "status"},
		func(item map[string]types.AttributeValue) bool {
			// Full teams are skipped in code since capacity depends on type.
			teamType := utils.ExtractString(item, "type")
			members := utils.ExtractStringList(item, "memberIds")
			return len(members) < models.TeamCapacity(teamType)
		},
		&teams,
	)
	if err != nil {
		return nil, err
	}

	sort.Slice(teams, func(i, j int) bool {
		return teams[i].CreatedAt > teams[j].CreatedAt
	})
	if int32(len(teams)) > limit {
		teams = teams[:limit]
	}
	return teams, nil
}

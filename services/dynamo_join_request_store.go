package services

import (
	"context"
	"errors"
	"fmt"

	"premadehub_server/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// GSI on the JoinRequests table: teamId (HASH), createdAt (RANGE).
const joinRequestTeamIndex = "TeamIndex"

// DynamoJoinRequestStore persists join requests keyed by requestId, with a
// GSI for the per-team read path.
type DynamoJoinRequestStore struct {
	Dynamo *DynamoService
}

func joinRequestKey(requestID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"requestId": &types.AttributeValueMemberS{Value: requestID},
	}
}

func (s *DynamoJoinRequestStore) CreateJoinRequest(ctx context.Context, request models.JoinRequest) error {
	return s.Dynamo.PutItem(ctx, models.JoinRequest{}.TableName(), request)
}

func (s *DynamoJoinRequestStore) GetJoinRequest(ctx context.Context, requestID string) (*models.JoinRequest, error) {
	item, err := s.Dynamo.GetItem(ctx, models.JoinRequest{}.TableName(), joinRequestKey(requestID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrRequestNotFound
	}

	var request models.JoinRequest
	if err := attributevalue.UnmarshalMap(item, &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal join request: %w", err)
	}
	return &request, nil
}

func (s *DynamoJoinRequestStore) ListPendingJoinRequests(ctx context.Context, teamID string) ([]models.JoinRequest, error) {
	tableName := models.JoinRequest{}.TableName()
	input := &dynamodb.QueryInput{
		TableName:              &tableName,
		IndexName:              aws.String(joinRequestTeamIndex),
		KeyConditionExpression: aws.String("teamId = :teamId"),
		FilterExpression:       aws.String("#s = :pending"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":teamId":  &types.AttributeValueMemberS{Value: teamID},
			":pending": &types.AttributeValueMemberS{Value: models.StatusPending},
		},
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ScanIndexForward:         aws.Bool(false), // newest first
	}

	items, err := s.Dynamo.QueryItemsWithQueryInput(ctx, input)
	if err != nil {
		return nil, err
	}

	var requests []models.JoinRequest
	if err := attributevalue.UnmarshalListOfMaps(items, &requests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal join requests: %w", err)
	}
	return requests, nil
}

func (s *DynamoJoinRequestStore) HasPendingJoinRequest(ctx context.Context, teamID, userID string) (bool, error) {
	tableName := models.JoinRequest{}.TableName()
	input := &dynamodb.QueryInput{
		TableName:              &tableName,
		IndexName:              aws.String(joinRequestTeamIndex),
		KeyConditionExpression: aws.String("teamId = :teamId"),
		FilterExpression:       aws.String("userId = :userId AND #s = :pending"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":teamId":  &types.AttributeValueMemberS{Value: teamID},
			":userId":  &types.AttributeValueMemberS{Value: userID},
			":pending": &types.AttributeValueMemberS{Value: models.StatusPending},
		},
		ExpressionAttributeNames: map[string]string{"#s": "status"},
	}

	items, err := s.Dynamo.QueryItemsWithQueryInput(ctx, input)
	if err != nil {
		return false, err
	}
	return len(items) > 0, nil
}

func (s *DynamoJoinRequestStore) TransitionJoinRequest(ctx context.Context, requestID, status string) error {
	return s.flipStatus(ctx, requestID, models.StatusPending, status)
}

func (s *DynamoJoinRequestStore) ReopenJoinRequest(ctx context.Context, requestID string) error {
	return s.flipStatus(ctx, requestID, models.StatusAccepted, models.StatusPending)
}

func (s *DynamoJoinRequestStore) flipStatus(ctx context.Context, requestID, from, to string) error {
	_, err := s.Dynamo.UpdateItemWithCondition(
		ctx,
		models.JoinRequest{}.TableName(),
		joinRequestKey(requestID),
		"SET #s = :next",
		"attribute_exists(requestId) AND #s = :from",
		map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberS{Value: to},
			":from": &types.AttributeValueMemberS{Value: from},
		},
		map[string]string{"#s": "status"},
	)
	if errors.Is(err, ErrConditionalCheckFailed) {
		if _, getErr := s.GetJoinRequest(ctx, requestID); getErr != nil {
			return getErr
		}
		return ErrInvalidState
	}
	return err
}

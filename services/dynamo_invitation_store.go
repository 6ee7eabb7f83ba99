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

// GSI names on the TeamInvitations table.
const (
	invitationInviteeIndex = "InviteeIndex" // toUserId (HASH), createdAt (RANGE)
	invitationInviterIndex = "InviterIndex" // fromUserId (HASH)
)

// DynamoInvitationStore persists invitations in the TeamInvitations table keyed by
// invitationId, with GSIs for the invitee and inviter read paths.
type DynamoInvitationStore struct {
	Dynamo *DynamoService
}

func invitationKey(invitationID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"invitationId": &types.AttributeValueMemberS{Value: invitationID},
	}
}

func (s *DynamoInvitationStore) CreateInvitation(ctx context.Context, invitation models.TeamInvitation) error {
	return s.Dynamo.PutItem(ctx, models.TeamInvitation{}.TableName(), invitation)
}

func (s *DynamoInvitationStore) GetInvitation(ctx context.Context, invitationID string) (*models.TeamInvitation, error) {
	item, err := s.Dynamo.GetItem(ctx, models.TeamInvitation{}.TableName(), invitationKey(invitationID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrInvitationNotFound
	}

	var invitation models.TeamInvitation
	if err := attributevalue.UnmarshalMap(item, &invitation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invitation: %w", err)
	}
	return &invitation, nil
}

func (s *DynamoInvitationStore) ListPendingInvitations(ctx context.Context, toUserID string) ([]models.TeamInvitation, error) {
	tableName := models.TeamInvitation{}.TableName()
	input := &dynamodb.QueryInput{
		TableName:              &tableName,
		IndexName:              aws.String(invitationInviteeIndex),
		KeyConditionExpression: aws.String("toUserId = :to"),
		FilterExpression:       aws.String("#s = :pending"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":      &types.AttributeValueMemberS{Value: toUserID},
			":pending": &types.AttributeValueMemberS{Value: models.StatusPending},
		},
		ExpressionAttributeNames: map[string]string{"#s": "status"},
		ScanIndexForward:         aws.Bool(false), // newest first
	}

	items, err := s.Dynamo.QueryItemsWithQueryInput(ctx, input)
	if err != nil {
		return nil, err
	}

	var invitations []models.TeamInvitation
	if err := attributevalue.UnmarshalListOfMaps(items, &invitations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invitations: %w", err)
	}
	return invitations, nil
}

func (s *DynamoInvitationStore) HasPendingInvitation(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	tableName := models.TeamInvitation{}.TableName()
	input := &dynamodb.QueryInput{
		TableName:              &tableName,
		IndexName:              aws.String(invitationInviterIndex),
		KeyConditionExpression: aws.String("fromUserId = :from"),
		FilterExpression:       aws.String("toUserId = :to AND #s = :pending"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":    &types.AttributeValueMemberS{Value: fromUserID},
			":to":      &types.AttributeValueMemberS{Value: toUserID},
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

func (s *DynamoInvitationStore) TransitionInvitation(ctx context.Context, invitationID, status string) error {
	_, err := s.Dynamo.UpdateItemWithCondition(
		ctx,
		models.TeamInvitation{}.TableName(),
		invitationKey(invitationID),
		"SET #s = :next",
		"attribute_exists(invitationId) AND #s = :pending",
		map[string]types.AttributeValue{
			":next":    &types.AttributeValueMemberS{Value: status},
			":pending": &types.AttributeValueMemberS{Value: models.StatusPending},
		},
		map[string]string{"#s": "status"},
	)
	if errors.Is(err, ErrConditionalCheckFailed) {
		if _, getErr := s.GetInvitation(ctx, invitationID); getErr != nil {
			return getErr
		}
		return ErrInvalidState
	}
	return err
}

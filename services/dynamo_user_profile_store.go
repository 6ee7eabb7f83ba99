package services

import (
	"context"
	"errors"
	"fmt"

	"premadehub_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoUserProfileStore persists player profiles in the UserProfiles table.
type DynamoUserProfileStore struct {
	Dynamo *DynamoService
}

func userProfileKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}

func (s *DynamoUserProfileStore) PutUserProfile(ctx context.Context, profile models.UserProfile) error {
	return s.Dynamo.PutItem(ctx, models.UserProfilesTable, profile)
}

func (s *DynamoUserProfileStore) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	item, err := s.Dynamo.GetItem(ctx, models.UserProfilesTable, userProfileKey(userID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrProfileNotFound
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

func (s *DynamoUserProfileStore) UpdateUserProfile(ctx context.Context, userID string, updates models.UserProfileUpdates) (*models.UserProfile, error) {
	fields := updates.Fields()
	if len(fields) == 0 {
		return s.GetUserProfile(ctx, userID)
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for field, value := range fields {
		attributeValue, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile field %s: %w", field, err)
		}
		placeholder := ":" + field
		attributeName := "#" + field
		updateExpression += " " + attributeName + " = " + placeholder + ","

		expressionAttributeValues[placeholder] = attributeValue
		expressionAttributeNames[attributeName] = field
	}
	updateExpression = updateExpression[:len(updateExpression)-1]

	updatedItem, err := s.Dynamo.UpdateItemWithCondition(
		ctx,
		models.UserProfilesTable,
		userProfileKey(userID),
		updateExpression,
		"attribute_exists(userId)",
		expressionAttributeValues,
		expressionAttributeNames,
	)
	if errors.Is(err, ErrConditionalCheckFailed) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}
	return &profile, nil
}

func (s *DynamoUserProfileStore) DeleteUserProfile(ctx context.Context, userID string) error {
	return s.Dynamo.DeleteItem(ctx, models.UserProfilesTable, userProfileKey(userID))
}

package services

import (
	"context"
	"errors"

	"premadehub_server/models"
)

// UserProfileService manages player profiles and doubles as the
// UserDirectory the coordinators read from. The userId comes from the
// external identity provider; this service never authenticates.
type UserProfileService struct {
	Store UserProfileStore
}

// AddUserProfile creates or replaces a player profile.
func (s *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.UserID == "" {
		return nil, errors.New("userId is required")
	}
	if err := s.Store.PutUserProfile(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserProfile retrieves a profile by the identity provider's user id.
func (s *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return s.Store.GetUserProfile(ctx, userID)
}

// UpdateUserProfile applies a partial update to a profile; only set fields
// are written.
func (s *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updates models.UserProfileUpdates) (*models.UserProfile, error) {
	return s.Store.UpdateUserProfile(ctx, userID, updates)
}

// DeleteUserProfile removes a profile.
func (s *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	return s.Store.DeleteUserProfile(ctx, userID)
}

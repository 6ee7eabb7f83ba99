package services_test

import (
	"testing"

	"premadehub_server/models"
	"premadehub_server/services"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUserProfileRequiresUserID(t *testing.T) {
	env := setupTest(t)

	_, err := env.profiles.AddUserProfile(env.ctx, models.UserProfile{SummonerName: "NoID"})
	require.Error(t, err)
}

func TestUpdateProfileTogglesLookingFlags(t *testing.T) {
	env := setupTest(t)

	updated, err := env.profiles.UpdateUserProfile(env.ctx, "u1", models.UserProfileUpdates{
		LookingForDuo: aws.Bool(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.LookingForDuo)
	assert.False(t, updated.LookingForClash)

	// The flag round-trips through a fresh read.
	stored, err := env.profiles.GetUserProfile(env.ctx, "u1")
	require.NoError(t, err)
	assert.True(t, stored.LookingForDuo)

	updated, err = env.profiles.UpdateUserProfile(env.ctx, "u1", models.UserProfileUpdates{
		LookingForDuo:   aws.Bool(false),
		LookingForClash: aws.Bool(true),
	})
	require.NoError(t, err)
	assert.False(t, updated.LookingForDuo)
	assert.True(t, updated.LookingForClash)
}

func TestUpdateProfileLeavesUnsetFieldsAlone(t *testing.T) {
	env := setupTest(t)

	updated, err := env.profiles.UpdateUserProfile(env.ctx, "u1", models.UserProfileUpdates{
		Rank: aws.String("Grandmaster"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Grandmaster", updated.Rank)
	assert.Equal(t, "Faker", updated.SummonerName)
	assert.Equal(t, "KR", updated.Region)
	assert.Equal(t, "Faker#KR1", updated.DisplayName())
}

func TestUpdateProfileMissingUser(t *testing.T) {
	env := setupTest(t)

	_, err := env.profiles.UpdateUserProfile(env.ctx, "ghost", models.UserProfileUpdates{
		Rank: aws.String("Iron"),
	})
	require.ErrorIs(t, err, services.ErrProfileNotFound)
}

func TestUpdateProfileEmptyUpdateIsNoOp(t *testing.T) {
	env := setupTest(t)

	updated, err := env.profiles.UpdateUserProfile(env.ctx, "u2", models.UserProfileUpdates{})
	require.NoError(t, err)
	assert.Equal(t, "Caps", updated.SummonerName)
	assert.Empty(t, models.UserProfileUpdates{}.Fields())
}

package models

// UserProfile defines the structure for player profiles. The userId is the
// opaque identifier supplied by the external identity provider.
type UserProfile struct {
	UserID          string `json:"userId" dynamodbav:"userId"` // Partition Key (PK)
	SummonerName    string `json:"summonerName" dynamodbav:"summonerName"`
	SummonerTag     string `json:"summonerTag" dynamodbav:"summonerTag"`
	Region          string `json:"region" dynamodbav:"region"`
	Rank            string `json:"rank" dynamodbav:"rank"`
	Role            string `json:"role" dynamodbav:"role"`
	LookingForDuo   bool   `json:"lookingForDuo" dynamodbav:"lookingForDuo"`
	LookingForClash bool   `json:"lookingForClash" dynamodbav:"lookingForClash"`
	Email           string `json:"email" dynamodbav:"email"`
	AvatarKey       string `json:"avatarKey,omitempty" dynamodbav:"avatarKey,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"

// DisplayName returns the "Name#Tag" form used by clients.
func (p UserProfile) DisplayName() string {
	return p.SummonerName + "#" + p.SummonerTag
}

// UserProfileUpdates carries a partial profile update. Nil fields are left
// untouched; the userId is never updatable.
type UserProfileUpdates struct {
	SummonerName    *string `json:"summonerName,omitempty"`
	SummonerTag     *string `json:"summonerTag,omitempty"`
	Region          *string `json:"region,omitempty"`
	Rank            *string `json:"rank,omitempty"`
	Role            *string `json:"role,omitempty"`
	LookingForDuo   *bool   `json:"lookingForDuo,omitempty"`
	LookingForClash *bool   `json:"lookingForClash,omitempty"`
	Email           *string `json:"email,omitempty"`
	AvatarKey       *string `json:"avatarKey,omitempty"`
}

// Fields returns the set fields keyed by attribute name. Only names listed
// here can ever reach a storage backend.
func (u UserProfileUpdates) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.SummonerName != nil {
		fields["summonerName"] = *u.SummonerName
	}
	if u.SummonerTag != nil {
		fields["summonerTag"] = *u.SummonerTag
	}
	if u.Region != nil {
		fields["region"] = *u.Region
	}
	if u.Rank != nil {
		fields["rank"] = *u.Rank
	}
	if u.Role != nil {
		fields["role"] = *u.Role
	}
	if u.LookingForDuo != nil {
		fields["lookingForDuo"] = *u.LookingForDuo
	}
	if u.LookingForClash != nil {
		fields["lookingForClash"] = *u.LookingForClash
	}
	if u.Email != nil {
		fields["email"] = *u.Email
	}
	if u.AvatarKey != nil {
		fields["avatarKey"] = *u.AvatarKey
	}
	return fields
}

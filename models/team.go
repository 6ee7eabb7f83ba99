package models

// Team represents a capacity-bounded player team in DynamoDB
type Team struct {
	TeamID    string   `json:"teamId" dynamodbav:"teamId"`       // Partition Key (PK)
	Type      string   `json:"type" dynamodbav:"type"`           // "duo" or "clash"
	Name      string   `json:"name" dynamodbav:"name"`           // Mutable display name
	Privacy   string   `json:"privacy" dynamodbav:"privacy"`     // "open" or "invite_only"
	CreatedBy string   `json:"createdBy" dynamodbav:"createdBy"` // User who created the team
	MemberIDs []string `json:"memberIds" dynamodbav:"memberIds"` // Join order preserved
	Status    string   `json:"status" dynamodbav:"status"`       // "active" or "inactive"
	CreatedAt string   `json:"createdAt" dynamodbav:"createdAt"` // RFC 3339 timestamp
}

// TableName returns the DynamoDB table name for the Team model
func (Team) TableName() string {
	return "Teams"
}

// MaxSize returns the seat capacity for the team's type.
func (t Team) MaxSize() int {
	return TeamCapacity(t.Type)
}

// AvailableSlots returns the number of open seats.
func (t Team) AvailableSlots() int {
	return t.MaxSize() - len(t.MemberIDs)
}

// IsFull reports whether every seat is taken.
func (t Team) IsFull() bool {
	return len(t.MemberIDs) >= t.MaxSize()
}

// HasMember reports whether userID currently holds a seat.
func (t Team) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// IsActive reports whether the team has not been soft-deleted.
func (t Team) IsActive() bool {
	return t.Status == TeamStatusActive
}

// TeamMember is a member entry enriched with the player's profile
type TeamMember struct {
	UserID       string `json:"userId"`
	SummonerName string `json:"summonerName"`
	SummonerTag  string `json:"summonerTag"`
	Rank         string `json:"rank"`
	Role         string `json:"role"`
}

// TeamDetails is a Team plus the enriched member list returned on read paths
type TeamDetails struct {
	Team
	Members []TeamMember `json:"members"`
}

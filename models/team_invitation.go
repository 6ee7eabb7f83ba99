package models

// TeamInvitation represents a directed proposal to form a new team.
// The inviter's display identity is denormalized at send time and is not
// re-synced if the profile later changes.
type TeamInvitation struct {
	InvitationID string `json:"invitationId" dynamodbav:"invitationId"` // Partition Key (PK)
	FromUserID   string `json:"fromUserId" dynamodbav:"fromUserId"`
	FromUserName string `json:"fromUserName" dynamodbav:"fromUserName"`
	FromUserTag  string `json:"fromUserTag" dynamodbav:"fromUserTag"`
	ToUserID     string `json:"toUserId" dynamodbav:"toUserId"`
	TeamType     string `json:"teamType" dynamodbav:"teamType"` // "duo" or "clash"
	Status       string `json:"status" dynamodbav:"status"`     // "pending", "accepted", "rejected"
	CreatedAt    string `json:"createdAt" dynamodbav:"createdAt"`
}

// TableName returns the DynamoDB table name for the TeamInvitation model
func (TeamInvitation) TableName() string {
	return "TeamInvitations"
}

// InviterDisplayName returns the "Name#Tag" form used by clients.
func (i TeamInvitation) InviterDisplayName() string {
	return i.FromUserName + "#" + i.FromUserTag
}

package models

// JoinRequest represents a request to join an existing open team.
// Team name/type and the requester's display identity are snapshotted at
// request time.
type JoinRequest struct {
	RequestID string `json:"requestId" dynamodbav:"requestId"` // Partition Key (PK)
	TeamID    string `json:"teamId" dynamodbav:"teamId"`
	TeamName  string `json:"teamName" dynamodbav:"teamName"`
	TeamType  string `json:"teamType" dynamodbav:"teamType"`
	UserID    string `json:"userId" dynamodbav:"userId"`
	UserName  string `json:"userName" dynamodbav:"userName"`
	UserTag   string `json:"userTag" dynamodbav:"userTag"`
	UserRank  string `json:"userRank" dynamodbav:"userRank"`
	UserRole  string `json:"userRole" dynamodbav:"userRole"`
	Status    string `json:"status" dynamodbav:"status"` // "pending", "accepted", "rejected"
	CreatedAt string `json:"createdAt" dynamodbav:"createdAt"`
}

// TableName returns the DynamoDB table name for the JoinRequest model
func (JoinRequest) TableName() string {
	return "JoinRequests"
}

// RequesterDisplayName returns the "Name#Tag" form used by clients.
func (r JoinRequest) RequesterDisplayName() string {
	return r.UserName + "#" + r.UserTag
}

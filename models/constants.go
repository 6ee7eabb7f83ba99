package models

// Team types (duo = 2 players, clash = 5 players)
const (
	TeamTypeDuo   = "duo"
	TeamTypeClash = "clash"
)

// Team privacy settings
const (
	TeamPrivacyOpen       = "open"        // Anyone can request to join
	TeamPrivacyInviteOnly = "invite_only" // Only invited players can join
)

// Team statuses (teams are soft-deleted, never removed)
const (
	TeamStatusActive   = "active"
	TeamStatusInactive = "inactive"
)

// Invitation and join request statuses
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// TeamCapacity returns the fixed seat count for a team type.
func TeamCapacity(teamType string) int {
	if teamType == TeamTypeClash {
		return 5
	}
	return 2
}

// IsValidTeamType reports whether the given string is a known team type.
func IsValidTeamType(teamType string) bool {
	return teamType == TeamTypeDuo || teamType == TeamTypeClash
}

// DefaultTeamName returns the default display name for a team type.
func DefaultTeamName(teamType string) string {
	if teamType == TeamTypeClash {
		return "Clash Team"
	}
	return "Duo Team"
}

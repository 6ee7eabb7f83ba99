package services

import "errors"

// Typed failures returned by the coordination layer. Controllers map these
// onto HTTP status codes; no operation retries internally.
var (
	ErrTeamNotFound       = errors.New("team not found")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrRequestNotFound    = errors.New("join request not found")
	ErrInvalidState       = errors.New("record is not pending")
	ErrTeamFull           = errors.New("team is full")
	ErrAlreadyMember      = errors.New("user is already a member of this team")
	ErrDuplicateRequest   = errors.New("a pending join request already exists for this team")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrUnauthorized       = errors.New("not authorized to perform this action")
	ErrInvalidTeamType    = errors.New("invalid team type")
	ErrInvalidPrivacy     = errors.New("invalid team privacy")
)

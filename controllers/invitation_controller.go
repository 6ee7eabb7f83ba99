package controllers

import (
	"encoding/json"
	"net/http"

	"premadehub_server/helpers"
	"premadehub_server/services"

	"github.com/gorilla/mux"
)

// InvitationController handles HTTP requests for team invitations
type InvitationController struct {
	InvitationService *services.InvitationService
}

// NewInvitationController creates a new instance of InvitationController
func NewInvitationController(invitationService *services.InvitationService) *InvitationController {
	return &InvitationController{InvitationService: invitationService}
}

// SendInvitationHandler sends a team invitation from the caller to another
// player. The pending-duplicate check happens here, before the send; two
// truly concurrent sends can still race (accepted design risk).
func (c *InvitationController) SendInvitationHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}

	var payload struct {
		ToUserID string `json:"toUserId"`
		TeamType string `json:"teamType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ToUserID == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	pending, err := c.InvitationService.HasPendingInvitation(r.Context(), caller, payload.ToUserID)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	if pending {
		helpers.WriteJSONResponse(w, http.StatusConflict, map[string]string{"error": "An invitation to this player is already pending"})
		return
	}

	invitation, err := c.InvitationService.SendInvitation(r.Context(), caller, payload.ToUserID, payload.TeamType)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, invitation)
}

// GetPendingInvitationsHandler lists pending invitations addressed to the
// caller, newest first
func (c *InvitationController) GetPendingInvitationsHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}

	invitations, err := c.InvitationService.GetPendingInvitations(r.Context(), caller)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, invitations)
}

// AcceptInvitationHandler accepts an invitation and returns the new team
func (c *InvitationController) AcceptInvitationHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}
	invitationID := mux.Vars(r)["invitationId"]

	team, err := c.InvitationService.AcceptInvitation(r.Context(), invitationID, caller)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"message": "Invitation accepted",
		"team":    team,
	})
}

// RejectInvitationHandler rejects an invitation
func (c *InvitationController) RejectInvitationHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}
	invitationID := mux.Vars(r)["invitationId"]

	if err := c.InvitationService.RejectInvitation(r.Context(), invitationID, caller); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Invitation rejected"})
}

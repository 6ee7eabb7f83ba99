package controllers

import (
	"encoding/json"
	"net/http"

	"premadehub_server/helpers"
	"premadehub_server/services"

	"github.com/gorilla/mux"
)

// JoinRequestController handles HTTP requests for join requests against
// existing teams
type JoinRequestController struct {
	JoinRequestService *services.JoinRequestService
}

// NewJoinRequestController creates a new instance of JoinRequestController
func NewJoinRequestController(joinRequestService *services.JoinRequestService) *JoinRequestController {
	return &JoinRequestController{JoinRequestService: joinRequestService}
}

// SendJoinRequestHandler creates a join request from the caller to a team
func (c *JoinRequestController) SendJoinRequestHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}

	var payload struct {
		TeamID string `json:"teamId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.TeamID == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	request, err := c.JoinRequestService.SendJoinRequest(r.Context(), payload.TeamID, caller)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, request)
}

// GetTeamJoinRequestsHandler lists pending requests for a team; only the
// team's creator may see them
func (c *JoinRequestController) GetTeamJoinRequestsHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}
	teamID := mux.Vars(r)["teamId"]

	requests, err := c.JoinRequestService.GetTeamJoinRequests(r.Context(), teamID, caller)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, requests)
}

// AcceptJoinRequestHandler grants the requester a seat on the team
func (c *JoinRequestController) AcceptJoinRequestHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}
	requestID := mux.Vars(r)["requestId"]

	if err := c.JoinRequestService.AcceptJoinRequest(r.Context(), requestID, caller); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Join request accepted"})
}

// RejectJoinRequestHandler rejects a join request
func (c *JoinRequestController) RejectJoinRequestHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}
	requestID := mux.Vars(r)["requestId"]

	if err := c.JoinRequestService.RejectJoinRequest(r.Context(), requestID, caller); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Join request rejected"})
}

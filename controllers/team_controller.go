package controllers

import (
	"encoding/json"
	"net/http"

	"premadehub_server/helpers"
	"premadehub_server/services"

	"github.com/gorilla/mux"
)

// TeamController handles HTTP requests for team lifecycle and membership
type TeamController struct {
	TeamService *services.TeamService
}

// NewTeamController creates a new instance of TeamController
func NewTeamController(teamService *services.TeamService) *TeamController {
	return &TeamController{TeamService: teamService}
}

// CreateTeamHandler creates a team with the caller as sole member
func (c *TeamController) CreateTeamHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}

	var payload struct {
		Type    string `json:"type"`
		Name    string `json:"name"`
		Privacy string `json:"privacy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	team, err := c.TeamService.CreateTeam(r.Context(), payload.Type, payload.Name, payload.Privacy, caller)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, team)
}

// GetMyTeamsHandler lists the caller's active teams
func (c *TeamController) GetMyTeamsHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}

	teams, err := c.TeamService.GetMyTeams(r.Context(), caller)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, teams)
}

// GetTeamHandler fetches a single team with enriched members
func (c *TeamController) GetTeamHandler(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	team, err := c.TeamService.GetTeam(r.Context(), teamID)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, team)
}

// RenameTeamHandler updates a team's display name
func (c *TeamController) RenameTeamHandler(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.TeamService.RenameTeam(r.Context(), teamID, payload.Name); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Team renamed successfully"})
}

// UpdateTeamPrivacyHandler switches a team between open and invite-only
func (c *TeamController) UpdateTeamPrivacyHandler(w http.ResponseWriter, r *http.Request) {
	teamID := mux.Vars(r)["teamId"]

	var payload struct {
		Privacy string `json:"privacy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := c.TeamService.UpdateTeamPrivacy(r.Context(), teamID, payload.Privacy); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Team privacy updated successfully"})
}

// LeaveTeamHandler removes the caller from the team
func (c *TeamController) LeaveTeamHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}
	teamID := mux.Vars(r)["teamId"]

	if err := c.TeamService.RemoveMember(r.Context(), teamID, caller); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Left team successfully"})
}

// RemoveMemberHandler removes a specific member from the team
func (c *TeamController) RemoveMemberHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	teamID := vars["teamId"]
	userID := vars["userId"]

	if err := c.TeamService.RemoveMember(r.Context(), teamID, userID); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Member removed successfully"})
}

// DeleteTeamHandler soft-deletes a team; only a current member may do this
func (c *TeamController) DeleteTeamHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}
	teamID := mux.Vars(r)["teamId"]

	if err := c.TeamService.DeleteTeam(r.Context(), teamID, caller); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Team deleted successfully"})
}

package controllers

import (
	"encoding/json"
	"net/http"

	"premadehub_server/helpers"
	"premadehub_server/models"
	"premadehub_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles requests related to player profiles
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// CreateUserProfileHandler creates the caller's profile
func (c *UserProfileController) CreateUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	profile.UserID = caller

	created, err := c.UserProfileService.AddUserProfile(r.Context(), profile)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusCreated, created)
}

// GetUserProfileHandler fetches a profile by user id
func (c *UserProfileController) GetUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), userID)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, profile)
}

// UpdateUserProfileHandler applies partial updates to a profile
func (c *UserProfileController) UpdateUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var updates models.UserProfileUpdates
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	profile, err := c.UserProfileService.UpdateUserProfile(r.Context(), userID, updates)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, profile)
}

// DeleteUserProfileHandler removes a profile
func (c *UserProfileController) DeleteUserProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.UserProfileService.DeleteUserProfile(r.Context(), userID); err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Profile deleted successfully"})
}

package controllers

import (
	"net/http"
	"strconv"

	"premadehub_server/helpers"
	"premadehub_server/services"
)

// BrowseController handles the open-team browse read path
type BrowseController struct {
	BrowseService *services.BrowseService
}

// NewBrowseController creates a new instance of BrowseController
func NewBrowseController(browseService *services.BrowseService) *BrowseController {
	return &BrowseController{BrowseService: browseService}
}

// GetBrowsableTeamsHandler lists open, non-full teams the caller could
// request to join
func (c *BrowseController) GetBrowsableTeamsHandler(w http.ResponseWriter, r *http.Request) {
	caller := requireCaller(w, r)
	if caller == "" {
		return
	}

	limit := int32(0)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	teams, err := c.BrowseService.GetBrowsableTeams(r.Context(), caller, limit)
	if err != nil {
		helpers.WriteErrorResponse(w, err)
		return
	}
	helpers.WriteJSONResponse(w, http.StatusOK, teams)
}

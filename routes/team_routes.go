package routes

import (
	"premadehub_server/controllers"
	"premadehub_server/services"

	"github.com/gorilla/mux"
)

// RegisterTeamRoutes registers all team-related routes under /api/teams
func RegisterTeamRoutes(router *mux.Router, teamService *services.TeamService, browseService *services.BrowseService) {
	controller := controllers.NewTeamController(teamService)
	browseController := controllers.NewBrowseController(browseService)

	teamRouter := router.PathPrefix("/api/teams").Subrouter()
	// Fixed paths are registered before the {teamId} routes.
	teamRouter.HandleFunc("/mine", controller.GetMyTeamsHandler).Methods("GET")
	teamRouter.HandleFunc("/browse", browseController.GetBrowsableTeamsHandler).Methods("GET")
	teamRouter.HandleFunc("", controller.CreateTeamHandler).Methods("POST")
	teamRouter.HandleFunc("/{teamId}", controller.GetTeamHandler).Methods("GET")
	teamRouter.HandleFunc("/{teamId}", controller.DeleteTeamHandler).Methods("DELETE")
	teamRouter.HandleFunc("/{teamId}/name", controller.RenameTeamHandler).Methods("PATCH")
	teamRouter.HandleFunc("/{teamId}/privacy", controller.UpdateTeamPrivacyHandler).Methods("PATCH")
	teamRouter.HandleFunc("/{teamId}/leave", controller.LeaveTeamHandler).Methods("POST")
	teamRouter.HandleFunc("/{teamId}/members/{userId}", controller.RemoveMemberHandler).Methods("DELETE")
}

package routes

import (
	"premadehub_server/controllers"
	"premadehub_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes registers all profile-related routes under
// /api/profiles
func RegisterUserProfileRoutes(router *mux.Router, userProfileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(userProfileService)

	profileRouter := router.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.CreateUserProfileHandler).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.GetUserProfileHandler).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.UpdateUserProfileHandler).Methods("PATCH")
	profileRouter.HandleFunc("/{userId}", controller.DeleteUserProfileHandler).Methods("DELETE")
}

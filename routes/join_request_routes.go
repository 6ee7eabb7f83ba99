package routes

import (
	"premadehub_server/controllers"
	"premadehub_server/services"

	"github.com/gorilla/mux"
)

// RegisterJoinRequestRoutes registers all join-request routes under
// /api/join-requests
func RegisterJoinRequestRoutes(router *mux.Router, joinRequestService *services.JoinRequestService) {
	controller := controllers.NewJoinRequestController(joinRequestService)

	requestRouter := router.PathPrefix("/api/join-requests").Subrouter()
	requestRouter.HandleFunc("", controller.SendJoinRequestHandler).Methods("POST")
	requestRouter.HandleFunc("/team/{teamId}", controller.GetTeamJoinRequestsHandler).Methods("GET")
	requestRouter.HandleFunc("/{requestId}/accept", controller.AcceptJoinRequestHandler).Methods("PUT")
	requestRouter.HandleFunc("/{requestId}/reject", controller.RejectJoinRequestHandler).Methods("PUT")
}

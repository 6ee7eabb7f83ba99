package routes

import (
	"premadehub_server/controllers"
	"premadehub_server/services"

	"github.com/gorilla/mux"
)

// RegisterInvitationRoutes registers all invitation-related routes under
// /api/invitations
func RegisterInvitationRoutes(router *mux.Router, invitationService *services.InvitationService) {
	controller := controllers.NewInvitationController(invitationService)

	invitationRouter := router.PathPrefix("/api/invitations").Subrouter()
	invitationRouter.HandleFunc("", controller.SendInvitationHandler).Methods("POST")
	invitationRouter.HandleFunc("/pending", controller.GetPendingInvitationsHandler).Methods("GET")
	invitationRouter.HandleFunc("/{invitationId}/accept", controller.AcceptInvitationHandler).Methods("PUT")
	invitationRouter.HandleFunc("/{invitationId}/reject", controller.RejectInvitationHandler).Methods("PUT")
}

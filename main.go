package main

import (
	"log"
	"net/http"
	"os"

	"premadehub_server/routes"
	"premadehub_server/services"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize storage. DynamoDB is authoritative; the in-memory store is
	// for local development.
	var (
		teamStore        services.TeamStore
		invitationStore  services.InvitationStore
		joinRequestStore services.JoinRequestStore
		profileStore     services.UserProfileStore
	)

	if os.Getenv("STORAGE_BACKEND") == "memory" {
		log.Println("Using in-memory storage backend")
		memory := services.NewMemoryStore()
		teamStore = memory
		invitationStore = memory
		joinRequestStore = memory
		profileStore = memory
	} else {
		log.Println("Initializing DynamoDB client...")
		dynamoClient := services.InitializeDynamoDBClient()
		dynamoService := &services.DynamoService{Client: dynamoClient}
		log.Println("DynamoDB client initialized.")

		teamStore = &services.DynamoTeamStore{Dynamo: dynamoService}
		invitationStore = &services.DynamoInvitationStore{Dynamo: dynamoService}
		joinRequestStore = &services.DynamoJoinRequestStore{Dynamo: dynamoService}
		profileStore = &services.DynamoUserProfileStore{Dynamo: dynamoService}
	}

	// Initialize Services
	userProfileService := &services.UserProfileService{Store: profileStore}
	teamService := &services.TeamService{Store: teamStore, Users: userProfileService}
	invitationService := &services.InvitationService{Store: invitationStore, Teams: teamStore, Users: userProfileService}
	joinRequestService := &services.JoinRequestService{Store: joinRequestStore, Teams: teamStore, Users: userProfileService}
	browseService := &services.BrowseService{Teams: teamStore, Users: userProfileService}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register routes
	routes.RegisterRoutes(r)
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterTeamRoutes(r, teamService, browseService)
	routes.RegisterInvitationRoutes(r, invitationService)
	routes.RegisterJoinRequestRoutes(r, joinRequestService)
	routes.RegisterS3Routes(r)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-User-Id"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

package controllers

import (
	"net/http"

	"premadehub_server/helpers"
)

// callerID returns the authenticated user id forwarded by the identity
// gateway. The service trusts this header and never authenticates itself.
func callerID(r *http.Request) string {
	return r.Header.Get("X-User-Id")
}

// requireCaller writes a 401 and returns "" when no caller identity was
// forwarded.
func requireCaller(w http.ResponseWriter, r *http.Request) string {
	id := callerID(r)
	if id == "" {
		helpers.WriteJSONResponse(w, http.StatusUnauthorized, map[string]string{"error": "Missing caller identity"})
	}
	return id
}

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to the PremadeHub API"})
}

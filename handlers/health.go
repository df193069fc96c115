package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type HealthHandler struct {
	environment string
}

func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment}
}

// HandleHealthCheck reports process liveness. It never touches the Slack or
// OpenAI collaborators: a degraded provider must not fail liveness probes.
func (h *HealthHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"status":      "healthy",
		"message":     "mention relay is running",
		"version":     "1.0.0",
		"environment": h.environment,
		"services": map[string]string{
			"slack":  "configured",
			"openai": "configured",
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Failed to write health check response: %v", err)
	}
}

func (h *HealthHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/health", h.HandleHealthCheck).Methods("GET")
	log.Printf("✅ GET /health endpoint registered")
}

package handlers

import (
	"net/http"
)

// Health reports liveness. It deliberately does not probe the Gemini
// backend; a generation outage should not flap the load balancer.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "studio-api",
	})
}

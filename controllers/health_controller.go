package controllers

import (
	"net/http"

	"github.com/blogem/table-admin/services"
)

// HealthController handles liveness checks
type HealthController struct {
	services *services.Services
}

// NewHealthController creates a new health controller
func NewHealthController(services *services.Services) *HealthController {
	return &HealthController{
		services: services,
	}
}

// Check handles GET /api/health
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	status, err := c.services.Health.Check(r.Context())
	if err != nil {
		writeJSONWithStatus(w, http.StatusServiceUnavailable, status)
		return
	}

	writeJSON(w, status)
}

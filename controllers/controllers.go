package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/blogem/table-admin/models"
	"github.com/blogem/table-admin/services"
	"github.com/blogem/table-admin/userctx"
)

// writeJSON encodes data as the response body with a 200 status
func writeJSON(w http.ResponseWriter, data interface{}) {
	writeJSONWithStatus(w, http.StatusOK, data)
}

// writeJSONWithStatus encodes data as the response body with the provided status code
func writeJSONWithStatus(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError maps pipeline errors onto the uniform error envelope
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		log.Printf("❌ [%s] %s %s: %v", userctx.GetRequestID(r.Context()), r.Method, r.URL.Path, err)
	}

	writeJSONWithStatus(w, status, models.ErrorResponse{
		Message: message,
		Detail:  err.Error(),
	})
}

func classify(err error) (int, string) {
	var (
		validationErr *models.ValidationError
		schemaErr     *models.SchemaError
		auditErr      *models.AuditError
		storeErr      *models.StoreError
		tooLargeErr   *http.MaxBytesError
	)

	switch {
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge, "request body too large"
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &schemaErr) && errors.Is(err, models.ErrTableNotFound):
		return http.StatusNotFound, "table not found"
	case errors.As(err, &auditErr):
		return http.StatusInternalServerError, "audit log write failed"
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError, "database error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Table  *TableController
	Health *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, maxBodyBytes int64) *Controllers {
	return &Controllers{
		Table:  NewTableController(services, maxBodyBytes),
		Health: NewHealthController(services),
	}
}

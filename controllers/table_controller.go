package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/table-admin/models"
	"github.com/blogem/table-admin/services"
)

// TableController handles the generic table endpoints
type TableController struct {
	services     *services.Services
	maxBodyBytes int64
}

// NewTableController creates a new table controller
func NewTableController(services *services.Services, maxBodyBytes int64) *TableController {
	return &TableController{
		services:     services,
		maxBodyBytes: maxBodyBytes,
	}
}

type tableListResponse struct {
	Tables []string `json:"tables"`
}

type insertResponse struct {
	AffectedRows int64   `json:"affectedRows"`
	InsertID     any     `json:"insertId"`
	PrimaryKey   *string `json:"primaryKey"`
	KeyValue     any     `json:"keyValue"`
}

type affectedResponse struct {
	AffectedRows int64 `json:"affectedRows"`
}

type noOpResponse struct {
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}

// List handles GET /api/tables
func (c *TableController) List(w http.ResponseWriter, r *http.Request) {
	tables, err := c.services.Table.ListTables(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, tableListResponse{Tables: tables})
}

// Read handles GET /api/table/{name}
func (c *TableController) Read(w http.ResponseWriter, r *http.Request) {
	data, err := c.services.Table.ReadTable(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, data)
}

// Create handles POST /api/table/{name}
func (c *TableController) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := c.decodePayload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := c.services.Table.CreateRow(r.Context(), chi.URLParam(r, "name"), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := insertResponse{
		AffectedRows: result.AffectedRows,
		InsertID:     result.InsertID,
		KeyValue:     result.KeyValue,
	}
	if result.PrimaryKey != "" {
		resp.PrimaryKey = &result.PrimaryKey
	}

	writeJSONWithStatus(w, http.StatusCreated, resp)
}

// Update handles PUT /api/table/{name}/{id}
func (c *TableController) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := c.decodePayload(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := c.services.Table.UpdateRow(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if result.NoOp {
		writeJSON(w, noOpResponse{Message: "no fields to update", AffectedRows: 0})
		return
	}

	writeJSON(w, affectedResponse{AffectedRows: result.AffectedRows})
}

// Delete handles DELETE /api/table/{name}/{id}
func (c *TableController) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := c.services.Table.DeleteRow(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, affectedResponse{AffectedRows: result.AffectedRows})
}

// decodePayload reads the request body as an ordered column -> value object.
// An empty body is an empty payload.
func (c *TableController) decodePayload(w http.ResponseWriter, r *http.Request) (models.Payload, error) {
	var payload models.Payload

	body := r.Body
	if c.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, c.maxBodyBytes)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return payload, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, &models.ValidationError{
			Field:   "body",
			Message: "request body must be a JSON object",
			Cause:   fmt.Errorf("%w: %v", models.ErrInvalidPayload, err),
		}
	}

	return payload, nil
}

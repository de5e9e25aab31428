package services

import (
	"context"
	"fmt"

	"github.com/blogem/table-admin/database"
	"github.com/blogem/table-admin/models"
	"github.com/blogem/table-admin/repositories"
)

const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// HealthService reports store identity and liveness
type HealthService interface {
	Check(ctx context.Context) (*models.HealthStatus, error)
}

type healthService struct {
	healthRepo repositories.HealthRepository
	identity   database.Identity
}

// NewHealthService creates a new health service
func NewHealthService(healthRepo repositories.HealthRepository, identity database.Identity) HealthService {
	return &healthService{
		healthRepo: healthRepo,
		identity:   identity,
	}
}

// Check pings the store. The returned status is always set, even on error.
func (s *healthService) Check(ctx context.Context) (*models.HealthStatus, error) {
	status := &models.HealthStatus{
		Status:   HealthStatusOK,
		Driver:   s.identity.Driver,
		Database: s.identity.Database,
		Host:     s.identity.Host,
		User:     s.identity.User,
	}

	if err := s.healthRepo.Ping(ctx); err != nil {
		status.Status = HealthStatusUnavailable
		status.Detail = err.Error()
		return status, fmt.Errorf("store unreachable: %w", err)
	}

	return status, nil
}

package services

import (
	"github.com/blogem/table-admin/config"
	"github.com/blogem/table-admin/database"
	"github.com/blogem/table-admin/repositories"
)

// Services holds all service instances
type Services struct {
	Table  TableService
	Health HealthService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, store *database.Store, cfg *config.Config) *Services {
	return &Services{
		Table:  NewTableService(repos.Schema, repos.Table, repos.Audit, store.Dialect, cfg.Audit.Actor),
		Health: NewHealthService(repos.Health, store.Identity),
	}
}

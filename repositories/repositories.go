package repositories

import (
	"github.com/blogem/table-admin/database"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Schema SchemaRepository
	Table  TableRepository
	Audit  AuditRepository
	Health HealthRepository
}

// NewRepositories creates and initializes all repositories on top of one store
func NewRepositories(store *database.Store, auditTable string) *Repositories {
	return &Repositories{
		Schema: NewSchemaRepository(store.DB, store.Dialect),
		Table:  NewTableRepository(store.DB, store.Dialect),
		Audit:  NewAuditRepository(store.DB, store.Dialect, auditTable),
		Health: NewHealthRepository(store.DB),
	}
}

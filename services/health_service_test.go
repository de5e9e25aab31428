package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/table-admin/database"
	"github.com/blogem/table-admin/repositories/mocks"
)

func TestHealthService(t *testing.T) {
	identity := database.Identity{Driver: "mysql", Host: "db.local", Database: "test", User: "root"}

	tests := []struct {
		name       string
		pingErr    error
		wantStatus string
		wantErr    bool
	}{
		{name: "store reachable", wantStatus: HealthStatusOK},
		{name: "store unreachable", pingErr: errors.New("connection refused"), wantStatus: HealthStatusUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			healthRepo := mocks.NewMockHealthRepository(t)
			healthRepo.EXPECT().Ping(ctx).Return(tt.pingErr)

			status, err := NewHealthService(healthRepo, identity).Check(ctx)

			require.NotNil(t, status)
			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, "mysql", status.Driver)
			assert.Equal(t, "db.local", status.Host)
			assert.Equal(t, "test", status.Database)
			assert.Equal(t, "root", status.User)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, "connection refused", status.Detail)
			} else {
				assert.NoError(t, err)
				assert.Empty(t, status.Detail)
			}
		})
	}
}

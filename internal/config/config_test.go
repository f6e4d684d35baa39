package config

import (
	"os"
	"path/filepath"
	"testing"

	"hotelier/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "app:\n  name: \"\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "hotelier", cfg.App.Name)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "data/reservations.txt", cfg.Storage.Path)
	assert.Equal(t, "exports", cfg.Exports.Path)
	// shipped inventory: seven rooms
	assert.Len(t, cfg.Rooms, 7)
}

func TestLoadCustomRooms(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: sqlite
  path: hotel.db
rooms:
  - id: 401
    category: SUITE
    rate: 8000
  - id: 402
    category: DELUXE
    rate: 3000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Rooms, 2)
	assert.Equal(t, 401, cfg.Rooms[0].ID)
	assert.Equal(t, models.CategorySuite, cfg.Rooms[0].Category)
	assert.Equal(t, 8000.0, cfg.Rooms[0].Rate)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("HOTELIER_STORE", "/tmp/ledger.txt")
	path := writeConfig(t, "storage:\n  path: ${HOTELIER_STORE}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ledger.txt", cfg.Storage.Path)
}

func TestLoadUnknownBackend(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: cassandra\n  path: x\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateRooms(t *testing.T) {
	tests := []struct {
		name    string
		rooms   []models.Room
		wantErr string
	}{
		{
			name:    "empty inventory",
			rooms:   nil,
			wantErr: "at least one room",
		},
		{
			name:    "invalid number",
			rooms:   []models.Room{{ID: 0, Category: models.CategoryStandard, Rate: 1500}},
			wantErr: "invalid number",
		},
		{
			name: "duplicate number",
			rooms: []models.Room{
				{ID: 101, Category: models.CategoryStandard, Rate: 1500},
				{ID: 101, Category: models.CategoryDeluxe, Rate: 2500},
			},
			wantErr: "duplicate room number",
		},
		{
			name:    "unknown category",
			rooms:   []models.Room{{ID: 101, Category: "BUNGALOW", Rate: 1500}},
			wantErr: "unknown category",
		},
		{
			name:    "non-positive rate",
			rooms:   []models.Room{{ID: 101, Category: models.CategoryStandard, Rate: 0}},
			wantErr: "invalid nightly rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRooms(tt.rooms)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.NoError(t, ValidateRooms(defaultRooms()))
}

func TestMonitoringPortDefault(t *testing.T) {
	path := writeConfig(t, "monitoring:\n  prometheus_enabled: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Monitoring.PrometheusPort)
}

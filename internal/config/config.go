package config

import (
	"errors"
	"fmt"
	"os"

	"hotelier/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Storage    StorageConfig    `yaml:"storage"`
	Logging    LoggingConfig    `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Exports    ExportConfig     `yaml:"exports"`
	Rooms      []models.Room    `yaml:"rooms"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

// StorageConfig selects the record store backend. "file" keeps the
// ledger as delimited text, "sqlite" as an embedded database,
// "memory" keeps nothing between runs.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// defaultRooms is the shipped inventory, used when the config file
// does not define its own.
func defaultRooms() []models.Room {
	return []models.Room{
		{ID: 101, Category: models.CategoryStandard, Rate: 1500},
		{ID: 102, Category: models.CategoryStandard, Rate: 1500},
		{ID: 103, Category: models.CategoryStandard, Rate: 1500},
		{ID: 201, Category: models.CategoryDeluxe, Rate: 2500},
		{ID: 202, Category: models.CategoryDeluxe, Rate: 2500},
		{ID: 301, Category: models.CategorySuite, Rate: 4000},
		{ID: 302, Category: models.CategorySuite, Rate: 4500},
	}
}

func Load(configPath string) (*Config, error) {
	// .env is optional; its variables feed the ${VAR} expansion below.
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Storage.Backend != BackendMemory && c.Storage.Path == "" {
		return errors.New("storage path is required")
	}

	return ValidateRooms(c.Rooms)
}

// ValidateRooms checks the inventory definition: unique positive room
// numbers, known categories, positive nightly rates.
func ValidateRooms(rooms []models.Room) error {
	if len(rooms) == 0 {
		return errors.New("at least one room is required")
	}

	seen := make(map[int]bool)
	for _, room := range rooms {
		if room.ID <= 0 {
			return fmt.Errorf("room %d has an invalid number", room.ID)
		}
		if seen[room.ID] {
			return fmt.Errorf("duplicate room number found: %d", room.ID)
		}
		seen[room.ID] = true
		if !room.Category.Valid() {
			return fmt.Errorf("room %d has unknown category %q", room.ID, room.Category)
		}
		if room.Rate <= 0 {
			return fmt.Errorf("room %d has an invalid nightly rate %.2f", room.ID, room.Rate)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "hotelier"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	if c.Storage.Path == "" && c.Storage.Backend == BackendFile {
		c.Storage.Path = "data/reservations.txt"
	}
	if c.Storage.Path == "" && c.Storage.Backend == BackendSQLite {
		c.Storage.Path = "data/reservations.db"
	}
	if c.Exports.Path == "" {
		c.Exports.Path = "exports"
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
	if len(c.Rooms) == 0 {
		c.Rooms = defaultRooms()
	}
}

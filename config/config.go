package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/Ricardo-1112/shuiba-order/models"
)

// Config holds process-level settings, loaded from the environment
// (a .env file is honored when present).
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"shuiba-dev-secret"`
	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"file"` // file, sqlite, memory
	ShopFile      string `env:"SHOP_CONFIG" envDefault:""`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// AdminCredential is the single hardcoded privileged identity. It is never
// stored in the user directory, but registration treats its email as taken.
type AdminCredential struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Shop holds the counter's fixed enumerations: the pickup windows, the
// product categories, and the privileged credential.
type Shop struct {
	PickupSlots []models.PickupSlot `yaml:"pickup_slots"`
	Categories  []string            `yaml:"categories"`
	Admin       AdminCredential     `yaml:"admin"`
}

// DefaultShop mirrors the demo counter's built-in setup.
func DefaultShop() Shop {
	return Shop{
		PickupSlots: []models.PickupSlot{
			{ID: "slot1", Label: "9:45 - 10:00", Value: "9:45-10:00"},
			{ID: "slot2", Label: "12:10 - 13:00", Value: "12:10-13:00"},
			{ID: "slot3", Label: "14:25 - 14:35", Value: "14:25-14:35"},
		},
		Categories: []string{"面包", "饮品"},
		Admin: AdminCredential{
			Email:    "admin@shuiba.local",
			Password: "adminpass",
		},
	}
}

// LoadShop reads the shop YAML at path, or returns the defaults when path
// is empty. Fields omitted from the file keep their default values.
func LoadShop(path string) (Shop, error) {
	shop := DefaultShop()
	if path == "" {
		return shop, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Shop{}, fmt.Errorf("read shop config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &shop); err != nil {
		return Shop{}, fmt.Errorf("parse shop config %s: %w", path, err)
	}
	return shop, nil
}

// SlotByValue reports whether value names one of the configured pickup
// windows.
func (s Shop) SlotByValue(value string) (models.PickupSlot, bool) {
	for _, slot := range s.PickupSlots {
		if slot.Value == value {
			return slot, true
		}
	}
	return models.PickupSlot{}, false
}

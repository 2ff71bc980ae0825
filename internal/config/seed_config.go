package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedConfig describes demo data loaded by the seed command.
type SeedConfig struct {
	User    SeedUser      `yaml:"user"`
	Content []SeedContent `yaml:"content"`
}

// SeedUser is the demo account that owns the seeded content.
type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// SeedContent is one demo content item.
type SeedContent struct {
	Title string   `yaml:"title" validate:"required,max=256"`
	Link  string   `yaml:"link" validate:"required,weburl"`
	Type  string   `yaml:"type" validate:"required,oneof=twitter youtube document link tag"`
	Tags  []string `yaml:"tags,omitempty" validate:"omitempty,max=32,dive,required,max=64"`
}

// LoadSeedConfig reads and parses the seed file at path.
func LoadSeedConfig(path string) (*SeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeedConfig(data)
}

// ParseSeedConfig parses seed YAML and fills in defaults.
func ParseSeedConfig(data []byte) (*SeedConfig, error) {
	var cfg SeedConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	// Set defaults
	if cfg.User.Username == "" {
		cfg.User.Username = getEnv("DEMO_USERNAME", "demo")
	}
	if cfg.User.Password == "" {
		cfg.User.Password = "demo-password"
	}

	return &cfg, nil
}

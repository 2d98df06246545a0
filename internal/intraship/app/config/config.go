package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/aria3ppp/intraship/internal/intraship/domain"
	"gopkg.in/yaml.v3"
)

const DefaultFileName = "intraship.yaml"

type Config struct {
	Account        domain.Account `yaml:"account"`
	ServerConfig   ServerConfig   `yaml:"server"`
	DatabaseConfig DatabaseConfig `yaml:"database"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig configures the rendered request journal. An empty URL
// disables it.
type DatabaseConfig struct {
	URL            string `yaml:"url"`
	MigrationsPath string `yaml:"migrations_path"`
}

func Default() *Config {
	return &Config{
		ServerConfig: ServerConfig{
			Addr: ":8080",
		},
		DatabaseConfig: DatabaseConfig{
			MigrationsPath: "file://migrations",
		},
	}
}

// Load reads the YAML file at path on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("INTRASHIP_EKP"); v != "" {
		c.Account.EKP = v
	}
	if v := os.Getenv("INTRASHIP_PARTNER_ID"); v != "" {
		c.Account.PartnerID = v
	}
	if v := os.Getenv("INTRASHIP_ADDR"); v != "" {
		c.ServerConfig.Addr = v
	}
	if v := os.Getenv("INTRASHIP_DATABASE_URL"); v != "" {
		c.DatabaseConfig.URL = v
	}
}

func (c *Config) Validate() error {
	if err := c.Account.Validate(); err != nil {
		return fmt.Errorf("account%s", err)
	}

	if c.ServerConfig.Addr == "" {
		return errors.New("server.addr is required")
	}

	return nil
}

func (c *Config) JournalEnabled() bool {
	return c.DatabaseConfig.URL != ""
}

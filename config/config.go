// Package config loads the service configuration from a YAML file with
// VAULTCHAIN_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/saviour-frank/vault-chain/models"
)

// Height source selection.
const (
	HeightSourceLogical = "logical"
	HeightSourceSolana  = "solana"
)

type Database struct {
	// DSN empty means in-memory mode: no persistence, state is lost on
	// restart.
	DSN           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
}

type Solana struct {
	RPCURL              string `yaml:"rpc_url"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
}

type Config struct {
	ListenAddr   string   `yaml:"listen_addr"`
	LogLevel     string   `yaml:"log_level"`
	HeightSource string   `yaml:"height_source"`
	AuthorityKey string   `yaml:"authority_key"`
	SystemKey    string   `yaml:"system_key"`
	Database     Database `yaml:"database"`
	Solana       Solana   `yaml:"solana"`
}

func defaults() *Config {
	return &Config{
		ListenAddr:   ":8080",
		LogLevel:     "info",
		HeightSource: HeightSourceLogical,
		Database: Database{
			MigrationsDir: "storage/migrations",
		},
		Solana: Solana{
			PollIntervalSeconds: 5,
		},
	}
}

// Load reads path (when it exists), applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only configuration is fine
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.ListenAddr, "VAULTCHAIN_LISTEN_ADDR")
	setString(&c.LogLevel, "VAULTCHAIN_LOG_LEVEL")
	setString(&c.HeightSource, "VAULTCHAIN_HEIGHT_SOURCE")
	setString(&c.AuthorityKey, "VAULTCHAIN_AUTHORITY_KEY")
	setString(&c.SystemKey, "VAULTCHAIN_SYSTEM_KEY")
	setString(&c.Database.DSN, "VAULTCHAIN_DATABASE_DSN")
	setString(&c.Database.MigrationsDir, "VAULTCHAIN_MIGRATIONS_DIR")
	setString(&c.Solana.RPCURL, "VAULTCHAIN_SOLANA_RPC_URL")
	if v, ok := os.LookupEnv("VAULTCHAIN_SOLANA_POLL_INTERVAL_SECONDS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Solana.PollIntervalSeconds = n
		}
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

// Validate checks the identity keys and the height-source selection.
func (c *Config) Validate() error {
	if _, err := models.ParseIdentity(c.AuthorityKey); err != nil {
		return fmt.Errorf("authority_key: %w", err)
	}
	if _, err := models.ParseIdentity(c.SystemKey); err != nil {
		return fmt.Errorf("system_key: %w", err)
	}
	if c.AuthorityKey == c.SystemKey {
		return fmt.Errorf("authority_key and system_key must be distinct")
	}
	switch c.HeightSource {
	case HeightSourceLogical:
	case HeightSourceSolana:
		if c.Solana.RPCURL == "" {
			return fmt.Errorf("height_source %q requires solana.rpc_url", c.HeightSource)
		}
	default:
		return fmt.Errorf("unknown height_source %q", c.HeightSource)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"time"
)

// Supported record source backends.
const (
	BackendJSONFile = "jsonfile"
	BackendPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Source   SourceConfig   `mapstructure:"source"`
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Output.Path == "" {
		return errors.New("output.path is required")
	}

	switch c.Source.Backend {
	case BackendJSONFile:
		if c.Input.CompaniesPath == "" || c.Input.UsersPath == "" {
			return errors.New("input.companies_path and input.users_path are required")
		}
	case BackendPostgres:
		if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
			return errors.New("postgres credentials are required")
		}
		if c.Postgres.Host == "" {
			return errors.New("postgres.host is required")
		}
	default:
		return fmt.Errorf("unknown source.backend: %q", c.Source.Backend)
	}
	return nil
}

// SourceConfig selects where raw records are read from.
type SourceConfig struct {
	Backend string        `mapstructure:"backend"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// InputConfig locates the JSON record files.
type InputConfig struct {
	CompaniesPath string `mapstructure:"companies_path"`
	UsersPath     string `mapstructure:"users_path"`
}

// OutputConfig locates the report artifact.
type OutputConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Default settings used when neither the environment nor flags set a value.
const (
	DefaultHTTPPort             = "8080"
	DefaultLogLevel             = "info"
	DefaultRevalidationSchedule = "@every 1m"
)

// Config holds the settings of the service process.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	LogLevel             string
	RevalidationSchedule string
	MigrateOnStart       bool
}

// LoadConfig reads configuration in order: .env (if present), environment, flags.
// Later sources override earlier ones. args are the command line arguments
// without the program name.
//
// Example:
//
//	config, err := cmd.LoadConfig(os.Args[1:])
//	if err != nil {
//	    log.Fatalf("invalid configuration: %v", err)
//	}
//	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
func LoadConfig(args []string) (Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load(".env")

	migrateOnStart, err := envBool("MIGRATE_ON_START", true)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:             envString("HTTP_PORT", DefaultHTTPPort),
		DBHost:               envString("DB_HOST", "localhost"),
		DBPort:               envString("DB_PORT", "5432"),
		DBUser:               envString("DB_USER", "postgres"),
		DBPassword:           envString("DB_PASSWORD", ""),
		DBName:               envString("DB_NAME", "candydelivery"),
		DBSslMode:            envString("DB_SSLMODE", "disable"),
		LogLevel:             envString("LOG_LEVEL", DefaultLogLevel),
		RevalidationSchedule: envString("REVALIDATION_SCHEDULE", DefaultRevalidationSchedule),
		MigrateOnStart:       migrateOnStart,
	}

	flags := pflag.NewFlagSet("candydelivery", pflag.ContinueOnError)
	flags.StringVarP(&config.HTTPPort, "port", "p", config.HTTPPort, "HTTP port to listen on")
	flags.StringVar(&config.DBHost, "db-host", config.DBHost, "database host")
	flags.StringVar(&config.DBPort, "db-port", config.DBPort, "database port")
	flags.StringVar(&config.DBName, "db-name", config.DBName, "database name")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "debug, info, warn or error")
	flags.StringVar(&config.RevalidationSchedule, "revalidation-schedule", config.RevalidationSchedule,
		"cron spec of the courier revalidation sweep")
	flags.BoolVar(&config.MigrateOnStart, "migrate", config.MigrateOnStart, "apply schema migrations on start")

	if err = flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err = config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the values that cannot be verified later by the components using them.
func (c Config) Validate() error {
	var problems []error

	port, err := strconv.Atoi(c.HTTPPort)
	if err != nil || port <= 0 || port > 65535 {
		problems = append(problems, fmt.Errorf("invalid http port: %q", c.HTTPPort))
	}

	if _, err = c.SlogLevel(); err != nil {
		problems = append(problems, fmt.Errorf("invalid log level: %w", err))
	}

	if c.RevalidationSchedule == "" {
		problems = append(problems, errors.New("revalidation schedule is required"))
	}

	return errors.Join(problems...)
}

// DSN builds the Postgres connection string understood by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	return level, err
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, v)
	}
	return b, nil
}

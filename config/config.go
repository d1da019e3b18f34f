package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Borrow-eligibility policies selected via BORROW_BLOCK_POLICY.
const (
	BlockOnFine    = "block_on_fine"
	BlockOnOverdue = "block_on_overdue"
	BlockNever     = "none"
)

type (
	Config struct {
		HTTP
		DB
		Lending
		Auth
		Outbox
	}

	HTTP struct {
		Port string `env:"HTTP_PORT"`
	}

	DB struct {
		Driver   string `env:"DB_DRIVER"`
		URL      string
		Path     string `env:"SQLITE_PATH"`
		Host     string `env:"POSTGRES_HOST"`
		Port     string `env:"POSTGRES_PORT"`
		Name     string `env:"POSTGRES_DB"`
		User     string `env:"POSTGRES_USER"`
		Password string `env:"POSTGRES_PASSWORD"`
		MaxConn  string `env:"POSTGRES_MAX_CONN"`
	}

	Lending struct {
		LoanPeriodDays  int     `env:"LOAN_PERIOD_DAYS"`
		MaxBooksPerUser int     `env:"MAX_BOOKS_PER_USER"`
		FinePerDay      float64 `env:"FINE_PER_DAY"`
		BlockPolicy     string  `env:"BORROW_BLOCK_POLICY"`
		LostAfterYears  int     `env:"LOST_AFTER_YEARS"`
	}

	Auth struct {
		JWTSecret string        `env:"JWT_SECRET"`
		JWTIssuer string        `env:"JWT_ISSUER"`
		TokenTTL  time.Duration `env:"TOKEN_TTL_MIN"`
	}

	Outbox struct {
		Enabled         bool          `env:"OUTBOX_ENABLED"`
		Workers         int           `env:"OUTBOX_WORKERS"`
		BatchSize       int           `env:"OUTBOX_BATCH_SIZE"`
		WaitTimeMS      time.Duration `env:"OUTBOX_WAIT_TIME_MS"`
		InProgressTTLMS time.Duration `env:"OUTBOX_IN_PROGRESS_TTL_MS"`
		LoanSendURL     string        `env:"OUTBOX_LOAN_SEND_URL"`
		BookSendURL     string        `env:"OUTBOX_BOOK_SEND_URL"`
	}
)

func getOrDefault(envName string, defaultValue string) string {
	if val, exist := os.LookupEnv(envName); exist {
		return val
	}
	return defaultValue
}

func getIntOrDefault(envName string, defaultValue int) (int, error) {
	val, exist := os.LookupEnv(envName)
	if !exist {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("error while parsing %s: %w", envName, err)
	}

	return parsed, nil
}

func NewConfig() (*Config, error) {
	cfg := &Config{}

	cfg.HTTP.Port = getOrDefault("HTTP_PORT", "8080")

	cfg.DB.Driver = getOrDefault("DB_DRIVER", "postgres")
	cfg.DB.Path = getOrDefault("SQLITE_PATH", "lending.db")
	cfg.DB.Host = getOrDefault("POSTGRES_HOST", "127.0.0.1")
	cfg.DB.Port = getOrDefault("POSTGRES_PORT", "5432")
	cfg.DB.Name = getOrDefault("POSTGRES_DB", "lending")
	cfg.DB.User = getOrDefault("POSTGRES_USER", "lending")
	cfg.DB.Password = getOrDefault("POSTGRES_PASSWORD", "lending")
	cfg.DB.MaxConn = getOrDefault("POSTGRES_MAX_CONN", "10")

	pgURL := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DB.User, cfg.DB.Password),
		Host:     net.JoinHostPort(cfg.DB.Host, cfg.DB.Port),
		Path:     cfg.DB.Name,
		RawQuery: "sslmode=disable&pool_max_conns=" + cfg.DB.MaxConn,
	}

	cfg.DB.URL = pgURL.String()

	var err error
	cfg.Lending.LoanPeriodDays, err = getIntOrDefault("LOAN_PERIOD_DAYS", 14)

	if err != nil {
		return nil, err
	}

	cfg.Lending.MaxBooksPerUser, err = getIntOrDefault("MAX_BOOKS_PER_USER", 5)

	if err != nil {
		return nil, err
	}

	cfg.Lending.FinePerDay, err = strconv.ParseFloat(getOrDefault("FINE_PER_DAY", "0.50"), 64)

	if err != nil {
		return nil, fmt.Errorf("error while parsing FINE_PER_DAY: %w", err)
	}

	cfg.Lending.BlockPolicy = getOrDefault("BORROW_BLOCK_POLICY", BlockOnFine)

	switch cfg.Lending.BlockPolicy {
	case BlockOnFine, BlockOnOverdue, BlockNever:
	default:
		return nil, fmt.Errorf("unknown BORROW_BLOCK_POLICY: %s", cfg.Lending.BlockPolicy)
	}

	cfg.Lending.LostAfterYears, err = getIntOrDefault("LOST_AFTER_YEARS", 2)

	if err != nil {
		return nil, err
	}

	cfg.Auth.JWTSecret = getOrDefault("JWT_SECRET", "dev-secret")
	cfg.Auth.JWTIssuer = getOrDefault("JWT_ISSUER", "lending")

	tokenTTL, err := getIntOrDefault("TOKEN_TTL_MIN", 60)

	if err != nil {
		return nil, err
	}

	cfg.Auth.TokenTTL = time.Duration(tokenTTL) * time.Minute

	cfg.Outbox.Enabled, err = strconv.ParseBool(getOrDefault("OUTBOX_ENABLED", "false"))

	if err != nil {
		return nil, fmt.Errorf("error while parsing OUTBOX_ENABLED: %w", err)
	}

	if cfg.Outbox.Enabled {
		cfg.Outbox.Workers, err = strconv.Atoi(os.Getenv("OUTBOX_WORKERS"))

		if err != nil {
			return nil, fmt.Errorf("error while parsing OUTBOX_WORKERS: %w", err)
		}

		cfg.Outbox.BatchSize, err = strconv.Atoi(os.Getenv("OUTBOX_BATCH_SIZE"))

		if err != nil {
			return nil, fmt.Errorf("error while parsing OUTBOX_BATCH_SIZE: %w", err)
		}

		waitTime, err := strconv.Atoi(os.Getenv("OUTBOX_WAIT_TIME_MS"))

		if err != nil {
			return nil, fmt.Errorf("error while parsing OUTBOX_WAIT_TIME_MS: %w", err)
		}

		cfg.Outbox.WaitTimeMS = time.Duration(waitTime) * time.Millisecond

		inProgressTTL, err := strconv.Atoi(os.Getenv("OUTBOX_IN_PROGRESS_TTL_MS"))

		if err != nil {
			return nil, fmt.Errorf("error while parsing OUTBOX_IN_PROGRESS_TTL_MS: %w", err)
		}

		cfg.Outbox.InProgressTTLMS = time.Duration(inProgressTTL) * time.Millisecond

		cfg.Outbox.LoanSendURL = os.Getenv("OUTBOX_LOAN_SEND_URL")
		cfg.Outbox.BookSendURL = os.Getenv("OUTBOX_BOOK_SEND_URL")
	}

	return cfg, nil
}

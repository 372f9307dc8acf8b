package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"king_backend/pkg/utils"
)

// ErrConflictingDatabaseConfig is returned when DATABASE_URL and the DB_* parts are both set.
var ErrConflictingDatabaseConfig = errors.New("DATABASE_URL and DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME are mutually exclusive")

// Database holds everything needed to open the connection pool.
type Database struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
	AutoMigrate     bool
}

// Config is built once at startup and passed down explicitly.
type Config struct {
	Port               string
	GinMode            string
	CORSAllowedOrigins []string
	AuthJWTSecret      string
	LogLevel           string
	LogFormat          string
	Database           Database
}

var databasePartKeys = []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME"}

// Load reads configuration from environment variables with reasonable defaults.
func Load() (Config, error) {
	db, err := loadDatabase()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:          utils.Getenv("PORT", "8080"),
		GinMode:       utils.Getenv("GIN_MODE", "release"),
		AuthJWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		LogLevel:      utils.Getenv("LOG_LEVEL", "info"),
		LogFormat:     utils.Getenv("LOG_FORMAT", "console"),
		Database:      db,
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	} else {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}

	return cfg, nil
}

func loadDatabase() (Database, error) {
	db := Database{
		Driver:          utils.Getenv("DB_DRIVER", "postgres"),
		MaxOpenConns:    utils.GetenvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    utils.GetenvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: utils.GetenvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		ConnectTimeout:  utils.GetenvDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		AutoMigrate:     utils.GetenvBool("DB_AUTO_MIGRATE", true),
	}

	partsSet := false
	for _, key := range databasePartKeys {
		if os.Getenv(key) != "" {
			partsSet = true
			break
		}
	}

	rawURL := os.Getenv("DATABASE_URL")
	switch {
	case rawURL != "" && partsSet:
		return Database{}, ErrConflictingDatabaseConfig
	case rawURL != "":
		db.DSN = rawURL
	case db.Driver == "sqlite":
		db.DSN = utils.Getenv("DB_NAME", "king.db")
	default:
		db.DSN = postgresDSN(
			utils.Getenv("DB_HOST", "localhost"),
			utils.Getenv("DB_PORT", "5432"),
			utils.Getenv("DB_USER", "king"),
			os.Getenv("DB_PASSWORD"),
			utils.Getenv("DB_NAME", "king"),
			utils.Getenv("DB_SSLMODE", "disable"),
		)
	}

	switch db.Driver {
	case "postgres", "sqlite":
	default:
		return Database{}, fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", db.Driver)
	}

	return db, nil
}

func postgresDSN(host, port, user, password, name, sslmode string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host + ":" + port,
		Path:     "/" + name,
		RawQuery: url.Values{"sslmode": []string{sslmode}}.Encode(),
	}
	return u.String()
}

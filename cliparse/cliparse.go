package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultPort           = 10000
	DefaultAcademicYear   = "2025-26"
	DefaultMaxUploadBytes = 32 << 20
	DefaultDatabaseFile   = "campus_data.db"
)

type Config struct {
	Port                int    `validate:"min=1,max=65535"`
	DatabaseURL         string `validate:"required"`
	DatabaseType        string `validate:"oneof=sqlite postgres"`
	UploadPassword      string `validate:"required"`
	DefaultAcademicYear string `validate:"required"`
	MaxUploadBytes      int64  `validate:"gt=0"`
}

var validate = validator.New()

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("campus-report", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Upload secret (prefer env, but allow CLI for dev)
	fs.StringVar(&cfg.UploadPassword, "upload-password", "", "Shared upload password (prefer env)")

	fs.StringVar(&cfg.DefaultAcademicYear, "academic-year", "", "Academic year used when a request omits one")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", 0, "Maximum upload body size in bytes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType == "sqlite" {
		cfg.DatabaseURL = defaultDatabasePath()
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// Secret - MUST be provided
	if cfg.UploadPassword == "" {
		cfg.UploadPassword = os.Getenv("UPLOAD_PASSWORD")
	}
	if cfg.UploadPassword == "" {
		return Config{}, errors.New("UPLOAD_PASSWORD required")
	}

	if cfg.DefaultAcademicYear == "" {
		cfg.DefaultAcademicYear = os.Getenv("DEFAULT_ACADEMIC_YEAR")
		if cfg.DefaultAcademicYear == "" {
			cfg.DefaultAcademicYear = DefaultAcademicYear
		}
	}

	if cfg.MaxUploadBytes == 0 {
		if sizeStr := os.Getenv("MAX_UPLOAD_BYTES"); sizeStr != "" {
			size, err := strconv.ParseInt(sizeStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid MAX_UPLOAD_BYTES env variable")
			}
			cfg.MaxUploadBytes = size
		} else {
			cfg.MaxUploadBytes = DefaultMaxUploadBytes
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultDatabasePath places the sqlite file next to the running binary
func defaultDatabasePath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultDatabaseFile
	}
	return filepath.Join(filepath.Dir(exe), DefaultDatabaseFile)
}

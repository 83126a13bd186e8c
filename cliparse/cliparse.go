// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

// DefaultLanguage is the recognition locale used when a request omits one
const DefaultLanguage = "ja-JP"

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	APIKey            string
	AzureSpeechKey    string
	AzureSpeechRegion string
	DefaultLanguage   string
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment.
// Variables already set are left alone. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	flags := flag.NewFlagSet("round-score", flag.ContinueOnError)

	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	flags.StringVar(&cfg.DefaultLanguage, "lang", "", "Default recognition locale")

	// Secrets (prefer env variables, but allow CLI for dev)
	flags.StringVar(&cfg.APIKey, "api-key", "", "Shared API key (prefer env)")
	flags.StringVar(&cfg.AzureSpeechKey, "azure-key", "", "Azure Speech subscription key (prefer env)")
	flags.StringVar(&cfg.AzureSpeechRegion, "azure-region", "", "Azure Speech region")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabasePostgres
		}
	}
	if cfg.DatabaseType != DatabasePostgres && cfg.DatabaseType != DatabaseSQLite {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = os.Getenv("DEFAULT_LANGUAGE")
		if cfg.DefaultLanguage == "" {
			cfg.DefaultLanguage = DefaultLanguage
		}
	}

	// Secrets - MUST be provided
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("API_KEY required")
	}

	// Speech credentials are optional, but only as a pair
	if cfg.AzureSpeechKey == "" {
		cfg.AzureSpeechKey = os.Getenv("AZURE_SPEECH_KEY")
	}
	if cfg.AzureSpeechRegion == "" {
		cfg.AzureSpeechRegion = os.Getenv("AZURE_SPEECH_REGION")
	}
	if cfg.AzureSpeechKey != "" && cfg.AzureSpeechRegion == "" {
		return Config{}, errors.New("AZURE_SPEECH_REGION required when AZURE_SPEECH_KEY is set")
	}
	if cfg.AzureSpeechRegion != "" && cfg.AzureSpeechKey == "" {
		return Config{}, errors.New("AZURE_SPEECH_KEY required when AZURE_SPEECH_REGION is set")
	}

	return cfg, nil
}

// HasSpeechCredentials reports whether both Azure settings are present
func (c Config) HasSpeechCredentials() bool {
	return c.AzureSpeechKey != "" && c.AzureSpeechRegion != ""
}

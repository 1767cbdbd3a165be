package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/proxionix/unit-tools/internal/config/env"
)

var cfg *config

type config struct {
	Catalog   Catalog
	Documents Documents
	Mail      Mail
	Settings  Settings
	Logger    Logger
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	catalogCfg, err := envconfig.NewCatalogConfig()
	if err != nil {
		return fmt.Errorf("%s Catalog: %w", op, err)
	}

	documentsCfg, err := envconfig.NewDocumentsConfig()
	if err != nil {
		return fmt.Errorf("%s Documents: %w", op, err)
	}

	mailCfg, err := envconfig.NewMailConfig()
	if err != nil {
		return fmt.Errorf("%s Mail: %w", op, err)
	}

	settingsCfg, err := envconfig.NewSettingsConfig()
	if err != nil {
		return fmt.Errorf("%s Settings: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	cfg = &config{
		Catalog:   catalogCfg,
		Documents: documentsCfg,
		Mail:      mailCfg,
		Settings:  settingsCfg,
		Logger:    loggerCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}

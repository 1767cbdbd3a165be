package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/proxionix/unit-tools/internal/model"
	"github.com/proxionix/unit-tools/pkg/logger"
)

type settingsFile struct {
	AppLocale string `json:"app_locale"`
}

type repository struct {
	path string
}

func NewSettingsRepository(path string) *repository {
	return &repository{path: path}
}

// AppLocale returns the persisted display-language tag. Any read problem
// (missing file, garbage content, tag outside the allowed set) falls back to
// "system", matching the behavior of a fresh install.
func (r *repository) AppLocale(ctx context.Context) string {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return model.LocaleSystem
	}

	var sf settingsFile
	if err := json.Unmarshal(data, &sf); err != nil {
		logger.Warn(ctx, "settings file unreadable, using defaults",
			logger.String("path", r.path),
			logger.ErrorF(err),
		)
		return model.LocaleSystem
	}

	if !model.IsAllowedLocale(sf.AppLocale) {
		logger.Warn(ctx, "stored locale not allowed, using system",
			logger.String("tag", sf.AppLocale),
		)
		return model.LocaleSystem
	}

	return sf.AppLocale
}

func (r *repository) SetAppLocale(ctx context.Context, tag string) error {
	const op = "repository.settings.SetAppLocale"

	if !model.IsAllowedLocale(tag) {
		return fmt.Errorf("%s: %w: %q", op, model.ErrInvalidLocale, tag)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return errors.Wrap(err, op)
	}

	data, err := json.Marshal(settingsFile{AppLocale: tag})
	if err != nil {
		return errors.Wrap(err, op)
	}

	// Write-then-rename so a concurrent reader never sees a torn file.
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, op)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return errors.Wrap(err, op)
	}

	logger.Debug(ctx, "app locale stored", logger.String("tag", tag))
	return nil
}

// DefaultPath places the settings file under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "repository.settings.DefaultPath")
	}
	return filepath.Join(dir, "materiel", "user_settings.json"), nil
}

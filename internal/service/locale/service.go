package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/proxionix/unit-tools/internal/model"
	"github.com/proxionix/unit-tools/pkg/logger"
)

// SettingsStore persists the user's display-language choice.
type SettingsStore interface {
	AppLocale(ctx context.Context) string
	SetAppLocale(ctx context.Context, tag string) error
}

type service struct {
	store SettingsStore
}

func NewLocaleService(store SettingsStore) *service {
	return &service{store: store}
}

// Language resolves the active display language: the stored per-app override
// wins, otherwise the system language. The result is a plain tag like "fr"
// or "nl-BE"; an empty string means nothing could be determined and callers
// should fall back to their default.
func (s *service) Language(ctx context.Context) string {
	if tag := s.store.AppLocale(ctx); tag != model.LocaleSystem {
		logger.Debug(ctx, "using per-app locale", logger.String("tag", tag))
		return tag
	}

	lang := systemLanguage()
	logger.Debug(ctx, "using system locale", logger.String("tag", lang))
	return lang
}

// Current returns the stored preference tag itself ("system" when unset).
func (s *service) Current(ctx context.Context) string {
	return s.store.AppLocale(ctx)
}

// Apply validates and persists a display-language tag.
func (s *service) Apply(ctx context.Context, tag string) error {
	const op = "locale.service.Apply"

	if !model.IsAllowedLocale(tag) {
		return fmt.Errorf("%s: %w: %q", op, model.ErrInvalidLocale, tag)
	}
	if err := s.store.SetAppLocale(ctx, tag); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func systemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return normalizeTag(v)
		}
	}
	return ""
}

// normalizeTag turns POSIX locale values like "nl_BE.UTF-8" into "nl-BE".
func normalizeTag(v string) string {
	if i := strings.IndexByte(v, '.'); i >= 0 {
		v = v[:i]
	}
	if i := strings.IndexByte(v, '@'); i >= 0 {
		v = v[:i]
	}
	return strings.ReplaceAll(v, "_", "-")
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxionix/unit-tools/internal/model"
)

type fakeStore struct {
	tag     string
	lastSet string
	setErr  error
}

func (s *fakeStore) AppLocale(context.Context) string { return s.tag }

func (s *fakeStore) SetAppLocale(_ context.Context, tag string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.lastSet = tag
	return nil
}

func TestLanguageOverrideWinsOverSystem(t *testing.T) {
	t.Setenv("LC_ALL", "fr_BE.UTF-8")

	svc := NewLocaleService(&fakeStore{tag: "nl"})

	assert.Equal(t, "nl", svc.Language(context.Background()))
}

func TestLanguageFallsBackToSystem(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "nl_BE.UTF-8")

	svc := NewLocaleService(&fakeStore{tag: model.LocaleSystem})

	assert.Equal(t, "nl-BE", svc.Language(context.Background()))
}

func TestLanguageWithNothingConfigured(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")

	svc := NewLocaleService(&fakeStore{tag: model.LocaleSystem})

	assert.Equal(t, "", svc.Language(context.Background()))
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("persists allowed tags", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{}
		svc := NewLocaleService(store)

		require.NoError(t, svc.Apply(context.Background(), "fr"))
		assert.Equal(t, "fr", store.lastSet)
	})

	t.Run("rejects unknown tags", func(t *testing.T) {
		t.Parallel()

		store := &fakeStore{}
		svc := NewLocaleService(store)

		err := svc.Apply(context.Background(), "nl-BE")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidLocale)
		assert.Empty(t, store.lastSet)
	})
}

func TestNormalizeTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nl-BE", normalizeTag("nl_BE.UTF-8"))
	assert.Equal(t, "fr", normalizeTag("fr"))
	assert.Equal(t, "fr-BE", normalizeTag("fr_BE@euro"))
}

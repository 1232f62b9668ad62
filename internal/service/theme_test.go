package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexdoe/portfolio-backend/internal/entity"
	"github.com/alexdoe/portfolio-backend/internal/repository"
)

type themeRepoMock struct {
	themes map[string]string
}

func newThemeRepoMock() *themeRepoMock {
	return &themeRepoMock{themes: make(map[string]string)}
}

func (that *themeRepoMock) Get(_ context.Context, visitorID string) (string, error) {
	theme, ok := that.themes[visitorID]
	if !ok {
		return "", repository.ErrThemeNotFound
	}
	return theme, nil
}

func (that *themeRepoMock) Set(_ context.Context, visitorID, theme string) error {
	that.themes[visitorID] = theme
	return nil
}

func TestThemeService_Resolve(t *testing.T) {
	t.Run("First visit derives from the system preference", func(t *testing.T) {
		// Given: no stored theme
		repo := newThemeRepoMock()
		svc := NewThemeService(repo)

		// When: resolving with a dark system preference
		theme, err := svc.Resolve(context.Background(), "v1", true)

		// Then: dark is returned and persisted
		require.NoError(t, err)
		require.Equal(t, entity.ThemeDark, theme)
		assert.Equal(t, entity.ThemeDark, repo.themes["v1"])
	})

	t.Run("Stored theme wins over the system preference", func(t *testing.T) {
		// Given: a stored light theme
		repo := newThemeRepoMock()
		repo.themes["v1"] = entity.ThemeLight
		svc := NewThemeService(repo)

		// When: resolving with a dark system preference
		theme, err := svc.Resolve(context.Background(), "v1", true)

		// Then: the stored value is returned
		require.NoError(t, err)
		assert.Equal(t, entity.ThemeLight, theme)
	})
}

func TestThemeService_Toggle(t *testing.T) {
	// Given: a visitor on the light theme
	repo := newThemeRepoMock()
	repo.themes["v1"] = entity.ThemeLight
	svc := NewThemeService(repo)

	// When: the theme is toggled
	theme, err := svc.Toggle(context.Background(), "v1")

	// Then: the preference flips to dark and is persisted
	require.NoError(t, err)
	require.Equal(t, entity.ThemeDark, theme)
	assert.Equal(t, entity.ThemeDark, repo.themes["v1"])

	// When: toggled again
	theme, err = svc.Toggle(context.Background(), "v1")

	// Then: it flips back to light
	require.NoError(t, err)
	assert.Equal(t, entity.ThemeLight, theme)
}

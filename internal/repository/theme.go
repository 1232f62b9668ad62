package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var ErrThemeNotFound = errors.New("theme not found")

// ThemeRepository is the persisted preference store: one key per visitor
// holding the theme selection.
type ThemeRepository interface {
	Get(ctx context.Context, visitorID string) (string, error)
	Set(ctx context.Context, visitorID, theme string) error
}

type dbTheme struct {
	client *redis.Client
}

func NewThemeRepository(client *redis.Client) ThemeRepository {
	return &dbTheme{
		client: client,
	}
}

func (that *dbTheme) Get(ctx context.Context, visitorID string) (string, error) {
	themeKey := "theme:" + visitorID

	theme, err := that.client.Get(ctx, themeKey).Result()

	if errors.Is(err, redis.Nil) {
		return "", ErrThemeNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get theme by visitor ID: %w", err)
	}

	return theme, nil
}

func (that *dbTheme) Set(ctx context.Context, visitorID, theme string) error {
	themeKey := "theme:" + visitorID

	if err := that.client.Set(ctx, themeKey, theme, 0).Err(); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	return nil
}

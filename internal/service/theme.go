package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexdoe/portfolio-backend/internal/entity"
	"github.com/alexdoe/portfolio-backend/internal/repository"
)

type themeRepo interface {
	Get(ctx context.Context, visitorID string) (string, error)
	Set(ctx context.Context, visitorID, theme string) error
}

// ThemeService resolves and toggles the per-visitor light/dark preference.
// The stored value wins; on first visit the system preference seeds it.
type ThemeService interface {
	Resolve(ctx context.Context, visitorID string, systemPrefersDark bool) (string, error)
	Toggle(ctx context.Context, visitorID string) (string, error)
}

type themeService struct {
	themeRepo themeRepo
}

func NewThemeService(themeRepo themeRepo) ThemeService {
	return &themeService{
		themeRepo: themeRepo,
	}
}

func (that *themeService) Resolve(ctx context.Context, visitorID string, systemPrefersDark bool) (string, error) {
	theme, err := that.themeRepo.Get(ctx, visitorID)
	if err == nil {
		return theme, nil
	}

	if !errors.Is(err, repository.ErrThemeNotFound) {
		return "", fmt.Errorf("failed to get theme: %w", err)
	}

	theme = entity.ThemeLight
	if systemPrefersDark {
		theme = entity.ThemeDark
	}

	if err = that.themeRepo.Set(ctx, visitorID, theme); err != nil {
		return "", fmt.Errorf("failed to store theme: %w", err)
	}

	return theme, nil
}

func (that *themeService) Toggle(ctx context.Context, visitorID string) (string, error) {
	theme, err := that.themeRepo.Get(ctx, visitorID)
	if err != nil && !errors.Is(err, repository.ErrThemeNotFound) {
		return "", fmt.Errorf("failed to get theme: %w", err)
	}

	next := entity.ThemeDark
	if theme == entity.ThemeDark {
		next = entity.ThemeLight
	}

	if err = that.themeRepo.Set(ctx, visitorID, next); err != nil {
		return "", fmt.Errorf("failed to store theme: %w", err)
	}

	return next, nil
}

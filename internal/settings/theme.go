// Package settings holds small user preferences outside the order flow.
package settings

import (
	"context"
	"fmt"

	"github.com/hungergenie/storefront/pkg/kvstore"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Service struct {
	store kvstore.Store
}

func NewService(store kvstore.Store) *Service {
	return &Service{store: store}
}

// Theme returns the saved theme, defaulting to light when unset or unreadable.
func (s *Service) Theme(ctx context.Context) (string, error) {
	v, ok, err := s.store.Get(ctx, kvstore.KeyTheme)
	if err != nil {
		return "", err
	}
	if !ok || (v != ThemeLight && v != ThemeDark) {
		return ThemeLight, nil
	}
	return v, nil
}

func (s *Service) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return s.store.Set(ctx, kvstore.KeyTheme, theme)
}

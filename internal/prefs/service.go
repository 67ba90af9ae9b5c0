// Package prefs persists small user preferences across restarts.
package prefs

import (
	"context"
	"strconv"

	"kharcha/internal/signal"
)

const darkModeKey = "dark_mode"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=prefs
type Repository interface {
	// GetSetting returns the stored value for key, or "" when unset.
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

type Service struct {
	repo    Repository
	changes *signal.Broadcaster[struct{}]
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:    repo,
		changes: signal.New[struct{}](),
	}
}

// DarkMode reads the dark-mode flag. Unset or unparseable values read
// as false.
func (s *Service) DarkMode(ctx context.Context) (bool, error) {
	v, err := s.repo.GetSetting(ctx, darkModeKey)
	if err != nil {
		return false, err
	}

	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return false, nil
	}

	return enabled, nil
}

func (s *Service) SetDarkMode(ctx context.Context, enabled bool) error {
	if err := s.repo.SetSetting(ctx, darkModeKey, strconv.FormatBool(enabled)); err != nil {
		return err
	}

	s.changes.Publish(struct{}{})

	return nil
}

// Watch registers fn to run after every preference change. The
// returned func unsubscribes.
func (s *Service) Watch(fn func()) (unsubscribe func()) {
	return s.changes.Subscribe(func(struct{}) { fn() })
}

package config

import (
	"context"
	"log"
	"strconv"

	"utilibook/internal/domain"
)

type SettingReader interface {
	GetValue(ctx context.Context, key string) (string, error)
}

// Settings resolves runtime-tunable values from the system_settings table,
// falling back to the env/default when the row is missing or malformed.
type Settings struct {
	repo     SettingReader
	defaults *RuntimeConfig
}

func NewSettings(repo SettingReader, defaults *RuntimeConfig) *Settings {
	return &Settings{repo: repo, defaults: defaults}
}

// MaxAppointmentsPerDay is the per-branch-per-day capacity ceiling.
func (s *Settings) MaxAppointmentsPerDay(ctx context.Context) int {
	fallback := s.defaults.DefaultMaxAppointmentsPerDay

	raw, err := s.repo.GetValue(ctx, domain.SettingMaxAppointmentsPerDay)
	if err != nil {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("settings: ignoring invalid %s=%q", domain.SettingMaxAppointmentsPerDay, raw)
		return fallback
	}
	return n
}

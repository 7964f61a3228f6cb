// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"pulse/internal/domain/entity"
)

// ErrNoActiveConfig is returned when no active scheduling configuration exists.
var ErrNoActiveConfig = errors.New("no active scheduling configuration")

// ConfigRepository defines persistence operations for scheduling configurations.
type ConfigRepository interface {
	// FindActive retrieves the single active scheduling configuration.
	// Returns ErrNoActiveConfig when none exists.
	FindActive(ctx context.Context) (*entity.SchedulingConfig, error)
}

// Package repository provides factory for record sources.
package repository

import (
	"context"
	"fmt"

	"github.com/dimerman/thrivemycareer/config"
	"github.com/dimerman/thrivemycareer/internal/repository/jsonfile"
	"github.com/dimerman/thrivemycareer/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all record source interfaces.
type Repository interface {
	LifecycleInterface
	CompanyInterface
	UserInterface
}

// New constructs a record source backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendJSONFile:
		return jsonfile.New(log, cfg.Input), nil
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}

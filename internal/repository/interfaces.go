// Package repository contains repository interfaces for record sources.
package repository

import (
	"context"

	"github.com/dimerman/thrivemycareer/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// CompanyInterface exposes raw company records in source order.
type CompanyInterface interface {
	CompanyRecords(ctx context.Context) ([]entities.Record, error)
}

// UserInterface exposes raw user records in source order.
// Each record carries the company_id used for association.
type UserInterface interface {
	UserRecords(ctx context.Context) ([]entities.Record, error)
}

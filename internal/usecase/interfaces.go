package usecase

import (
	"context"

	"github.com/dimerman/thrivemycareer/internal/entities"
	"github.com/dimerman/thrivemycareer/internal/usecase/domain"

	"github.com/shopspring/decimal"
)

// LoaderUsecaseInterface abstracts the two-phase record load.
type LoaderUsecaseInterface interface {
	LoadCompanies(ctx context.Context) (map[int]*entities.Company, error)
	LoadUsers(ctx context.Context, companies map[int]*entities.Company) (entities.Grouping, error)
}

// TopUpUsecaseInterface abstracts per-user credit and per-company aggregation.
type TopUpUsecaseInterface interface {
	TopUp(user *entities.User) decimal.Decimal
	BuildCompanyReport(company *entities.Company, users []*entities.User) entities.CompanyReport
}

// PipelineUsecaseInterface abstracts a full report run.
type PipelineUsecaseInterface interface {
	Run(ctx context.Context, sink domain.ReportSink) (entities.RunSummary, error)
}

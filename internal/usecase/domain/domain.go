package domain

import (
	"context"
	"time"

	"github.com/dimerman/thrivemycareer/internal/entities"
	"github.com/dimerman/thrivemycareer/internal/repository"

	"go.uber.org/zap"
)

// ReportSink receives the reports of companies that made it into the output.
type ReportSink interface {
	WriteReport(report entities.CompanyReport) error
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
// Timeout bounds each record source read; zero disables it.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:     log.Named("usecase"),
		repo:    repo,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

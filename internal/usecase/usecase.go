package usecase

import (
	"time"

	"github.com/dimerman/thrivemycareer/internal/repository"
	"github.com/dimerman/thrivemycareer/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	LoaderUsecaseInterface
	TopUpUsecaseInterface
	PipelineUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, repo, timeout)
}

// Package main runs the token top-up report as a one-shot batch job.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimerman/thrivemycareer/config"
	"github.com/dimerman/thrivemycareer/internal/repository"
	"github.com/dimerman/thrivemycareer/internal/transport/text"
	"github.com/dimerman/thrivemycareer/internal/usecase"
	"github.com/dimerman/thrivemycareer/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		exitStartup("load config", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Encoding)
	if err != nil {
		exitStartup("init logger", err)
	}
	log = log.With("run_id", uuid.NewString())

	code := 0
	if err := run(ctx, log, cfg); err != nil {
		log.Errorw("top up run failed", "error", err.Error())
		code = 1
	}
	_ = log.Sync()
	stop()
	os.Exit(code)
}

// exitStartup reports failures that happen before a logger exists.
func exitStartup(step string, err error) {
	reportStartup(os.Stderr, step, err)
	os.Exit(1)
}

func reportStartup(w io.Writer, step string, err error) {
	_, _ = fmt.Fprintf(w, "%s: %v\n", step, err)
}

func run(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) error {
	repo, err := repository.New(ctx, cfg.Source.Backend, log, cfg)
	if err != nil {
		return fmt.Errorf("repository initialization: %w", err)
	}
	if err := repo.OnStart(ctx); err != nil {
		return fmt.Errorf("repository start: %w", err)
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	out, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer func() { _ = out.Close() }()

	uc := usecase.New(log, repo, cfg.Source.Timeout)
	summary, err := uc.Run(ctx, text.NewSink(out))
	if err != nil {
		return err
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	log.Infow("top up run completed",
		"output", cfg.Output.Path,
		"companies_reported", summary.CompaniesReported,
		"companies_suppressed", summary.CompaniesSuppressed,
		"unassigned_users", summary.UnassignedUsers,
		"total", summary.Total.String(),
	)
	return nil
}

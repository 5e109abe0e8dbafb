// Package jsonfile reads raw records from JSON array files.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dimerman/thrivemycareer/config"
	"github.com/dimerman/thrivemycareer/internal/entities"

	"go.uber.org/zap"
)

// Source reads company and user records from two JSON files.
type Source struct {
	log *zap.SugaredLogger
	cfg config.InputConfig
}

// New creates a JSON file record source.
func New(log *zap.SugaredLogger, cfg config.InputConfig) *Source {
	return &Source{
		log: log.Named("source.jsonfile"),
		cfg: cfg,
	}
}

// OnStart checks that both input files are readable.
func (s *Source) OnStart(_ context.Context) error {
	for _, path := range []string{s.cfg.CompaniesPath, s.cfg.UsersPath} {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("%w: %w", entities.ErrSource, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", entities.ErrSource, path)
		}
	}
	s.log.Debugw("json source ready", "companies", s.cfg.CompaniesPath, "users", s.cfg.UsersPath)
	return nil
}

// OnStop is a no-op; files are closed after each read.
func (s *Source) OnStop(_ context.Context) error {
	return nil
}

// CompanyRecords decodes the companies file.
func (s *Source) CompanyRecords(ctx context.Context) ([]entities.Record, error) {
	return s.read(ctx, s.cfg.CompaniesPath)
}

// UserRecords decodes the users file.
func (s *Source) UserRecords(ctx context.Context) ([]entities.Record, error) {
	return s.read(ctx, s.cfg.UsersPath)
}

func (s *Source) read(ctx context.Context, path string) ([]entities.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrSource, err)
	}
	defer func() { _ = f.Close() }()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var records []entities.Record
	if err := dec.Decode(&records); err != nil {
		s.log.Errorw("failed to decode records", "error", err, "path", path)
		return nil, fmt.Errorf("%w: decode %s: %w", entities.ErrSource, path, err)
	}
	for i, r := range records {
		if r == nil {
			return nil, fmt.Errorf("%w: %s: record %d is null", entities.ErrSource, path, i)
		}
	}

	s.log.Debugw("records loaded", "path", path, "count", len(records))
	return records, nil
}

// Package domain contains application Usecases orchestrating the top-up pipeline.
package domain

import (
	"context"
	"fmt"

	"github.com/dimerman/thrivemycareer/internal/entities"
)

// LoadCompanies validates every company record into an id-keyed mapping.
// A repeated id fails the whole load.
func (u *Usecase) LoadCompanies(ctx context.Context) (map[int]*entities.Company, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.log.Infow("loading companies")
	records, err := u.repo.CompanyRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load companies: %w", err)
	}

	companies := make(map[int]*entities.Company, len(records))
	for i, r := range records {
		c, err := entities.NewCompany(r)
		if err != nil {
			u.log.Errorw("invalid company record", "index", i, "error", err)
			return nil, fmt.Errorf("company record %d: %w", i, err)
		}
		if _, exists := companies[c.ID]; exists {
			u.log.Errorw("duplicate company id", "company_id", c.ID)
			return nil, fmt.Errorf("%w: %d", entities.ErrDuplicateCompany, c.ID)
		}
		companies[c.ID] = c
	}

	u.log.Infow("companies loaded", "count", len(companies))
	return companies, nil
}

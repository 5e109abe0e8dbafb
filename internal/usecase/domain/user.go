// Package domain contains application Usecases orchestrating the top-up pipeline.
package domain

import (
	"context"
	"fmt"

	"github.com/dimerman/thrivemycareer/internal/entities"
)

const companyIDField = "company_id"

// LoadUsers validates user records, binds each to its company and groups them by company id.
// Users whose company_id matches no company are kept as unassigned.
func (u *Usecase) LoadUsers(ctx context.Context, companies map[int]*entities.Company) (entities.Grouping, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.log.Infow("loading users")
	records, err := u.repo.UserRecords(ctx)
	if err != nil {
		return entities.Grouping{}, fmt.Errorf("load users: %w", err)
	}

	groups := entities.Grouping{ByCompany: make(map[int][]*entities.User, len(companies))}
	for i, r := range records {
		company := resolveCompany(r, companies)

		user, err := entities.NewUser(r, company)
		if err != nil {
			u.log.Errorw("invalid user record", "index", i, "error", err)
			return entities.Grouping{}, fmt.Errorf("user record %d: %w", i, err)
		}

		if company == nil {
			u.log.Debugw("user not associated with a company", "user_id", user.ID, companyIDField, r[companyIDField])
			groups.Unassigned = append(groups.Unassigned, user)
			continue
		}
		groups.ByCompany[company.ID] = append(groups.ByCompany[company.ID], user)
	}

	u.log.Infow("users loaded", "count", len(records), "unassigned", len(groups.Unassigned))
	return groups, nil
}

func resolveCompany(r entities.Record, companies map[int]*entities.Company) *entities.Company {
	id, ok := entities.IntValue(r[companyIDField])
	if !ok {
		return nil
	}
	return companies[id]
}

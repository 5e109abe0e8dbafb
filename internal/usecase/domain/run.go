package domain

import (
	"context"
	"fmt"
	"slices"

	"github.com/dimerman/thrivemycareer/internal/entities"
)

// Run loads both record sets and writes every company with a positive total to sink,
// in ascending company id order. Reports already written stay written if a later step fails.
func (u *Usecase) Run(ctx context.Context, sink ReportSink) (entities.RunSummary, error) {
	var summary entities.RunSummary

	companies, err := u.LoadCompanies(ctx)
	if err != nil {
		return summary, err
	}
	groups, err := u.LoadUsers(ctx, companies)
	if err != nil {
		return summary, err
	}

	summary.UnassignedUsers = len(groups.Unassigned)
	for _, user := range groups.Unassigned {
		u.TopUp(user)
	}

	ids := make([]int, 0, len(companies))
	for id := range companies {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		company := companies[id]
		u.log.Infow("processing company", "company_id", id, "company_name", company.Name)

		report := u.BuildCompanyReport(company, groups.Users(id))
		if !report.Emittable() {
			u.log.Warnw("company has no top ups and will not appear in the report",
				"company_id", id, "company_name", company.Name, "total", report.Total.String())
			summary.CompaniesSuppressed++
			continue
		}

		if err := sink.WriteReport(report); err != nil {
			return summary, fmt.Errorf("write report for company %d: %w", id, err)
		}
		u.log.Infow("company reported", "company_id", id, "total", report.Total.String())
		summary.CompaniesReported++
		summary.Total = summary.Total.Add(report.Total)
	}

	return summary, nil
}

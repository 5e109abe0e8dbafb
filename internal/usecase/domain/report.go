package domain

import (
	"slices"
	"strings"

	"github.com/dimerman/thrivemycareer/internal/entities"
)

// BuildCompanyReport credits a company's users and collects the non-zero top-ups.
// Users are ordered by last name, emailable users first; both orders are stable.
func (u *Usecase) BuildCompanyReport(company *entities.Company, users []*entities.User) entities.CompanyReport {
	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, func(a, b *entities.User) int {
		return strings.Compare(a.LastName, b.LastName)
	})
	emailed, notEmailed := partition(sorted, (*entities.User).Emailable)

	report := entities.CompanyReport{
		CompanyID:   company.ID,
		CompanyName: company.Name,
		Emailed:     u.buildSection(emailed),
		NotEmailed:  u.buildSection(notEmailed),
	}
	report.Total = report.Emailed.Total.Add(report.NotEmailed.Total)
	return report
}

func (u *Usecase) buildSection(users []*entities.User) entities.ReportSection {
	var section entities.ReportSection
	for _, user := range users {
		previous := user.Tokens
		amount := u.TopUp(user)
		if amount.IsZero() {
			continue
		}
		section.Lines = append(section.Lines, entities.ReportLine{
			UserID:          user.ID,
			LastName:        user.LastName,
			FirstName:       user.FirstName,
			Email:           user.Email,
			PreviousBalance: previous,
			NewBalance:      user.Tokens,
			Amount:          amount,
		})
		section.Total = section.Total.Add(amount)
	}
	return section
}

func partition[T any](items []T, pred func(T) bool) (matched, rest []T) {
	for _, it := range items {
		if pred(it) {
			matched = append(matched, it)
		} else {
			rest = append(rest, it)
		}
	}
	return matched, rest
}

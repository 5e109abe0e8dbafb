package domain

import (
	"testing"

	"github.com/dimerman/thrivemycareer/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func lineIDs(lines []entities.ReportLine) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.UserID)
	}
	return ids
}

func TestUsecase_BuildCompanyReport(t *testing.T) {
	uc, _ := newObserved(&repoMock{})
	acme := &entities.Company{ID: 1, Name: "Acme", TopUp: decimal.NewFromInt(10), EmailStatus: true}
	users := []*entities.User{
		{ID: "smith", LastName: "Smith", FirstName: "A", Email: "a@x", EmailStatus: true, ActiveStatus: true, Tokens: decimal.NewFromInt(5), Company: acme},
		{ID: "jones", LastName: "Jones", FirstName: "B", Email: "b@x", EmailStatus: false, ActiveStatus: true, Tokens: decimal.Zero, Company: acme},
	}

	report := uc.BuildCompanyReport(acme, users)

	require.Equal(t, 1, report.CompanyID)
	require.Equal(t, "Acme", report.CompanyName)
	require.Equal(t, []string{"smith"}, lineIDs(report.Emailed.Lines))
	require.Equal(t, []string{"jones"}, lineIDs(report.NotEmailed.Lines))
	require.Equal(t, "5", report.Emailed.Lines[0].PreviousBalance.String())
	require.Equal(t, "15", report.Emailed.Lines[0].NewBalance.String())
	require.Equal(t, "10", report.NotEmailed.Lines[0].NewBalance.String())
	require.Equal(t, "20", report.Total.String())
	require.True(t, report.Emittable())
}

func TestUsecase_BuildCompanyReportStableOrder(t *testing.T) {
	uc, _ := newObserved(&repoMock{})
	acme := &entities.Company{ID: 1, Name: "Acme", TopUp: decimal.NewFromInt(1), EmailStatus: true}
	mk := func(id, last string, email bool) *entities.User {
		return &entities.User{ID: id, LastName: last, EmailStatus: email, ActiveStatus: true, Company: acme}
	}
	users := []*entities.User{
		mk("lee-1", "Lee", false),
		mk("adams", "Adams", true),
		mk("lee-2", "Lee", true),
		mk("lee-3", "Lee", false),
		mk("baker", "Baker", false),
		mk("lee-4", "Lee", true),
	}

	report := uc.BuildCompanyReport(acme, users)

	require.Equal(t, []string{"adams", "lee-2", "lee-4"}, lineIDs(report.Emailed.Lines))
	require.Equal(t, []string{"baker", "lee-1", "lee-3"}, lineIDs(report.NotEmailed.Lines))
	require.Equal(t, "lee-1", users[0].ID, "input slice must not be reordered")
}

func TestUsecase_BuildCompanyReportSkipsZeroTopUps(t *testing.T) {
	uc, _ := newObserved(&repoMock{})
	acme := &entities.Company{ID: 1, Name: "Acme", TopUp: decimal.NewFromInt(7), EmailStatus: false}
	users := []*entities.User{
		{ID: "inactive", LastName: "A", EmailStatus: true, ActiveStatus: false, Tokens: decimal.NewFromInt(2), Company: acme},
		{ID: "active", LastName: "B", ActiveStatus: true, Tokens: decimal.NewFromInt(2), Company: acme},
	}

	report := uc.BuildCompanyReport(acme, users)

	require.Empty(t, report.Emailed.Lines)
	require.Equal(t, []string{"active"}, lineIDs(report.NotEmailed.Lines))
	require.Equal(t, "7", report.NotEmailed.Total.String())
	require.Equal(t, "7", report.Total.String())
	require.Equal(t, "2", users[0].Tokens.String())
}

func TestUsecase_BuildCompanyReportAllZero(t *testing.T) {
	uc, _ := newObserved(&repoMock{})
	acme := &entities.Company{ID: 3, Name: "Idle", TopUp: decimal.NewFromInt(7), EmailStatus: true}
	users := []*entities.User{
		{ID: "x", LastName: "X", EmailStatus: true, ActiveStatus: false, Company: acme},
	}

	report := uc.BuildCompanyReport(acme, users)
	require.True(t, report.Total.IsZero())
	require.False(t, report.Emittable())

	empty := uc.BuildCompanyReport(acme, nil)
	require.True(t, empty.Total.IsZero())
	require.False(t, empty.Emittable())
}

// Package entities contains core business entities.
package entities

import "github.com/shopspring/decimal"

// ReportLine describes a single credited user.
type ReportLine struct {
	UserID          string
	LastName        string
	FirstName       string
	Email           string
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Amount          decimal.Decimal
}

// ReportSection groups credited users under a label.
type ReportSection struct {
	Lines []ReportLine
	Total decimal.Decimal
}

// CompanyReport is the structured result of processing one company.
type CompanyReport struct {
	CompanyID   int
	CompanyName string
	Emailed     ReportSection
	NotEmailed  ReportSection
	Total       decimal.Decimal
}

// Emittable reports whether the company belongs in the output artifact.
func (r CompanyReport) Emittable() bool {
	return r.Total.IsPositive()
}

// Grouping maps company ids to their users in input order.
type Grouping struct {
	ByCompany map[int][]*User
	// Unassigned holds users whose company id matched no company.
	Unassigned []*User
}

// Users returns the users of a company, or nil when it has none.
func (g Grouping) Users(companyID int) []*User {
	return g.ByCompany[companyID]
}

// RunSummary aggregates the outcome of a pipeline run.
type RunSummary struct {
	CompaniesReported   int
	CompaniesSuppressed int
	UnassignedUsers     int
	Total               decimal.Decimal
}

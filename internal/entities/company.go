// Package entities contains core business entities.
package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const companyKind = "company"

// Company is an employer granting a fixed top-up to each of its active users.
type Company struct {
	ID          int
	Name        string
	TopUp       decimal.Decimal
	EmailStatus bool
}

// NewCompany validates a raw company record and builds the entity.
func NewCompany(r Record) (*Company, error) {
	if err := r.checkPresent(companyKind, "id", "name", "top_up", "email_status"); err != nil {
		return nil, err
	}

	emailStatus, err := r.boolean(companyKind, "email_status")
	if err != nil {
		return nil, err
	}

	id, err := r.number(companyKind, "id")
	if err != nil {
		return nil, err
	}
	topUp, err := r.number(companyKind, "top_up")
	if err != nil {
		return nil, err
	}

	name, err := r.text(companyKind, "name")
	if err != nil {
		return nil, err
	}
	if !id.IsInteger() {
		return nil, fmt.Errorf("%w: company field \"id\" must be an integer, got %s", ErrValidation, id)
	}
	intID, ok := toInt(id)
	if !ok {
		return nil, fmt.Errorf("%w: company field \"id\" is out of range, got %s", ErrValidation, id)
	}
	if !topUp.IsPositive() {
		return nil, fmt.Errorf("%w: company %s field \"top_up\" must be positive, got %s", ErrValidation, id, topUp)
	}

	return &Company{
		ID:          intID,
		Name:        name,
		TopUp:       topUp,
		EmailStatus: emailStatus,
	}, nil
}

// Package entities contains core business entities.
package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const userKind = "user"

// User is a company member holding a token balance.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	EmailStatus  bool
	ActiveStatus bool
	Tokens       decimal.Decimal
	// Company is nil when the user is not associated with any known company.
	Company *Company
}

// NewUser validates a raw user record and binds it to company, which may be nil.
// Keys outside the user schema, such as company_id, are ignored.
func NewUser(r Record, company *Company) (*User, error) {
	if err := r.checkPresent(userKind,
		"id", "first_name", "last_name", "email", "email_status", "active_status", "tokens",
	); err != nil {
		return nil, err
	}

	emailStatus, err := r.boolean(userKind, "email_status")
	if err != nil {
		return nil, err
	}
	activeStatus, err := r.boolean(userKind, "active_status")
	if err != nil {
		return nil, err
	}

	tokens, err := r.number(userKind, "tokens")
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, 3)
	for _, f := range []string{"first_name", "last_name", "email"} {
		s, err := r.text(userKind, f)
		if err != nil {
			return nil, err
		}
		names[f] = s
	}

	return &User{
		ID:           fmt.Sprint(r["id"]),
		FirstName:    names["first_name"],
		LastName:     names["last_name"],
		Email:        names["email"],
		EmailStatus:  emailStatus,
		ActiveStatus: activeStatus,
		Tokens:       tokens,
		Company:      company,
	}, nil
}

// Emailable reports whether both the user and its company opted in to email.
func (u *User) Emailable() bool {
	return u.EmailStatus && u.Company != nil && u.Company.EmailStatus
}

package domain

import (
	"github.com/dimerman/thrivemycareer/internal/entities"

	"github.com/shopspring/decimal"
)

// TopUp credits an active user with its company's top-up and returns the amount.
// It must run at most once per user: every call adds to the balance again.
func (u *Usecase) TopUp(user *entities.User) decimal.Decimal {
	if user.Company == nil {
		u.log.Warnw("user has no assigned company, no top up applied", "user_id", user.ID)
		return decimal.Zero
	}
	if !user.ActiveStatus {
		return decimal.Zero
	}

	amount := decimal.Max(user.Company.TopUp, decimal.Zero)
	if amount.IsZero() {
		return decimal.Zero
	}

	user.Tokens = user.Tokens.Add(amount)
	return amount
}

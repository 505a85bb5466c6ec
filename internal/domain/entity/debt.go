package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// MaxDebtAmount is the exclusive upper bound of a debt amount, set by the numeric(14,2) column.
var MaxDebtAmount = decimal.New(1, 12)

// DebtStatus is the lifecycle state of a debt.
type DebtStatus string

const (
	DebtStatusPending DebtStatus = "PENDING"
	DebtStatusPartial DebtStatus = "PARTIAL"
	DebtStatusPaid    DebtStatus = "PAID"
)

// String returns the string representation of the DebtStatus.
func (s DebtStatus) String() string {
	return string(s)
}

// IsValid checks if the DebtStatus is a valid value.
func (s DebtStatus) IsValid() bool {
	switch s {
	case DebtStatusPending, DebtStatusPartial, DebtStatusPaid:
		return true
	default:
		return false
	}
}

// IsActive reports whether the debt is still owed.
func (s DebtStatus) IsActive() bool {
	return s == DebtStatusPending || s == DebtStatusPartial
}

// Debt is an amount a client owes to a commerce.
type Debt struct {
	ID          uint            `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      DebtStatus      `json:"status"`
	ComercioID  uint            `json:"comercioId"`
	ClientID    uint            `json:"clientId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Comercio is only loaded for cross-commerce history.
	Comercio *DebtCommerce `json:"comercio,omitempty"`
}

// DebtCommerce is the public view of the commerce owning a debt.
type DebtCommerce struct {
	Name string `json:"name"`
}

// IsOwnedBy reports whether the debt belongs to the given commerce.
func (d *Debt) IsOwnedBy(commerceID uint) bool {
	return d != nil && d.ComercioID == commerceID
}

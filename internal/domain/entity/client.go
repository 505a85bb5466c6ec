package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is a debtor identified by its national ID number (DNI).
// Clients are shared between commerces.
type Client struct {
	ID        uint      `json:"id"`
	DNI       string    `json:"dni"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Debts []*Debt `json:"debts"`

	// Derived from Debts, never stored.
	TotalDebt   decimal.Decimal `json:"totalDebt"`
	ActiveDebts int             `json:"activeDebts"`
}

// Summarize recomputes TotalDebt and ActiveDebts from the loaded debts.
// Only active debts count towards both values.
func (c *Client) Summarize() {
	total := decimal.Zero
	active := 0

	for _, debt := range c.Debts {
		if debt == nil || !debt.Status.IsActive() {
			continue
		}
		total = total.Add(debt.Amount)
		active++
	}

	c.TotalDebt = total
	c.ActiveDebts = active
	if c.Debts == nil {
		c.Debts = []*Debt{}
	}
}

// ClientInput identifies the client a new debt is registered against.
type ClientInput struct {
	DNI       string
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
}

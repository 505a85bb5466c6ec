package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtModel mirrors the 'debts' table.
type DebtModel struct {
	ID          uint            `gorm:"primaryKey;autoIncrement"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Description string          `gorm:"type:text;not null"`
	Status      string          `gorm:"type:varchar(16);not null;default:PENDING;index"`
	ComercioID  uint            `gorm:"column:comercio_id;not null;index"`
	ClientID    uint            `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time

	Comercio *UserModel   `gorm:"foreignKey:ComercioID"`
	Client   *ClientModel `gorm:"foreignKey:ClientID"`
}

// TableName explicitly sets the table name for GORM.
func (DebtModel) TableName() string {
	return "debts"
}

// All lists the models of the schema in dependency order.
func All() []any {
	return []any{&UserModel{}, &ClientModel{}, &DebtModel{}}
}

package model

import "time"

// ClientModel mirrors the 'clients' table.
type ClientModel struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	DNI       string  `gorm:"column:dni;type:varchar(20);uniqueIndex;not null"`
	FirstName string  `gorm:"type:varchar(255);not null"`
	LastName  string  `gorm:"type:varchar(255);not null"`
	Email     *string `gorm:"type:varchar(255);uniqueIndex"`
	Phone     *string `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Debts []DebtModel `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}

package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Email     string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Password  string  `gorm:"type:varchar(255);not null"`
	Cuit      *string `gorm:"type:varchar(20);uniqueIndex"`
	Role      string  `gorm:"type:varchar(16);not null;default:COMERCIO"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Debts []DebtModel `gorm:"foreignKey:ComercioID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

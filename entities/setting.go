package entities

import (
	"github.com/google/uuid"
)

type Setting struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	PreferredCurrency string    `json:"preferred_currency"` // "CRC", "USD"
	ExchangeRate      *float64  `json:"exchange_rate,omitempty"`
	MonthlyBudget     float64   `json:"monthly_budget"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

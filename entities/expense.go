package entities

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	SourceID    uuid.UUID `gorm:"not null" json:"source_id"`
	Vendor      string    `json:"vendor,omitempty"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Total       float64   `json:"total"`
	Currency    string    `json:"currency"`     // "CRC", "USD"
	ExpenseType string    `json:"expense_type"` // "simple", "invoice"
	Category    *string   `json:"category,omitempty"`

	User           *User            `gorm:"foreignKey:UserID" json:"-"`
	Source         *Source          `gorm:"foreignKey:SourceID" json:"source,omitempty"`
	InvoiceDetails []*InvoiceDetail `gorm:"foreignKey:ExpenseID" json:"invoice_details,omitempty"`
	Timestamp
}

type InvoiceDetail struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ExpenseID uuid.UUID `json:"expense_id"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`

	Expense *Expense `gorm:"foreignKey:ExpenseID" json:"-"`
	Timestamp
}

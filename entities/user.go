package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	IsVerified bool      `json:"is_verified"`

	Expenses []*Expense `gorm:"foreignKey:UserID"`
	Setting  *Setting   `gorm:"foreignKey:UserID"`
	Timestamp
}

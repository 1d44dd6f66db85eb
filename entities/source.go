package entities

import (
	"time"

	"github.com/google/uuid"
)

type Source struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Kind        string    `json:"kind"` // "message", "image"
	Description string    `json:"description,omitempty"`
	ReceivedAt  time.Time `json:"received_at"`
	FileURL     string    `json:"file_url,omitempty"`

	Timestamp
}

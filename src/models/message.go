package models

import (
	"resihub/src/types"
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID        uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	Text      string     `json:"text"`
	Upvotes   uint       `gorm:"default:0" json:"upvotes"`
	Downvotes uint       `gorm:"default:0" json:"downvotes"`
	ExpiresAt *time.Time `gorm:"index" json:"expires_at,omitempty"`

	types.Timestamps
}

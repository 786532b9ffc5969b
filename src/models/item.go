package models

import (
	"resihub/src/types"
	"time"

	"github.com/google/uuid"
)

// Item is a lost-and-found report. Updates is an append-only trail of dated
// status notes kept as JSONB.
type Item struct {
	ID                uuid.UUID        `gorm:"type:uuid;primarykey" json:"id"`
	Description       string           `json:"description"`
	Shipper           *string          `json:"shipper,omitempty"`
	DateReported      time.Time        `json:"date_reported"`
	LastSeen          *time.Time       `json:"last_seen,omitempty"`
	Location          string           `json:"location"`
	Status            types.ItemStatus `gorm:"default:'stolen'" json:"status"`
	Type              types.ItemKind   `json:"type"`
	ContactInfo       *string          `json:"contact_info,omitempty"`
	AdditionalDetails *string          `json:"additional_details,omitempty"`
	Updates           types.JSONBArray `gorm:"type:jsonb" json:"updates,omitempty"`

	types.Timestamps
}

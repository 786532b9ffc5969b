package models

import (
	"resihub/src/types"
	"time"
)

// Reservation rows are only ever written through the validation pipeline and
// are never updated in place; CreatedAt is stamped at acceptance time rather
// than by the database.
type Reservation struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	RoomNumber   types.RoomKey `gorm:"index" json:"room_number"`
	ReserverRoom string        `json:"reserver_room"`
	StartTime    time.Time     `gorm:"index" json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	Description  string        `json:"description"`
	IsOpenInvite *bool         `json:"is_open_invite,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`

	// Derived from StartTime/EndTime against the current instant on every
	// read; never persisted.
	Status string `gorm:"-" json:"status,omitempty"`
}

package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type JSONB map[string]any
type JSONBArray []any

func (a JSONB) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONB) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

func (a JSONBArray) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a)
	return string(valueString), err
}
func (a *JSONBArray) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	return nil
}

// RoomKey identifies one of the shared rooms of the residence. The set is
// fixed at configuration time; rooms are never created or removed at runtime.
type RoomKey string

const (
	ROOM_FOYER   RoomKey = "foyer"
	ROOM_PARTY   RoomKey = "party"
	ROOM_ROOFTOP RoomKey = "rooftop"
	ROOM_GUEST   RoomKey = "guest"
)

var RoomOptions = map[RoomKey]string{
	ROOM_FOYER:   "Foyer / Projector Room",
	ROOM_PARTY:   "Party Room",
	ROOM_ROOFTOP: "Rooftop Terrace",
	ROOM_GUEST:   "Guest Room (next to entrance)",
}

// RoomKeys returns the room set in a stable order for rendering.
func RoomKeys() []RoomKey {
	return []RoomKey{ROOM_FOYER, ROOM_PARTY, ROOM_ROOFTOP, ROOM_GUEST}
}

func (r RoomKey) Valid() bool {
	_, ok := RoomOptions[r]
	return ok
}

func (r RoomKey) Label() string {
	return RoomOptions[r]
}

type ItemStatus string

const (
	ITEM_STOLEN   ItemStatus = "stolen"
	ITEM_FOUND    ItemStatus = "found"
	ITEM_RESOLVED ItemStatus = "resolved"
)

type ItemKind string

const (
	ITEM_PACKAGE  ItemKind = "package"
	ITEM_CLOTHING ItemKind = "clothing"
	ITEM_OTHER    ItemKind = "other"
)

type TimePeriod string

const (
	PERIOD_DAY   TimePeriod = "day"
	PERIOD_WEEK  TimePeriod = "week"
	PERIOD_MONTH TimePeriod = "month"
	PERIOD_ALL   TimePeriod = "all"
)

// CutoffFrom maps a period filter to the earliest creation instant included.
// The zero time means no cutoff.
func (p TimePeriod) CutoffFrom(now time.Time) time.Time {
	switch p {
	case PERIOD_DAY:
		return now.Add(-24 * time.Hour)
	case PERIOD_WEEK:
		return now.Add(-7 * 24 * time.Hour)
	case PERIOD_MONTH:
		return now.Add(-30 * 24 * time.Hour)
	default:
		return time.Time{}
	}
}

type CreateReservationRequestBody struct {
	RoomNumber   string `json:"room_number"`
	ReserverRoom string `json:"reserver_room"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Description  string `json:"description"`
	IsOpenInvite bool   `json:"is_open_invite"`
}

type CreateMessageRequestBody struct {
	Text string `json:"text" binding:"required,max=500"`
}

type VoteRequestBody struct {
	Type string `json:"type" binding:"required,votekind"`
}

type CreateItemRequestBody struct {
	Description       string     `json:"description" binding:"required"`
	Location          string     `json:"location" binding:"required"`
	Type              string     `json:"type" binding:"required,itemkind"`
	Shipper           *string    `json:"shipper,omitempty"`
	LastSeen          *time.Time `json:"last_seen,omitempty"`
	ContactInfo       *string    `json:"contact_info,omitempty"`
	AdditionalDetails *string    `json:"additional_details,omitempty"`
}

type CreateItemUpdateRequestBody struct {
	Text   string `json:"text" binding:"required"`
	Status string `json:"status" binding:"required,itemstatus"`
}

type CreateCommentRequestBody struct {
	Text string `json:"text" binding:"required,max=500"`
}

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}

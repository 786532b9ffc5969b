package models

import (
	"resihub/src/types"

	"github.com/google/uuid"
)

type Story struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Content   string    `json:"content"`
	Upvotes   uint      `gorm:"default:0" json:"upvotes"`
	Downvotes uint      `gorm:"default:0" json:"downvotes"`

	Comments []Comment `gorm:"foreignKey:story_id" json:"comments,omitempty"`

	types.Timestamps
}

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	StoryID   uuid.UUID `gorm:"type:uuid;index" json:"story_id"`
	Text      string    `json:"text"`
	Upvotes   uint      `gorm:"default:0" json:"upvotes"`
	Downvotes uint      `gorm:"default:0" json:"downvotes"`

	types.Timestamps
}

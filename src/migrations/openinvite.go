// Package migrations holds one-off data backfills. Nothing here runs as part
// of normal request handling.
package migrations

import (
	"log"
	"resihub/src/models"
	"strings"

	"gorm.io/gorm"
)

// Phrases that marked a legacy reservation as an open invitation before the
// flag existed as an explicit form field.
var openInviteKeywords = []string{
	"open for everyone",
	"everyone welcome",
	"welcome to join",
	"feel free to join",
	"open invitation",
	"open to all",
	"anyone can join",
}

// MatchesOpenInvite reports whether a description reads like an open
// invitation. Only used for the legacy backfill; new submissions carry the
// flag explicitly.
func MatchesOpenInvite(description string) bool {
	desc := strings.ToLower(description)
	for _, keyword := range openInviteKeywords {
		if strings.Contains(desc, keyword) {
			return true
		}
	}
	return false
}

// BackfillOpenInvite fills in is_open_invite for rows created before the
// field existed. Rows that already carry the flag are left alone, so the
// backfill is safe to re-run.
func BackfillOpenInvite(db *gorm.DB) (int64, error) {
	var legacy []models.Reservation
	if err := db.
		Model(&models.Reservation{}).
		Where("is_open_invite IS NULL").
		Find(&legacy).
		Error; err != nil {
		return 0, err
	}
	log.Printf("Found %d reservations to process\n", len(legacy))

	var updated int64
	for _, r := range legacy {
		isOpenInvite := MatchesOpenInvite(r.Description)
		err := db.
			Model(&models.Reservation{}).
			Where("id = ?", r.ID).
			UpdateColumn("is_open_invite", isOpenInvite).
			Error
		if err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

package utils

import (
	"context"
	"log"
	"resihub/src/db"
	"resihub/src/lib"
	"resihub/src/models"

	"github.com/google/uuid"
)

// CleanupExpiredMessages removes board messages past their expiry. Runs
// hourly from the scheduler. Unscoped so expired rows are dropped for real
// instead of piling up as soft deletes.
func CleanupExpiredMessages() {
	db := db.GetDb()
	res := db.
		Unscoped().
		Where("expires_at <= ?", Clock.Now()).
		Delete(&models.Message{})
	if res.Error != nil {
		log.Printf("Error cleaning up messages: %s\n", res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("Deleted %d expired messages\n", res.RowsAffected)
	}
}

// GenerateAndStoreDailyStory asks the model for today's story and stores it.
// The generator itself never fails hard; a fallback text is stored instead.
func GenerateAndStoreDailyStory() {
	content := lib.GenerateDailyStory(context.Background())
	story := models.Story{
		ID:      uuid.New(),
		Content: content,
	}
	db := db.GetDb()
	if err := db.Create(&story).Error; err != nil {
		log.Printf("Error storing daily story: %s\n", err.Error())
		return
	}
	log.Printf("Stored daily story %s\n", story.ID.String())
}

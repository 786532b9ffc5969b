package boot

import (
	"log"
	"resihub/src/db"
	"resihub/src/lib"
	"resihub/src/migrations"
	"resihub/src/models"
	"resihub/src/utils"
	"time"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Reservation{},
		&models.Message{},
		&models.Item{},
		&models.Story{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	updated, err := migrations.BackfillOpenInvite(db)
	if err != nil {
		log.Printf("Error backfilling open invite flags: %s\n", err.Error())
	} else if updated > 0 {
		log.Printf("Backfilled open invite flag on %d reservations\n", updated)
	}

	return db
}

func InitScheduler() {
	if _, err := lib.CreateCronJob(utils.CleanupExpiredMessages, 1*time.Hour); err != nil {
		log.Printf("Error scheduling message cleanup: %s\n", err.Error())
	}
	if _, err := lib.CreateDailyCronJob(utils.GenerateAndStoreDailyStory, 6, 0); err != nil {
		log.Printf("Error scheduling daily story: %s\n", err.Error())
	}
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	log.Println("Jobs in queue:", len(sched.Jobs()))
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while shutting stopping Scheduler. Check logs for info")
		return
	}
}

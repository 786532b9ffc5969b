package utils

import (
	"database/sql"
	"errors"
	"log"
	"resihub/src/db"
	"resihub/src/models"
	"resihub/src/reservation"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GetReservations returns the full reservation set ordered ascending by
// start time; classification and grid building happen on this snapshot.
func GetReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	db := db.GetDb()
	err := db.
		Model(&models.Reservation{}).
		Order("start_time asc").
		Find(&reservations).
		Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// CreateReservation runs the validation pipeline and the insert inside one
// serializable transaction, so the conflict check and the write cannot be
// split by a concurrent submission for the same room. A serialization abort
// is retried once and then surfaced as a conflict.
func CreateReservation(req reservation.Request) (models.Reservation, error) {
	now := Clock.Now()
	rec, err := createReservationTx(req, now)
	if err != nil && isSerializationFailure(err) {
		log.Printf("Serialization failure on reservation insert, retrying once: %s\n", err.Error())
		rec, err = createReservationTx(req, now)
		if err != nil && isSerializationFailure(err) {
			return models.Reservation{}, &reservation.ConflictError{Start: req.StartTime, End: req.EndTime}
		}
	}
	return rec, err
}

func createReservationTx(req reservation.Request, now time.Time) (models.Reservation, error) {
	var rec models.Reservation
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing []models.Reservation
		if err := tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{RoomNumber: req.RoomNumber}).
			Find(&existing).
			Error; err != nil {
			return err
		}
		accepted, err := reservation.Validate(req, existing, now)
		if err != nil {
			return err
		}
		if err := tx.Create(&accepted).Error; err != nil {
			return err
		}
		rec = accepted
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return models.Reservation{}, err
	}
	return rec, nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001"
	}
	return false
}

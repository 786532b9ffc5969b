package main

import (
	"errors"
	"net/http"
	"resihub/src/config"
	"resihub/src/reservation"
	"resihub/src/types"
	"resihub/src/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// reservationStatusCode maps pipeline failures onto HTTP statuses: conflicts
// are 409, every other validation failure is 400, anything else is storage.
func reservationStatusCode(err error) int {
	var conflictErr *reservation.ConflictError
	if errors.As(err, &conflictErr) {
		return http.StatusConflict
	}
	var missingErr *reservation.MissingFieldError
	var rangeErr *reservation.InvalidRangeError
	var pastErr *reservation.PastStartError
	var durationErr *reservation.DurationExceededError
	var reserverErr *reservation.InvalidReserverRoomError
	if errors.As(err, &missingErr) || errors.As(err, &rangeErr) ||
		errors.As(err, &pastErr) || errors.As(err, &durationErr) ||
		errors.As(err, &reserverErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func reservationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/reservations/rooms", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"data": types.RoomOptions})
		}).
		GET("/reservations", func(ctx *gin.Context) {
			reservations, err := utils.GetReservations()
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			views := reservation.Split(reservations, utils.Clock.Now())
			offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
			limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
			views.Past = reservation.PagePast(views.Past, offset, limit)
			ctx.JSON(http.StatusOK, gin.H{"data": views, "count": len(reservations)})
		}).
		GET("/reservations/calendar", func(ctx *gin.Context) {
			start := utils.Clock.Now()
			if startParam := ctx.Query("start"); startParam != "" {
				parsed, err := time.ParseInLocation(config.DATE_PARSE_FORMAT, startParam, time.Local)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				start = parsed
			}
			days := reservation.DefaultGridDays
			if daysParam := ctx.Query("days"); daysParam != "" {
				atoi, err := strconv.Atoi(daysParam)
				if err != nil || atoi <= 0 || atoi > 31 {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid days parameter"})
					return
				}
				days = atoi
			}
			reservations, err := utils.GetReservations()
			if err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			grid := reservation.BuildGrid(types.RoomKeys(), reservations, start, days)
			ctx.JSON(http.StatusOK, gin.H{"data": grid})
		}).
		POST("/reservations", func(ctx *gin.Context) {
			var body types.CreateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			req := utils.ParseReservationRequest(body)
			rec, err := utils.CreateReservation(req)
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			rec.Status = string(reservation.Classify(rec, utils.Clock.Now()))
			ctx.JSON(http.StatusCreated, gin.H{"data": rec})
		})
	return g
}

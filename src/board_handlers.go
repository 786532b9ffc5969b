package main

import (
	"net/http"
	"resihub/src/db"
	"resihub/src/models"
	"resihub/src/types"
	"resihub/src/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Board messages live for 30 days, then the hourly cleanup job removes them.
const messageTTL = 30 * 24 * time.Hour

func boardHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/messages", func(ctx *gin.Context) {
			period := types.TimePeriod(ctx.DefaultQuery("period", string(types.PERIOD_ALL)))
			var messages []models.Message
			db := db.GetDb()
			q := db.Model(&models.Message{}).Order("created_at desc")
			if cutoff := period.CutoffFrom(utils.Clock.Now()); !cutoff.IsZero() {
				q = q.Where("created_at >= ?", cutoff)
			}
			if err := q.Find(&messages).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": messages, "count": len(messages)})
		}).
		POST("/messages", func(ctx *gin.Context) {
			var body types.CreateMessageRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			expiresAt := utils.Clock.Now().Add(messageTTL)
			message := models.Message{
				ID:        uuid.New(),
				Text:      body.Text,
				ExpiresAt: &expiresAt,
			}
			db := db.GetDb()
			if err := db.Create(&message).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": message})
		}).
		POST("/messages/:id/vote", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.VoteRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			id, err := uuid.Parse(params.ID)
			if err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			if err := utils.ApplyVote(db, &models.Message{}, id, body.Type); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

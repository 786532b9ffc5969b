package main

import (
	"errors"
	"net/http"
	"resihub/src/db"
	"resihub/src/lib"
	"resihub/src/models"
	"resihub/src/types"
	"resihub/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func storyHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/stories", func(ctx *gin.Context) {
			var stories []models.Story
			db := db.GetDb()
			if err := db.
				Model(&models.Story{}).
				Order("created_at desc").
				Find(&stories).
				Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": stories, "count": len(stories)})
		}).
		GET("/stories/today", func(ctx *gin.Context) {
			var story models.Story
			db := db.GetDb()
			if err := db.
				Model(&models.Story{}).
				Order("created_at desc").
				First(&story).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"content": lib.StoryFallback}})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": story})
		}).
		GET("/stories/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			id, err := uuid.Parse(params.ID)
			if err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var story models.Story
			db := db.GetDb()
			if err := db.
				Where("id = ?", id).
				Preload("Comments").
				First(&story).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": story})
		}).
		POST("/stories/:id/vote", func(ctx *gin.Context) {
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
			if err := utils.ApplyVote(db, &models.Story{}, id, body.Type); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		POST("/stories/:id/comments", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateCommentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			storyID, err := uuid.Parse(params.ID)
			if err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			comment := models.Comment{
				ID:      uuid.New(),
				StoryID: storyID,
				Text:    body.Text,
			}
			db := db.GetDb()
			err = db.Transaction(func(tx *gorm.DB) error {
				var story models.Story
				if err := tx.
					Where("id = ?", storyID).
					Select("id").
					First(&story).
					Error; err != nil {
					return err
				}
				return tx.Create(&comment).Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "story not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": comment})
		}).
		POST("/comments/:id/vote", func(ctx *gin.Context) {
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
			if err := utils.ApplyVote(db, &models.Comment{}, id, body.Type); err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}

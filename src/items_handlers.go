package main

import (
	"errors"
	"net/http"
	"resihub/src/db"
	"resihub/src/models"
	"resihub/src/types"
	"resihub/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func itemsHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/items", func(ctx *gin.Context) {
			var items []models.Item
			db := db.GetDb()
			q := db.Model(&models.Item{}).Order("date_reported desc")
			if status := ctx.Query("status"); status != "" {
				q = q.Where(&models.Item{Status: types.ItemStatus(status)})
			}
			if err := q.Find(&items).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
		}).
		POST("/items", func(ctx *gin.Context) {
			var body types.CreateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item := models.Item{
				ID:                uuid.New(),
				Description:       body.Description,
				Shipper:           body.Shipper,
				DateReported:      utils.Clock.Now(),
				LastSeen:          body.LastSeen,
				Location:          body.Location,
				Status:            types.ITEM_STOLEN,
				Type:              types.ItemKind(body.Type),
				ContactInfo:       body.ContactInfo,
				AdditionalDetails: body.AdditionalDetails,
				Updates:           types.JSONBArray{},
			}
			db := db.GetDb()
			if err := db.Create(&item).Error; err != nil {
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": item})
		}).
		POST("/items/:id/updates", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.CreateItemUpdateRequestBody
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
			var item models.Item
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.
					Where("id = ?", id).
					First(&item).
					Error; err != nil {
					return err
				}
				item.Updates = append(item.Updates, types.JSONB{
					"date":   utils.Clock.Now(),
					"text":   body.Text,
					"status": body.Status,
				})
				item.Status = types.ItemStatus(body.Status)
				return tx.
					Model(&models.Item{}).
					Where("id = ?", id).
					Updates(map[string]any{
						"status":  item.Status,
						"updates": item.Updates,
					}).
					Error
			})
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
					return
				}
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": item})
		})
	return g
}

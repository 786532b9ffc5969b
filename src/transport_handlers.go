package main

import (
	"net/http"
	"resihub/src/config"
	"resihub/src/lib"
	"strconv"

	"github.com/gin-gonic/gin"
)

func transportHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/transport/stationboard", func(ctx *gin.Context) {
			station := ctx.DefaultQuery("station", config.TRANSPORT_HOME_STATION)
			limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
			board, err := lib.GetStationBoard(ctx.Request.Context(), station, limit)
			if err != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": board})
		}).
		GET("/transport/connections", func(ctx *gin.Context) {
			from := ctx.DefaultQuery("from", config.TRANSPORT_HOME_STATION)
			to := ctx.Query("to")
			if to == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "to parameter is required"})
				return
			}
			connections, err := lib.GetConnections(ctx.Request.Context(), from, to)
			if err != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": connections, "count": len(connections)})
		}).
		GET("/transport/connections/students", func(ctx *gin.Context) {
			from := ctx.DefaultQuery("from", config.TRANSPORT_HOME_STATION)
			connections, err := lib.GetAllStudentConnections(ctx.Request.Context(), from)
			if err != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": connections})
		})
	return g
}

package main

import (
	"net/http"
	"resihub/src/lib"

	"github.com/gin-gonic/gin"
)

func weatherHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/weather/forecast", func(ctx *gin.Context) {
			forecast, err := lib.GetWeatherForecast(ctx.Request.Context())
			if err != nil {
				ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": forecast})
		})
	return g
}

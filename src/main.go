package main

import (
	"log"
	"net/http"
	"os"
	"path"
	"resihub/src/boot"
	"resihub/src/types"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

const apiPrefix = "/api/v1"

var itemStatusValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch types.ItemStatus(value) {
	case types.ITEM_STOLEN, types.ITEM_FOUND, types.ITEM_RESOLVED:
		return true
	}
	return false
}

var itemKindValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	switch types.ItemKind(value) {
	case types.ITEM_PACKAGE, types.ITEM_CLOTHING, types.ITEM_OTHER:
		return true
	}
	return false
}

var voteKindValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return value == "up" || value == "down"
}

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("itemstatus", itemStatusValidatorFunc)
		v.RegisterValidation("itemkind", itemKindValidatorFunc)
		v.RegisterValidation("votekind", voteKindValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}

	boot.InitDb()
	boot.InitScheduler()
	defer boot.StopScheduler()

	router := setupRouter()

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin")
		cc.AllowOrigins = []string{appHost}
		router.Use(cors.New(cc))
	}

	registerValidations()

	api := router.Group(apiPrefix)
	{
		api = reservationHandlers(api)
		api = boardHandlers(api)
		api = itemsHandlers(api)
		api = transportHandlers(api)
		api = weatherHandlers(api)
		api = storyHandlers(api)
	}

	if err := router.Run(":9090"); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}

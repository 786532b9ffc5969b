package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

const TIME_PARSE_FORMAT = "2006-01-02T15:04"
const DATE_PARSE_FORMAT = "2006-01-02"

// Residence coordinates (Witellikerstrasse 20, Zurich) used for the
// open-meteo forecast query.
const (
	WEATHER_LATITUDE  = "47.3619"
	WEATHER_LONGITUDE = "8.5744"
	WEATHER_TIMEZONE  = "Europe/Zurich"
)

const TRANSPORT_API_BASE_URL = "https://transport.opendata.ch/v1"

// Default origin stop for student connection lookups.
const TRANSPORT_HOME_STATION = "Balgrist"

const GEMINI_API_BASE_URL = "https://generativelanguage.googleapis.com/v1beta"
const GEMINI_MODEL = "gemini-pro"

func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

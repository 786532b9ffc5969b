package lib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastFixture = `{
	"hourly": {
		"time": ["2024-06-01T00:00", "2024-06-01T01:00", "2024-06-01T02:00"],
		"temperature_2m": [14.2, 13.8, 13.5],
		"weathercode": [0, 2, 61],
		"precipitation_probability": [0, 10, 65]
	}
}`

func TestGetWeatherForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "47.3619", r.URL.Query().Get("latitude"))
		assert.Equal(t, "3", r.URL.Query().Get("forecast_days"))
		w.Write([]byte(forecastFixture))
	}))
	defer server.Close()
	NewWeatherBaseURL(server.URL)

	forecast, err := GetWeatherForecast(context.Background())
	require.NoError(t, err)
	require.Len(t, forecast.Hourly, 3)

	assert.Equal(t, 14.2, forecast.Hourly[0].Temperature)
	assert.Equal(t, "Clear sky", forecast.Hourly[0].Description)
	assert.Equal(t, "Partly cloudy", forecast.Hourly[1].Description)
	assert.Equal(t, "Slight rain", forecast.Hourly[2].Description)
	assert.Equal(t, int64(65), forecast.Hourly[2].Precipitation)
}

func TestGetWeatherForecastUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	NewWeatherBaseURL(server.URL)

	_, err := GetWeatherForecast(context.Background())
	assert.Error(t, err)
}

func TestWeatherDescription(t *testing.T) {
	assert.Equal(t, "Thunderstorm", WeatherDescription(95))
	assert.Equal(t, "Unknown", WeatherDescription(42))
}

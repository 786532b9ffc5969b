package lib

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"resihub/src/config"
	"time"

	"github.com/tidwall/gjson"
)

var weatherBaseURL = "https://api.open-meteo.com/v1"

func NewWeatherBaseURL(u string) {
	weatherBaseURL = u
}

const weatherCacheTTL = 10 * time.Minute

// WMO weather interpretation codes as displayed by the original dashboard.
var wmoCodes = map[int64]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	95: "Thunderstorm",
}

func WeatherDescription(code int64) string {
	if desc, ok := wmoCodes[code]; ok {
		return desc
	}
	return "Unknown"
}

type HourlyForecast struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	WeatherCode   int64   `json:"weather_code"`
	Description   string  `json:"description"`
	Precipitation int64   `json:"precipitation"`
}

type WeatherForecast struct {
	Hourly []HourlyForecast `json:"hourly"`
}

// GetWeatherForecast fetches the 3-day hourly forecast for the residence.
func GetWeatherForecast(ctx context.Context) (*WeatherForecast, error) {
	params := url.Values{}
	params.Set("latitude", config.WEATHER_LATITUDE)
	params.Set("longitude", config.WEATHER_LONGITUDE)
	params.Set("hourly", "temperature_2m,precipitation_probability,weathercode")
	params.Set("timezone", config.WEATHER_TIMEZONE)
	params.Set("forecast_days", "3")

	cacheKey := "weather:forecast"
	body := []byte(CacheGet(ctx, cacheKey))
	if len(body) == 0 {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, weatherBaseURL+"/forecast?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Printf("[weather] Error fetching forecast: %s\n", err.Error())
			return nil, err
		}
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("weather api returned status %d", res.StatusCode)
		}
		body, err = io.ReadAll(res.Body)
		if err != nil {
			return nil, err
		}
		CacheSet(ctx, cacheKey, string(body), weatherCacheTTL)
	}

	times := gjson.GetBytes(body, "hourly.time").Array()
	temps := gjson.GetBytes(body, "hourly.temperature_2m").Array()
	codes := gjson.GetBytes(body, "hourly.weathercode").Array()
	precip := gjson.GetBytes(body, "hourly.precipitation_probability").Array()

	forecast := WeatherForecast{Hourly: []HourlyForecast{}}
	for i := range times {
		hour := HourlyForecast{Time: times[i].String()}
		if i < len(temps) {
			hour.Temperature = temps[i].Float()
		}
		if i < len(codes) {
			hour.WeatherCode = codes[i].Int()
			hour.Description = WeatherDescription(hour.WeatherCode)
		}
		if i < len(precip) {
			hour.Precipitation = precip[i].Int()
		}
		forecast.Hourly = append(forecast.Hourly, hour)
	}
	return &forecast, nil
}

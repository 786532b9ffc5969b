package lib

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"resihub/src/config"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

var transportBaseURL = config.TRANSPORT_API_BASE_URL

// NewTransportBaseURL points the client at a different endpoint, used by tests.
func NewTransportBaseURL(u string) {
	transportBaseURL = u
}

const stationBoardCacheTTL = 60 * time.Second

// StudentDestinations maps a display label to the stop name on
// transport.opendata.ch for the places residents commute to.
var StudentDestinations = []struct {
	Label   string
	Station string
}{
	{"ETH Zentrum", "Zürich, ETH/Universitätsspital"},
	{"ETH Hönggerberg", "Zürich, ETH Hönggerberg"},
	{"UZH Zentrum", "Zürich, ETH/Universitätsspital"},
	{"UZH Irchel", "Zürich, Irchel"},
	{"ASVZ Fluntern", "Zürich, Fluntern"},
	{"ZHDK", "Zürich, Toni-Areal"},
	{"ZHAW Winterthur", "Winterthur"},
	{"FHNW Brugg", "Brugg AG"},
}

type StationBoardEntry struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Number    string `json:"number"`
	To        string `json:"to"`
	Departure string `json:"departure"`
	Platform  string `json:"platform,omitempty"`
	Delay     int64  `json:"delay,omitempty"`
}

type StationBoard struct {
	Station string              `json:"station"`
	Entries []StationBoardEntry `json:"stationboard"`
}

type ConnectionSection struct {
	Category     string `json:"category,omitempty"`
	Number       string `json:"number,omitempty"`
	To           string `json:"to,omitempty"`
	WalkDuration int64  `json:"walk_duration,omitempty"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
}

type Connection struct {
	From      string              `json:"from"`
	To        string              `json:"to"`
	Departure string              `json:"departure"`
	Arrival   string              `json:"arrival"`
	Duration  string              `json:"duration"`
	Transfers int64               `json:"transfers"`
	Sections  []ConnectionSection `json:"sections,omitempty"`
}

func fetchTransport(ctx context.Context, path string, params url.Values) ([]byte, error) {
	cacheKey := fmt.Sprintf("transport:%s?%s", path, params.Encode())
	if cached := CacheGet(ctx, cacheKey); cached != "" {
		return []byte(cached), nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, transportBaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("[transport] Error fetching %s: %s\n", path, err.Error())
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transport api returned status %d", res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	CacheSet(ctx, cacheKey, string(body), stationBoardCacheTTL)
	return body, nil
}

func GetStationBoard(ctx context.Context, station string, limit int) (*StationBoard, error) {
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{}
	params.Set("station", station)
	params.Set("limit", strconv.Itoa(limit))
	body, err := fetchTransport(ctx, "/stationboard", params)
	if err != nil {
		return nil, err
	}

	board := StationBoard{
		Station: gjson.GetBytes(body, "station.name").String(),
		Entries: []StationBoardEntry{},
	}
	for _, e := range gjson.GetBytes(body, "stationboard").Array() {
		board.Entries = append(board.Entries, StationBoardEntry{
			Name:      e.Get("name").String(),
			Category:  e.Get("category").String(),
			Number:    e.Get("number").String(),
			To:        e.Get("to").String(),
			Departure: e.Get("stop.departure").String(),
			Platform:  e.Get("stop.platform").String(),
			Delay:     e.Get("stop.delay").Int(),
		})
	}
	return &board, nil
}

func GetConnections(ctx context.Context, from, to string) ([]Connection, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	params.Set("limit", "3")
	body, err := fetchTransport(ctx, "/connections", params)
	if err != nil {
		return nil, err
	}

	connections := []Connection{}
	for _, c := range gjson.GetBytes(body, "connections").Array() {
		conn := Connection{
			From:      c.Get("from.station.name").String(),
			To:        c.Get("to.station.name").String(),
			Departure: c.Get("from.departure").String(),
			Arrival:   c.Get("to.arrival").String(),
			Duration:  FormatDuration(c.Get("duration").String()),
			Transfers: c.Get("transfers").Int(),
		}
		for _, s := range c.Get("sections").Array() {
			section := ConnectionSection{
				Departure: s.Get("departure.departure").String(),
				Arrival:   s.Get("arrival.arrival").String(),
			}
			if s.Get("walk").Exists() {
				section.WalkDuration = s.Get("walk.duration").Int()
			} else {
				section.Category = s.Get("journey.category").String()
				section.Number = s.Get("journey.number").String()
				section.To = s.Get("journey.to").String()
			}
			conn.Sections = append(conn.Sections, section)
		}
		connections = append(connections, conn)
	}
	return connections, nil
}

// GetAllStudentConnections looks up connections from the residence stop to
// every preset student destination.
func GetAllStudentConnections(ctx context.Context, from string) (map[string][]Connection, error) {
	if from == "" {
		from = config.TRANSPORT_HOME_STATION
	}
	connections := make(map[string][]Connection, len(StudentDestinations))
	for _, dest := range StudentDestinations {
		conns, err := GetConnections(ctx, from, dest.Station)
		if err != nil {
			return nil, err
		}
		connections[dest.Label] = conns
	}
	return connections, nil
}

// FormatDuration turns the API's "00d00:30:00" duration strings into a
// human form like "30min" or "1h 5min". Unparseable input is passed through.
func FormatDuration(duration string) string {
	t := duration
	if strings.Contains(t, "d") {
		parts := strings.SplitN(t, "d", 2)
		t = parts[1]
	}
	fields := strings.Split(t, ":")
	if len(fields) < 2 {
		return duration
	}
	hours, err := strconv.Atoi(fields[0])
	if err != nil {
		return duration
	}
	mins, err := strconv.Atoi(fields[1])
	if err != nil {
		return duration
	}
	total := hours*60 + mins
	if total < 60 {
		return fmt.Sprintf("%dmin", total)
	}
	return fmt.Sprintf("%dh %dmin", total/60, total%60)
}

// TransportColor maps a journey category to the badge color used by the UI.
func TransportColor(category string) string {
	switch category {
	case "T", "Tram":
		return "red"
	case "B", "Bus":
		return "blue"
	case "S", "IR", "IC":
		return "purple"
	default:
		return "gray"
	}
}

package lib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationBoardFixture = `{
	"station": {"id": "8503078", "name": "Zürich, Balgrist"},
	"stationboard": [
		{
			"name": "T 11 3085",
			"category": "T",
			"number": "11",
			"to": "Zürich, Rehalp",
			"stop": {"departure": "2024-06-01T12:03:00+0200", "platform": "1", "delay": 2}
		},
		{
			"name": "B 77 118",
			"category": "B",
			"number": "77",
			"to": "Fällanden, Zentrum",
			"stop": {"departure": "2024-06-01T12:07:00+0200", "platform": null, "delay": 0}
		}
	]
}`

func TestGetStationBoard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stationboard", r.URL.Path)
		assert.Equal(t, "Balgrist", r.URL.Query().Get("station"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(stationBoardFixture))
	}))
	defer server.Close()
	NewTransportBaseURL(server.URL)

	board, err := GetStationBoard(context.Background(), "Balgrist", 0)
	require.NoError(t, err)
	assert.Equal(t, "Zürich, Balgrist", board.Station)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, "T", board.Entries[0].Category)
	assert.Equal(t, "Zürich, Rehalp", board.Entries[0].To)
	assert.Equal(t, int64(2), board.Entries[0].Delay)
	assert.Equal(t, "77", board.Entries[1].Number)
}

const connectionsFixture = `{
	"connections": [
		{
			"from": {"station": {"name": "Zürich, Balgrist"}, "departure": "2024-06-01T12:03:00+0200"},
			"to": {"station": {"name": "Zürich, ETH/Universitätsspital"}, "arrival": "2024-06-01T12:25:00+0200"},
			"duration": "00d00:22:00",
			"transfers": 1,
			"sections": [
				{
					"journey": {"category": "T", "number": "11", "to": "Zürich, Auzelg"},
					"departure": {"departure": "2024-06-01T12:03:00+0200"},
					"arrival": {"arrival": "2024-06-01T12:15:00+0200"}
				},
				{
					"walk": {"duration": 180},
					"departure": {"departure": "2024-06-01T12:15:00+0200"},
					"arrival": {"arrival": "2024-06-01T12:18:00+0200"}
				}
			]
		}
	]
}`

func TestGetConnections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/connections", r.URL.Path)
		w.Write([]byte(connectionsFixture))
	}))
	defer server.Close()
	NewTransportBaseURL(server.URL)

	connections, err := GetConnections(context.Background(), "Balgrist", "Zürich, ETH/Universitätsspital")
	require.NoError(t, err)
	require.Len(t, connections, 1)

	conn := connections[0]
	assert.Equal(t, "Zürich, Balgrist", conn.From)
	assert.Equal(t, "22min", conn.Duration)
	assert.Equal(t, int64(1), conn.Transfers)
	require.Len(t, conn.Sections, 2)
	assert.Equal(t, "T", conn.Sections[0].Category)
	assert.Equal(t, int64(180), conn.Sections[1].WalkDuration)
}

func TestGetStationBoardUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	NewTransportBaseURL(server.URL)

	_, err := GetStationBoard(context.Background(), "Balgrist", 5)
	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00d00:30:00", "30min"},
		{"00d01:05:00", "1h 5min"},
		{"00:45", "45min"},
		{"02:00", "2h 0min"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), "duration=%q", tt.in)
	}
}

func TestTransportColor(t *testing.T) {
	assert.Equal(t, "red", TransportColor("T"))
	assert.Equal(t, "blue", TransportColor("Bus"))
	assert.Equal(t, "purple", TransportColor("S"))
	assert.Equal(t, "gray", TransportColor("XYZ"))
}

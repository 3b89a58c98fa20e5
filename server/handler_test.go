package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ttrplan/cards"
	"github.com/katalvlaran/ttrplan/config"
	"github.com/katalvlaran/ttrplan/network"
	"github.com/katalvlaran/ttrplan/railmap"
	"github.com/katalvlaran/ttrplan/server"
)

func newServer(t *testing.T, loader *config.Loader) (*httptest.Server, *network.Game) {
	t.Helper()
	g, err := network.NewGame(railmap.MustUSA(), network.WithPointImportance(0.1))
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(server.New(g, loader, logger))
	t.Cleanup(srv.Close)

	return srv, g
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, data
}

type routeBody struct {
	Path        []string             `json:"path"`
	Connections []railmap.Connection `json:"connections"`
	Distance    *float64             `json:"distance"`
	Trains      int                  `json:"trains"`
}

type reportsBody struct {
	Side            string                 `json:"side"`
	AvailableTrains int                    `json:"available_trains"`
	Established     []railmap.Key          `json:"established"`
	CannotPass      []railmap.Key          `json:"cannot_pass"`
	Tickets         []network.TicketReport `json:"tickets"`
}

func TestHealthzAndRequestID(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, body := do(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get(server.RequestIDHeader))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(server.RequestIDHeader, "abc")
	resp2, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, "abc", resp2.Header.Get(server.RequestIDHeader))

	resp, _ = do(t, srv, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoute(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, body := do(t, srv, http.MethodGet, "/v1/route?from=Los+Angeles&to=Denver", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var got routeBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, []string{"Los Angeles", "Phoenix", "Denver"}, got.Path)
	assert.Len(t, got.Connections, 2)
	assert.Equal(t, 8, got.Trains)
	require.NotNil(t, got.Distance)
	assert.InDelta(t, 3-0.1*4+5-0.1*10, *got.Distance, 1e-9)

	tests := []struct {
		query  string
		status int
	}{
		{"?from=Los+Angeles&to=Atlantis", http.StatusNotFound},
		{"?from=Los+Angeles", http.StatusBadRequest},
		{"?side=both&from=Los+Angeles&to=Denver", http.StatusBadRequest},
	}
	for _, tc := range tests {
		resp, _ := do(t, srv, http.MethodGet, "/v1/route"+tc.query, nil)
		assert.Equal(t, tc.status, resp.StatusCode, tc.query)
	}
}

func TestEstablishMirrorsAcrossSides(t *testing.T) {
	srv, _ := newServer(t, nil)
	seg := map[string]any{"side": "self", "from": "Calgary", "to": "Helena"}

	resp, body := do(t, srv, http.MethodPost, "/v1/established", seg)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var self reportsBody
	require.NoError(t, json.Unmarshal(body, &self))
	assert.Equal(t, []railmap.Key{railmap.KeyOf("Calgary", "Helena")}, self.Established)
	assert.Equal(t, network.DefaultTrains-4, self.AvailableTrains)

	resp, body = do(t, srv, http.MethodGet, "/v1/reports?side=opponent", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var opp reportsBody
	require.NoError(t, json.Unmarshal(body, &opp))
	assert.Equal(t, []railmap.Key{railmap.KeyOf("Calgary", "Helena")}, opp.CannotPass)

	resp, _ = do(t, srv, http.MethodPost, "/v1/established", seg)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/v1/established",
		map[string]any{"side": "opponent", "from": "Calgary", "to": "Helena"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodDelete, "/v1/established", seg)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = do(t, srv, http.MethodGet, "/v1/reports?side=opponent", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &opp))
	assert.Empty(t, opp.CannotPass)
}

func TestMutationErrors(t *testing.T) {
	srv, _ := newServer(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"bad json", http.MethodPost, "/v1/established", "{", http.StatusBadRequest},
		{"missing city", http.MethodPost, "/v1/blocked", map[string]any{"from": "Denver"}, http.StatusBadRequest},
		{"single track", http.MethodPost, "/v1/established",
			map[string]any{"from": "Calgary", "to": "Helena", "track": 2}, http.StatusBadRequest},
		{"no segment", http.MethodPost, "/v1/blocked",
			map[string]any{"from": "Calgary", "to": "Miami"}, http.StatusNotFound},
		{"unblock absent", http.MethodDelete, "/v1/blocked",
			map[string]any{"from": "Denver", "to": "Omaha"}, http.StatusConflict},
		{"unknown ticket", http.MethodPost, "/v1/tickets",
			map[string]any{"from": "Denver", "to": "Miami"}, http.StatusNotFound},
		{"drop unselected", http.MethodDelete, "/v1/tickets",
			map[string]any{"from": "Denver", "to": "El Paso"}, http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := do(t, srv, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestTicketsAndReports(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/v1/tickets",
		map[string]any{"side": "opponent", "from": "Denver", "to": "El Paso"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var rep reportsBody
	require.NoError(t, json.Unmarshal(body, &rep))
	assert.Equal(t, "opponent", rep.Side)
	require.Len(t, rep.Tickets, 1)
	assert.True(t, rep.Tickets[0].Reachable)
	assert.Equal(t, 4, rep.Tickets[0].RemainingTrains)
}

func TestVisit(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/v1/visit",
		map[string]any{"cities": []string{"Denver", "Los Angeles", "Chicago"}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var got routeBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, []string{"Los Angeles", "Phoenix", "Denver", "Omaha", "Chicago"}, got.Path)
	require.NotNil(t, got.Distance)

	many := railmap.MustUSA().Cities()[:9]
	resp, _ = do(t, srv, http.MethodPost, "/v1/visit", map[string]any{"cities": many})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestBundle(t *testing.T) {
	srv, _ := newServer(t, nil)

	resp, body := do(t, srv, http.MethodPost, "/v1/bundle",
		map[string]any{"cities": []string{"Calgary", "Salt Lake City"}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var got struct {
		Cities         []string             `json:"cities"`
		Connections    []railmap.Connection `json:"connections"`
		RequiredTrains int                  `json:"required_trains"`
		GainPoints     int                  `json:"gain_points"`
		Affordable     bool                 `json:"affordable"`
		Cards          cards.Summary        `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 7, got.RequiredTrains)
	assert.Equal(t, 11, got.GainPoints)
	assert.True(t, got.Affordable)
	assert.Equal(t, cards.Summary{
		railmap.Gray:   {Min: 4, Max: 4},
		railmap.Purple: {Min: 3, Max: 3},
	}, got.Cards)

	// No cities: the side's ticket cities are used.
	resp, _ = do(t, srv, http.MethodPost, "/v1/tickets", map[string]any{"from": "Calgary", "to": "Salt Lake City"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = do(t, srv, http.MethodPost, "/v1/bundle", map[string]any{"expand": true})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &got))
	assert.LessOrEqual(t, got.RequiredTrains, 7)
}

func TestConfigEndpoints(t *testing.T) {
	srv, _ := newServer(t, nil)
	resp, _ := do(t, srv, http.MethodGet, "/v1/config", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	path := filepath.Join(t.TempDir(), "ttrplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("planner: {point_importance: 0.2}\n"), 0o600))
	loader, err := config.NewLoader(path)
	require.NoError(t, err)
	srv, g := newServer(t, loader)
	loader.OnChange(func(c *config.Config) { _ = g.SetPointImportance(c.Planner.PointImportance) })

	resp, body := do(t, srv, http.MethodGet, "/v1/config", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cfg config.Config
	require.NoError(t, json.Unmarshal(body, &cfg))
	assert.Equal(t, 0.2, cfg.Planner.PointImportance)

	require.NoError(t, os.WriteFile(path, []byte("planner: {point_importance: 0.3}\n"), 0o600))
	resp, _ = do(t, srv, http.MethodPost, "/v1/config/reload", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, g.View(network.Self, func(s *network.State) error {
		assert.Equal(t, 0.3, s.Router().PointImportance())
		return nil
	}))

	require.NoError(t, os.WriteFile(path, []byte("planner: {point_importance: 9}\n"), 0o600))
	resp, _ = do(t, srv, http.MethodPost, "/v1/config/reload", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

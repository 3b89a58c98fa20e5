package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/ttrplan/config"
	"github.com/katalvlaran/ttrplan/network"
	"github.com/katalvlaran/ttrplan/railmap"
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	game   *network.Game
	loader *config.Loader
	logger *slog.Logger
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes. loader may be nil,
// which disables the config endpoints; logger nil means slog.Default().
func New(game *network.Game, loader *config.Loader, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{game: game, loader: loader, logger: logger, mux: http.NewServeMux()}

	h.mux.HandleFunc("GET /v1/map", h.getMap)
	h.mux.HandleFunc("GET /v1/route", h.getRoute)
	h.mux.HandleFunc("POST /v1/visit", h.postVisit)
	h.mux.HandleFunc("POST /v1/bundle", h.postBundle)
	h.mux.HandleFunc("POST /v1/established", h.establish)
	h.mux.HandleFunc("DELETE /v1/established", h.unestablish)
	h.mux.HandleFunc("POST /v1/blocked", h.block)
	h.mux.HandleFunc("DELETE /v1/blocked", h.unblock)
	h.mux.HandleFunc("POST /v1/tickets", h.selectTicket)
	h.mux.HandleFunc("DELETE /v1/tickets", h.dropTicket)
	h.mux.HandleFunc("GET /v1/reports", h.getReports)
	h.mux.HandleFunc("GET /v1/config", h.getConfig)
	h.mux.HandleFunc("POST /v1/config/reload", h.reloadConfig)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return requestID(loggingMiddleware(logger, h.mux))
}

// segmentRequest is the body of the established, blocked and tickets endpoints.
type segmentRequest struct {
	Side  string `json:"side"`
	From  string `json:"from"`
	To    string `json:"to"`
	Track int    `json:"track"`
}

type citiesRequest struct {
	Side   string   `json:"side"`
	Cities []string `json:"cities"`
	Expand bool     `json:"expand"`
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return false
	}

	return true
}

func (h *Handler) segment(w http.ResponseWriter, r *http.Request) (segmentRequest, network.Side, bool) {
	var req segmentRequest
	if !decode(w, r, &req) {
		return req, 0, false
	}
	side, err := network.ParseSide(req.Side)
	if err != nil {
		writeDomainError(w, err)
		return req, 0, false
	}
	if req.From == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return req, 0, false
	}

	return req, side, true
}

// mutate runs a segment-level write and answers with the side's new state.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, op func(segmentRequest, network.Side) error) {
	req, side, ok := h.segment(w, r)
	if !ok {
		return
	}
	if err := op(req, side); err != nil {
		writeDomainError(w, err)
		return
	}
	h.logger.Info("network updated", "path", r.URL.Path, "method", r.Method,
		"side", side.String(), "segment", railmap.KeyOf(req.From, req.To))
	h.writeReports(w, side)
}

// GET /v1/map: cities, segments and ticket catalog.
func (h *Handler) getMap(w http.ResponseWriter, r *http.Request) {
	m := h.game.Map()
	writeJSON(w, http.StatusOK, map[string]any{
		"cities":      m.Cities(),
		"connections": m.Connections(),
		"tickets":     m.Tickets(),
	})
}

// GET /v1/route?side=&from=&to=: shortest path for one side.
func (h *Handler) getRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	side, err := network.ParseSide(q.Get("side"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	var resp routeResponse
	err = h.game.View(side, func(s *network.State) error {
		path, err := s.Router().ShortestPath(from, to)
		if err != nil {
			return err
		}
		route, err := railmap.RouteFromPath(h.game.Map(), path)
		if err != nil {
			return err
		}
		var dist *float64
		if len(path) > 0 {
			d := s.Router().RouteWeight(route)
			dist = &d
		}
		resp = newRouteResponse(path, route, dist)
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST /v1/visit: cheapest path through every listed city.
func (h *Handler) postVisit(w http.ResponseWriter, r *http.Request) {
	var req citiesRequest
	if !decode(w, r, &req) {
		return
	}
	side, err := network.ParseSide(req.Side)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var resp routeResponse
	err = h.game.View(side, func(s *network.State) error {
		path, route, err := s.Router().VisitingRoute(req.Cities)
		if err != nil {
			return err
		}
		var dist *float64
		if len(path) > 0 || len(req.Cities) == 0 {
			d := s.Router().RouteWeight(route)
			dist = &d
		}
		resp = newRouteResponse(path, route, dist)
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST /v1/bundle: cheapest network joining the listed cities (the side's
// ticket cities when none are given), with its card envelope.
func (h *Handler) postBundle(w http.ResponseWriter, r *http.Request) {
	var req citiesRequest
	if !decode(w, r, &req) {
		return
	}
	side, err := network.ParseSide(req.Side)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var resp bundleResponse
	err = h.game.View(side, func(s *network.State) error {
		cities := req.Cities
		if len(cities) == 0 {
			cities = s.TicketCities()
		}
		exp, err := s.Bundle(cities, req.Expand)
		if err != nil {
			return err
		}
		summary, err := s.Cards(exp.Bundle)
		if err != nil {
			return err
		}
		conns := exp.Bundle
		if conns == nil {
			conns = []railmap.Connection{}
		}
		resp = bundleResponse{
			Cities:          exp.Cities,
			Connections:     conns,
			RequiredTrains:  exp.RequiredTrains,
			GainPoints:      exp.GainPoints,
			AvailableTrains: s.AvailableTrains(),
			Affordable:      s.CanAfford(exp.Bundle),
			Cards:           summary,
		}
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) establish(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(req segmentRequest, side network.Side) error {
		track := network.Track(req.Track)
		if track == 0 {
			track = network.Track1
		}
		return h.game.Establish(side, req.From, req.To, track)
	})
}

func (h *Handler) unestablish(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(req segmentRequest, side network.Side) error {
		return h.game.Unestablish(side, req.From, req.To)
	})
}

func (h *Handler) block(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(req segmentRequest, side network.Side) error {
		return h.game.Block(side, req.From, req.To)
	})
}

func (h *Handler) unblock(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(req segmentRequest, side network.Side) error {
		return h.game.Unblock(side, req.From, req.To)
	})
}

func (h *Handler) selectTicket(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(req segmentRequest, side network.Side) error {
		return h.game.SelectTicket(side, req.From, req.To)
	})
}

func (h *Handler) dropTicket(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(req segmentRequest, side network.Side) error {
		return h.game.DropTicket(side, req.From, req.To)
	})
}

// GET /v1/reports?side=: ticket progress and budget.
func (h *Handler) getReports(w http.ResponseWriter, r *http.Request) {
	side, err := network.ParseSide(r.URL.Query().Get("side"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	h.writeReports(w, side)
}

func (h *Handler) writeReports(w http.ResponseWriter, side network.Side) {
	var resp reportsResponse
	err := h.game.View(side, func(s *network.State) error {
		reports, err := s.Reports()
		if err != nil {
			return err
		}
		resp = reportsResponse{
			Side:            side.String(),
			AvailableTrains: s.AvailableTrains(),
			Established:     s.Established(),
			CannotPass:      s.CannotPass(),
			Tickets:         reports,
		}
		return nil
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /v1/config: the active configuration.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	if h.loader == nil {
		writeError(w, http.StatusNotFound, "no config file loaded")
		return
	}
	writeJSON(w, http.StatusOK, h.loader.Config())
}

// POST /v1/config/reload: re-read the config file; OnChange subscribers
// apply it.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	if h.loader == nil {
		writeError(w, http.StatusNotFound, "no config file loaded")
		return
	}
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reloaded":         true,
		"point_importance": cfg.Planner.PointImportance,
	})
}

// GET /healthz: always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

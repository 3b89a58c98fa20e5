package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/ttrplan/apsp"
	"github.com/katalvlaran/ttrplan/cards"
	"github.com/katalvlaran/ttrplan/network"
	"github.com/katalvlaran/ttrplan/railmap"
	"github.com/katalvlaran/ttrplan/router"
)

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusOf maps domain sentinels to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, apsp.ErrUnknownNode),
		errors.Is(err, railmap.ErrConnectionNotFound),
		errors.Is(err, network.ErrUnknownTicket):
		return http.StatusNotFound
	case errors.Is(err, network.ErrConstraintConflict),
		errors.Is(err, network.ErrTrackOwned),
		errors.Is(err, network.ErrNotOwner):
		return http.StatusConflict
	case errors.Is(err, apsp.ErrTooManyWaypoints),
		errors.Is(err, cards.ErrTooManyAlternatives):
		return http.StatusUnprocessableEntity
	case errors.Is(err, network.ErrInvalidSide),
		errors.Is(err, network.ErrInvalidTrack),
		errors.Is(err, router.ErrBadPointImportance),
		errors.Is(err, railmap.ErrInvalidColor):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, statusOf(err), err.Error())
}

// routeResponse describes one path. Distance is null when unreachable.
type routeResponse struct {
	Path        []string             `json:"path"`
	Connections []railmap.Connection `json:"connections"`
	Distance    *float64             `json:"distance"`
	Trains      int                  `json:"trains"`
	Points      int                  `json:"points"`
}

func newRouteResponse(path []string, route railmap.Route, dist *float64) routeResponse {
	if path == nil {
		path = []string{}
	}
	conns := route.Connections()
	if conns == nil {
		conns = []railmap.Connection{}
	}

	return routeResponse{
		Path:        path,
		Connections: conns,
		Distance:    dist,
		Trains:      route.Trains(),
		Points:      route.Points(),
	}
}

type bundleResponse struct {
	Cities          []string             `json:"cities"`
	Connections     []railmap.Connection `json:"connections"`
	RequiredTrains  int                  `json:"required_trains"`
	GainPoints      int                  `json:"gain_points"`
	AvailableTrains int                  `json:"available_trains"`
	Affordable      bool                 `json:"affordable"`
	Cards           cards.Summary        `json:"cards"`
}

type reportsResponse struct {
	Side            string                 `json:"side"`
	AvailableTrains int                    `json:"available_trains"`
	Established     []railmap.Key          `json:"established"`
	CannotPass      []railmap.Key          `json:"cannot_pass"`
	Tickets         []network.TicketReport `json:"tickets"`
}

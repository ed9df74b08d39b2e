// Package server exposes the service over HTTP.
//
//	POST /v1/solve?tiles=true&facing=E   body: text grid
//	POST /v1/cheats?min_saving=N         body: text grid
//	GET  /healthz
//	GET  /metrics
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/internal/service"
)

// MaxGridBytes bounds request bodies.
const MaxGridBytes = 4 << 20

// errBadQuery marks an unparsable query parameter.
var errBadQuery = errors.New("server: bad query parameter")

// Defaults are applied when a query parameter is absent.
type Defaults struct {
	MinSaving int
	Tiles     bool
}

// Server implements the HTTP handlers.
type Server struct {
	svc      *service.Service
	log      *logrus.Logger
	defaults Defaults
}

// NewHandler creates the HTTP handler. gatherer backs /metrics.
func NewHandler(svc *service.Service, gatherer prometheus.Gatherer, log *logrus.Logger, d Defaults) http.Handler {
	s := &Server{svc: svc, log: log, defaults: d}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.Solve)
		r.Post("/cheats", s.Cheats)
	})
	return r
}

// SolveResponse is the body of a successful /v1/solve.
type SolveResponse struct {
	Cost     int64    `json:"cost"`
	Facing   string   `json:"facing"`
	Tiles    [][2]int `json:"tiles,omitempty"`
	Expanded int      `json:"expanded"`
}

// CheatsResponse is the body of a successful /v1/cheats.
type CheatsResponse struct {
	Baseline  int            `json:"baseline"`
	Count     int            `json:"count"`
	MinSaving int            `json:"min_saving"`
	Histogram map[string]int `json:"histogram,omitempty"`
}

// Solve handles POST /v1/solve.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := service.SolveRequest{Tiles: s.defaults.Tiles, Facing: gridmap.East}
	if v := q.Get("tiles"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.fail(w, r, errors.Join(errBadQuery, err))
			return
		}
		req.Tiles = b
	}
	if v := q.Get("facing"); v != "" {
		d, err := gridmap.ParseDirection(v)
		if err != nil {
			s.fail(w, r, errors.Join(errBadQuery, err))
			return
		}
		req.Facing = d
	}

	m, err := s.svc.Load(http.MaxBytesReader(w, r.Body, MaxGridBytes))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := s.svc.Solve(r.Context(), m, req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSolveResponse(res))
}

// Cheats handles POST /v1/cheats.
func (s *Server) Cheats(w http.ResponseWriter, r *http.Request) {
	minSaving := s.defaults.MinSaving
	if v := r.URL.Query().Get("min_saving"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.fail(w, r, errors.Join(errBadQuery, err))
			return
		}
		minSaving = n
	}

	m, err := s.svc.Load(http.MaxBytesReader(w, r.Body, MaxGridBytes))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	rep, err := s.svc.Cheats(r.Context(), m, minSaving)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := CheatsResponse{
		Baseline:  rep.Baseline,
		Count:     rep.Count,
		MinSaving: rep.MinSaving,
	}
	if len(rep.Histogram) > 0 {
		resp.Histogram = make(map[string]int, len(rep.Histogram))
		for saving, n := range rep.Histogram {
			resp.Histogram[strconv.Itoa(saving)] = n
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func toSolveResponse(res *dijkstra.Result) SolveResponse {
	out := SolveResponse{
		Cost:     res.Cost,
		Facing:   res.Facing.String(),
		Expanded: res.Expanded,
	}
	for _, p := range res.Tiles {
		out.Tiles = append(out.Tiles, [2]int{p.X, p.Y})
	}
	return out
}

// Status maps a service error to an HTTP status code.
func Status(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadQuery), service.IsInvalid(err):
		return http.StatusBadRequest
	case service.IsNoPath(err), service.Outcome(err) == metrics.OutcomeBudget:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := Status(err)
	entry := s.log.WithFields(logrus.Fields{
		"path":       r.URL.Path,
		"status":     code,
		"request_id": middleware.GetReqID(r.Context()),
	}).WithError(err)
	if code >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		began := time.Now()
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": ww.Status(),
			"took":   time.Since(began),
		}).Debug("request")
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

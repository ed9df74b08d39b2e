// Package service is the use-case layer shared by the CLI and the HTTP
// server: it loads grids, runs searches with the configured bounds, and
// records logs and metrics for each run.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/cheat"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/metrics"
)

// Service runs searches. It holds no per-search state and is safe for
// concurrent use.
type Service struct {
	log     *logrus.Logger
	metrics *metrics.Metrics
	budget  int
}

// New returns a Service. budget bounds every search (0 = unlimited);
// m may be nil to disable metrics.
func New(log *logrus.Logger, m *metrics.Metrics, budget int) *Service {
	return &Service{log: log, metrics: m, budget: budget}
}

// SolveRequest selects the solver mode.
type SolveRequest struct {
	Tiles  bool
	Facing gridmap.Direction
}

// CheatReport is the outcome of a relaxation search.
type CheatReport struct {
	Baseline  int
	MinSaving int
	Count     int
	Histogram map[int]int
}

// Load parses a text grid.
func (s *Service) Load(r io.Reader) (*gridmap.GridMap, error) {
	m, err := gridmap.Parse(r)
	if err != nil {
		s.log.WithError(err).Warn("grid rejected")
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"width":  m.Width(),
		"height": m.Height(),
		"open":   m.Open(),
	}).Debug("grid loaded")
	return m, nil
}

// Solve runs the oriented search.
func (s *Service) Solve(ctx context.Context, m *gridmap.GridMap, req SolveRequest) (*dijkstra.Result, error) {
	opts := []dijkstra.Option{
		dijkstra.WithContext(ctx),
		dijkstra.WithStartFacing(req.Facing),
		dijkstra.WithStepBudget(s.budget),
	}
	if req.Tiles {
		opts = append(opts, dijkstra.WithTiles())
	}

	began := time.Now()
	var (
		res *dijkstra.Result
		err error
	)
	if m != nil && !m.Connected(m.Start(), m.End()) {
		// No search can bridge separate regions.
		err = fmt.Errorf("%w: start and end lie in different regions", dijkstra.ErrNoPath)
	} else {
		res, err = dijkstra.Solve(m, opts...)
	}
	took := time.Since(began)

	entry := s.log.WithFields(logrus.Fields{
		"kind":  metrics.KindSolve,
		"tiles": req.Tiles,
		"took":  took,
	})
	if err != nil {
		s.metrics.Observe(metrics.KindSolve, Outcome(err), 0, took)
		entry.WithError(err).Info("solve failed")
		return nil, err
	}
	s.metrics.Observe(metrics.KindSolve, metrics.OutcomeOK, res.Expanded, took)
	entry.WithFields(logrus.Fields{
		"cost":     res.Cost,
		"expanded": res.Expanded,
	}).Info("solved")

	return res, nil
}

// Cheats measures the uniform-step baseline and groups the relaxations
// saving at least minSaving steps.
func (s *Service) Cheats(ctx context.Context, m *gridmap.GridMap, minSaving int) (*CheatReport, error) {
	began := time.Now()
	rep, err := s.cheats(ctx, m, minSaving)
	took := time.Since(began)

	entry := s.log.WithFields(logrus.Fields{
		"kind":       metrics.KindCheats,
		"min_saving": minSaving,
		"took":       took,
	})
	if err != nil {
		s.metrics.Observe(metrics.KindCheats, Outcome(err), 0, took)
		entry.WithError(err).Info("cheat search failed")
		return nil, err
	}
	s.metrics.Observe(metrics.KindCheats, metrics.OutcomeOK, 0, took)
	entry.WithFields(logrus.Fields{
		"baseline": rep.Baseline,
		"count":    rep.Count,
	}).Info("cheats counted")

	return rep, nil
}

func (s *Service) cheats(ctx context.Context, m *gridmap.GridMap, minSaving int) (*CheatReport, error) {
	baseline, err := bfs.Steps(m, bfs.WithContext(ctx), bfs.WithStepBudget(s.budget))
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	hist, err := cheat.Histogram(m, baseline, minSaving,
		cheat.WithContext(ctx), cheat.WithStepBudget(s.budget))
	if err != nil {
		return nil, err
	}

	rep := &CheatReport{Baseline: baseline, MinSaving: minSaving, Histogram: hist}
	for _, n := range hist {
		rep.Count += n
	}
	return rep, nil
}

// Outcome classifies a search error into a metrics outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, dijkstra.ErrNoPath), errors.Is(err, bfs.ErrNoPath):
		return metrics.OutcomeNoPath
	case errors.Is(err, dijkstra.ErrBudgetExceeded), errors.Is(err, bfs.ErrBudgetExceeded):
		return metrics.OutcomeBudget
	case IsInvalid(err):
		return metrics.OutcomeInvalid
	}
	return metrics.OutcomeError
}

// IsInvalid reports whether err was caused by bad caller input rather than
// by the search itself.
func IsInvalid(err error) bool {
	for _, target := range []error{
		gridmap.ErrMalformedInput,
		cheat.ErrNegativeSaving,
		cheat.ErrNegativeBaseline,
		dijkstra.ErrBadMaxCost,
		dijkstra.ErrBadBudget,
		dijkstra.ErrBadFacing,
		bfs.ErrOptionViolation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNoPath reports whether err means End is unreachable.
func IsNoPath(err error) bool {
	return errors.Is(err, dijkstra.ErrNoPath) || errors.Is(err, bfs.ErrNoPath)
}

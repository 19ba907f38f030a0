// Package experiment wires a validated config to an engine and a renderer,
// and sweeps quantities for benchmarks.
package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/sortsim/internal/config"
	"github.com/san-kum/sortsim/internal/sorting"
)

type Result struct {
	Algorithm sorting.Algorithm
	Quantity  int
	Count     sorting.Count
	Data      []int
	Elapsed   time.Duration
}

// Runner plays a prepared engine. *viz.Frontend is one; Direct is the
// default for everything else.
type Runner interface {
	Run(e *sorting.Engine) (sorting.Count, error)
}

// Direct runs the engine against a plain renderer on the calling goroutine.
type Direct struct {
	Renderer sorting.Renderer
}

func (d Direct) Run(e *sorting.Engine) (sorting.Count, error) {
	return e.Run(d.Renderer)
}

// New validates cfg and builds an engine for it.
func New(cfg *config.Config) (*sorting.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algo, err := cfg.AlgorithmID()
	if err != nil {
		return nil, err
	}
	return sorting.New(algo, cfg.Quantity, cfg.EngineConfig()), nil
}

// Run validates cfg, builds the engine and plays it through runner. ctx is
// checked before the engine starts; cancellation during the run is the
// runner's job.
func Run(ctx context.Context, cfg *config.Config, runner Runner) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, sorting.ErrCancelled
	}
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	count, err := runner.Run(e)
	if err != nil {
		return nil, err
	}
	return &Result{
		Algorithm: e.Algorithm(),
		Quantity:  e.Len(),
		Count:     count,
		Data:      e.Data(),
		Elapsed:   time.Since(start),
	}, nil
}

// Point is one sample of a sweep. Count is the first run; Stats covers all
// runs at that quantity.
type Point struct {
	Quantity int
	Count    sorting.Count
	Stats    Stats
}

// Sweep sorts fresh permutations of each quantity with no pacing and records
// the operation counts. runs below one is treated as one. Every run gets its
// own seed derived from seed, so a sweep is reproducible when seed is
// non-zero; zero picks a time-based base once.
func Sweep(ctx context.Context, algo sorting.Algorithm, quantities []int, runs int, seed int64) ([]Point, error) {
	if !algo.Valid() {
		return nil, fmt.Errorf("%w: %d", sorting.ErrUnknownAlgorithm, int(algo))
	}
	if runs < 1 {
		runs = 1
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	points := make([]Point, 0, len(quantities))
	for i, q := range quantities {
		if err := ctx.Err(); err != nil {
			return points, sorting.ErrCancelled
		}

		counts, err := NewEnsemble(algo, runs, deriveSeed(seed, i*runs)).Run(ctx, q)
		if err != nil {
			return points, fmt.Errorf("quantity %d: %w", q, err)
		}
		points = append(points, Point{Quantity: q, Count: counts[0], Stats: Summarize(counts)})
	}
	return points, nil
}

// ctxRenderer never waits; it only reports cancellation of ctx.
type ctxRenderer struct{ ctx context.Context }

func (r ctxRenderer) Render(sorting.Snapshot) error { return nil }

func (r ctxRenderer) Sleep(time.Duration) error {
	if r.ctx.Err() != nil {
		return sorting.ErrCancelled
	}
	return nil
}

// Range returns from, from+step, ... up to and including to.
func Range(from, to, step int) []int {
	if step <= 0 || to < from {
		return nil
	}
	out := make([]int, 0, (to-from)/step+1)
	for q := from; q <= to; q += step {
		out = append(out, q)
	}
	return out
}

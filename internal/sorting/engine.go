package sorting

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	DefaultTick       = 100 * time.Millisecond
	DefaultFinalDelay = 5000 * time.Millisecond
)

type Config struct {
	Tick       time.Duration
	FinalDelay time.Duration
	// Seed drives the initial shuffle and Bogo's shuffles. Zero picks a
	// time-based seed.
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Tick:       DefaultTick,
		FinalDelay: DefaultFinalDelay,
	}
}

type sortFunc func(r *run) error

// Engine owns the working sequence for one run of one algorithm.
type Engine struct {
	algorithm Algorithm
	sorter    sortFunc
	data      []int
	count     Count
	cfg       Config
	rng       *rand.Rand
	shuffle   func([]int)
	ran       bool
}

// New builds an engine over a uniformly shuffled permutation of 1..quantity.
// A negative quantity is treated as zero.
func New(algorithm Algorithm, quantity int, cfg Config) *Engine {
	if quantity < 0 {
		quantity = 0
	}
	e := newEngine(algorithm, cfg)
	e.data = make([]int, quantity)
	for i := range e.data {
		e.data[i] = i + 1
	}
	e.shuffle(e.data)
	return e
}

// NewFromData builds an engine over a copy of data, without shuffling it.
func NewFromData(algorithm Algorithm, data []int, cfg Config) *Engine {
	e := newEngine(algorithm, cfg)
	e.data = make([]int, len(data))
	copy(e.data, data)
	return e
}

func newEngine(algorithm Algorithm, cfg Config) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		algorithm: algorithm,
		sorter:    sorterFor(algorithm),
		count:     NewCount(algorithm.CountKind()),
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
	}
	e.shuffle = e.fisherYates
	return e
}

// SetShuffler replaces the shuffle Bogo uses on every iteration. Tests use it
// to make Bogo terminate deterministically.
func (e *Engine) SetShuffler(fn func([]int)) {
	if fn == nil {
		fn = e.fisherYates
	}
	e.shuffle = fn
}

func (e *Engine) fisherYates(data []int) {
	e.rng.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
}

func (e *Engine) Algorithm() Algorithm { return e.algorithm }

func (e *Engine) Len() int { return len(e.data) }

// Data returns a copy of the current sequence.
func (e *Engine) Data() []int {
	out := make([]int, len(e.data))
	copy(out, e.data)
	return out
}

// Count returns the tally so far.
func (e *Engine) Count() Count { return e.count }

// Run ticks the initial state, sorts, ticks the final state with the final
// delay and returns the Count. The first error from r aborts the run and is
// returned unchanged; an engine cannot be run twice.
func (e *Engine) Run(r Renderer) (Count, error) {
	if e.sorter == nil {
		return Count{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, e.algorithm.Name())
	}
	if e.ran {
		return Count{}, fmt.Errorf("sorting: engine already ran")
	}
	e.ran = true
	e.count = NewCount(e.algorithm.CountKind())

	st := &run{engine: e, renderer: r, data: e.data}
	if err := st.emit(e.cfg.Tick); err != nil {
		return Count{}, err
	}
	if len(e.data) >= 2 {
		if err := e.sorter(st); err != nil {
			return Count{}, err
		}
	}
	if err := st.emit(e.cfg.FinalDelay); err != nil {
		return Count{}, err
	}
	return e.count, nil
}

func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		Data:      e.Data(),
		Sorted:    IsSorted(e.data),
		Algorithm: e.algorithm,
		Count:     e.count,
	}
}

// run is the mutable state an algorithm body works on.
type run struct {
	engine   *Engine
	renderer Renderer
	data     []int
}

// step records one significant operation and ticks.
func (r *run) step() error {
	r.engine.count.Increment()
	return r.emit(r.engine.cfg.Tick)
}

func (r *run) emit(d time.Duration) error {
	return Tick(r.renderer, r.engine.snapshot(), d)
}

func (r *run) swap(i, j int) {
	r.data[i], r.data[j] = r.data[j], r.data[i]
}

func sorterFor(a Algorithm) sortFunc {
	switch a {
	case Bogo:
		return bogoSort
	case Bubble:
		return bubbleSort
	case Insertion:
		return insertionSort
	case Merge:
		return mergeSort
	case Quick:
		return quickSort
	}
	return nil
}

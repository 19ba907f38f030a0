package sorting

import (
	"fmt"
	"strings"
)

type Algorithm int

const (
	Bogo Algorithm = iota
	Bubble
	Insertion
	Merge
	Quick
)

var algorithms = []Algorithm{Bogo, Bubble, Insertion, Merge, Quick}

// Algorithms returns every supported algorithm in menu order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// ParseAlgorithm maps a CLI/config name such as "merge" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "sort")
	key = strings.TrimSpace(strings.TrimSuffix(key, "_"))
	for _, a := range algorithms {
		if a.Name() == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

// Name is the lowercase identifier used on the command line and in config files.
func (a Algorithm) Name() string {
	switch a {
	case Bogo:
		return "bogo"
	case Bubble:
		return "bubble"
	case Insertion:
		return "insertion"
	case Merge:
		return "merge"
	case Quick:
		return "quick"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

func (a Algorithm) String() string {
	name := a.Name()
	if !a.Valid() {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Sort"
}

func (a Algorithm) Valid() bool {
	return a >= Bogo && a <= Quick
}

// RGB is the fixed display color of the algorithm.
func (a Algorithm) RGB() (r, g, b uint8) {
	switch a {
	case Bogo:
		return 219, 77, 59
	case Bubble:
		return 59, 126, 219
	case Insertion:
		return 219, 124, 59
	case Merge:
		return 50, 150, 52
	case Quick:
		return 240, 128, 128
	}
	return 255, 255, 255
}

// Hex returns RGB as a "#rrggbb" string.
func (a Algorithm) Hex() string {
	r, g, b := a.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// CountKind is fixed per algorithm and never changes mid-run.
func (a Algorithm) CountKind() CountKind {
	switch a {
	case Bogo:
		return Shuffles
	case Bubble, Insertion:
		return Comparisons
	case Merge:
		return Merges
	case Quick:
		return Iterations
	}
	return Iterations
}

type CountKind int

const (
	Shuffles CountKind = iota
	Comparisons
	Iterations
	Merges
)

func (k CountKind) String() string {
	switch k {
	case Shuffles:
		return "Shuffles"
	case Comparisons:
		return "Comparisons"
	case Iterations:
		return "Iterations"
	case Merges:
		return "Merges"
	}
	return fmt.Sprintf("CountKind(%d)", int(k))
}

// Count tallies significant operations for a single run.
type Count struct {
	Value uint64
	Kind  CountKind
}

func NewCount(kind CountKind) Count {
	return Count{Kind: kind}
}

func (c *Count) Increment() { c.Value++ }

func (c Count) String() string {
	return fmt.Sprintf("%d %s", c.Value, strings.ToLower(c.Kind.String()))
}

// Snapshot is a point-in-time copy of a run, owned by whoever receives it.
type Snapshot struct {
	Data      []int
	Sorted    bool
	Algorithm Algorithm
	Count     Count
}

// IsSorted reports whether data is non-decreasing.
func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			return false
		}
	}
	return true
}

// Max returns the largest value in the snapshot, or 0 when empty.
func (s Snapshot) Max() int {
	m := 0
	for _, v := range s.Data {
		if v > m {
			m = v
		}
	}
	return m
}

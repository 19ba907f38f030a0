package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/sortsim/internal/sorting"
)

func TestEnsembleRun(t *testing.T) {
	counts, err := NewEnsemble(sorting.Quick, 8, 100).Run(context.Background(), 40)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(counts) != 8 {
		t.Fatalf("expected 8 counts, got %d", len(counts))
	}
	for i, c := range counts {
		if c.Kind != sorting.Iterations || c.Value == 0 {
			t.Errorf("run %d: unexpected count %v", i, c)
		}
	}

	again, _ := NewEnsemble(sorting.Quick, 8, 100).Run(context.Background(), 40)
	for i := range counts {
		if counts[i] != again[i] {
			t.Errorf("run %d not reproducible: %v vs %v", i, counts[i], again[i])
		}
	}
}

func TestEnsembleSeedsDiffer(t *testing.T) {
	counts, err := NewEnsemble(sorting.Bubble, 6, 1).Run(context.Background(), 30)
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(counts)
	if s.Min == s.Max {
		t.Errorf("six different permutations of 30 gave identical swap counts %d", s.Min)
	}
}

func TestEnsembleErrors(t *testing.T) {
	if _, err := NewEnsemble(sorting.Merge, 0, 1).Run(context.Background(), 10); err == nil {
		t.Error("expected error for zero runs")
	}
	if _, err := NewEnsemble(sorting.Algorithm(-1), 2, 1).Run(context.Background(), 10); !errors.Is(err, sorting.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewEnsemble(sorting.Merge, 3, 1).Run(ctx, 10); !errors.Is(err, sorting.ErrCancelled) {
		t.Errorf("expected cancellation, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	counts := []sorting.Count{{Value: 4}, {Value: 10}, {Value: 7}}
	s := Summarize(counts)
	if s.Min != 4 || s.Max != 10 || s.Mean != 7 {
		t.Errorf("unexpected stats %+v", s)
	}
	if Summarize(nil) != (Stats{}) {
		t.Error("empty input should give zero stats")
	}
}

func TestSweepWithRuns(t *testing.T) {
	points, err := Sweep(context.Background(), sorting.Insertion, []int{20, 40}, 4, 9)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range points {
		if p.Stats.Min > p.Count.Value || p.Stats.Max < p.Count.Value {
			t.Errorf("q=%d: first run %d outside [%d, %d]", p.Quantity, p.Count.Value, p.Stats.Min, p.Stats.Max)
		}
		if p.Stats.Mean < float64(p.Stats.Min) || p.Stats.Mean > float64(p.Stats.Max) {
			t.Errorf("q=%d: mean %f outside range", p.Quantity, p.Stats.Mean)
		}
	}
}

func TestEnsembleUnseededRunsDiffer(t *testing.T) {
	counts, err := NewEnsemble(sorting.Bubble, 8, 0).Run(context.Background(), 40)
	if err != nil {
		t.Fatal(err)
	}
	if s := Summarize(counts); s.Min == s.Max {
		t.Errorf("eight unseeded runs gave identical counts %d", s.Min)
	}
}

func TestDeriveSeed(t *testing.T) {
	tests := []struct {
		base   int64
		offset int
		want   int64
	}{
		{5, 2, 7},
		{-3, 1, -2},
		{-1, 1, zeroSeed},
		{0, 0, zeroSeed},
	}
	for _, tt := range tests {
		if got := deriveSeed(tt.base, tt.offset); got != tt.want {
			t.Errorf("deriveSeed(%d, %d) = %d, want %d", tt.base, tt.offset, got, tt.want)
		}
	}
}

func TestNegativeSeedStaysReproducible(t *testing.T) {
	a, err := NewEnsemble(sorting.Quick, 2, -1).Run(context.Background(), 30)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := NewEnsemble(sorting.Quick, 2, -1).Run(context.Background(), 30)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("run %d: %v vs %v", i, a[i], b[i])
		}
	}

	first, err := Sweep(context.Background(), sorting.Insertion, []int{15, 30}, 2, -2)
	if err != nil {
		t.Fatal(err)
	}
	again, _ := Sweep(context.Background(), sorting.Insertion, []int{15, 30}, 2, -2)
	for i := range first {
		if first[i] != again[i] {
			t.Errorf("point %d: %+v vs %+v", i, first[i], again[i])
		}
	}
}

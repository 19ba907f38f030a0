// Package store writes benchmark sweeps out as JSON reports.
package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/sortsim/internal/experiment"
	"github.com/san-kum/sortsim/internal/sorting"
)

type ReportPoint struct {
	Quantity int     `json:"quantity"`
	Count    uint64  `json:"count"`
	Min      uint64  `json:"min"`
	Max      uint64  `json:"max"`
	Mean     float64 `json:"mean"`
}

type Report struct {
	Algorithm string        `json:"algorithm"`
	CountKind string        `json:"count_kind"`
	Runs      int           `json:"runs"`
	Seed      int64         `json:"seed"`
	Points    []ReportPoint `json:"points"`
}

func NewReport(algo sorting.Algorithm, runs int, seed int64, points []experiment.Point) Report {
	r := Report{
		Algorithm: algo.Name(),
		CountKind: algo.CountKind().String(),
		Runs:      runs,
		Seed:      seed,
		Points:    make([]ReportPoint, len(points)),
	}
	for i, p := range points {
		r.Points[i] = ReportPoint{
			Quantity: p.Quantity,
			Count:    p.Count.Value,
			Min:      p.Stats.Min,
			Max:      p.Stats.Max,
			Mean:     p.Stats.Mean,
		}
	}
	return r
}

func WriteJSON(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// ExportJSON writes r to path, replacing any existing file.
func ExportJSON(path string, r Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(file, r); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

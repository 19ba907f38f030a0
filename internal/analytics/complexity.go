// Package analytics describes the textbook complexity of each algorithm.
package analytics

import (
	"fmt"

	"github.com/san-kum/sortsim/internal/sorting"
)

type Notation int

const (
	SmallO Notation = iota
	BigO
	Theta
	UpperOmega
	LowerOmega
)

func (n Notation) String() string {
	switch n {
	case SmallO:
		return "o"
	case BigO:
		return "O"
	case Theta:
		return "θ"
	case UpperOmega:
		return "Ω"
	case LowerOmega:
		return "ω"
	}
	return "?"
}

type Rate int

const (
	Constant Rate = iota
	Linear
	Quadratic
	LogN
	NLogN
	NNFact
	Infinite
)

func (r Rate) String() string {
	switch r {
	case Constant:
		return "1"
	case Linear:
		return "n"
	case Quadratic:
		return "n²"
	case LogN:
		return "log n"
	case NLogN:
		return "n log n"
	case NNFact:
		return "n x n!"
	case Infinite:
		return "∞"
	}
	return "?"
}

type Complexity struct {
	Notation Notation
	Rate     Rate
}

func BigOf(r Rate) Complexity { return Complexity{Notation: BigO, Rate: r} }

func (c Complexity) String() string {
	return fmt.Sprintf("%s(%s)", c.Notation, c.Rate)
}

// Analytics is the worst, average and best time complexity plus worst-case
// space for one algorithm.
type Analytics struct {
	Worst      Complexity
	Average    Complexity
	Best       Complexity
	WorstSpace Complexity
}

func (a Analytics) String() string {
	return fmt.Sprintf("Worst time: %s\nAverage time: %s\nBest time: %s\nWorst space: %s\n",
		a.Worst, a.Average, a.Best, a.WorstSpace)
}

// Lines returns label/value pairs in display order.
func (a Analytics) Lines() [][2]string {
	return [][2]string{
		{"Worst time", a.Worst.String()},
		{"Average time", a.Average.String()},
		{"Best time", a.Best.String()},
		{"Worst space", a.WorstSpace.String()},
	}
}

// For returns the descriptor of algo. Unknown algorithms get O(∞) everywhere.
func For(algo sorting.Algorithm) Analytics {
	switch algo {
	case sorting.Bogo:
		return Analytics{
			Worst:      BigOf(Infinite),
			Average:    Complexity{LowerOmega, NNFact},
			Best:       Complexity{UpperOmega, Linear},
			WorstSpace: BigOf(Linear),
		}
	case sorting.Bubble, sorting.Insertion:
		return Analytics{
			Worst:      BigOf(Quadratic),
			Average:    BigOf(Quadratic),
			Best:       BigOf(Linear),
			WorstSpace: BigOf(Linear),
		}
	case sorting.Merge:
		return Analytics{
			Worst:      BigOf(NLogN),
			Average:    Complexity{Theta, NLogN},
			Best:       Complexity{UpperOmega, NLogN},
			WorstSpace: BigOf(Linear),
		}
	case sorting.Quick:
		return Analytics{
			Worst:      BigOf(Quadratic),
			Average:    BigOf(NLogN),
			Best:       BigOf(NLogN),
			WorstSpace: BigOf(Linear),
		}
	}
	inf := BigOf(Infinite)
	return Analytics{Worst: inf, Average: inf, Best: inf, WorstSpace: inf}
}

// Package layout fits a row of bars into a terminal width.
package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultMinWidth = 1
	DefaultMaxWidth = 3
	DefaultMaxGap   = 1
)

// ErrInvalidLimits indicates Limits that can never produce a layout.
var ErrInvalidLimits = errors.New("layout: invalid bar limits")

// Limits bounds the bar width and the starting gap of the search.
type Limits struct {
	MinWidth int `yaml:"min_width"`
	MaxWidth int `yaml:"max_width"`
	MaxGap   int `yaml:"max_gap"`
}

func DefaultLimits() Limits {
	return Limits{
		MinWidth: DefaultMinWidth,
		MaxWidth: DefaultMaxWidth,
		MaxGap:   DefaultMaxGap,
	}
}

func (l Limits) Validate() error {
	if l.MinWidth < 1 {
		return fmt.Errorf("%w: min_width must be at least 1, got %d", ErrInvalidLimits, l.MinWidth)
	}
	if l.MaxWidth < l.MinWidth {
		return fmt.Errorf("%w: max_width %d below min_width %d", ErrInvalidLimits, l.MaxWidth, l.MinWidth)
	}
	if l.MaxGap < 0 {
		return fmt.Errorf("%w: max_gap must be non-negative, got %d", ErrInvalidLimits, l.MaxGap)
	}
	return nil
}

// Settings is the width of every bar and the gap between neighbours.
type Settings struct {
	Width int
	Gap   int
}

// Span is the number of columns quantity bars occupy.
func (s Settings) Span(quantity int) int {
	if quantity <= 0 {
		return 0
	}
	return quantity*s.Width + (quantity-1)*s.Gap
}

// CapacityError reports a quantity that cannot fit even with minimum-width
// bars and no gaps.
type CapacityError struct {
	Quantity int
	Width    int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Terminal cannot render %d bars. Resize terminal or use smaller quantity", e.Quantity)
}

// Calc picks the largest gap, starting at limits.MaxGap, that still leaves
// room for bars of at least limits.MinWidth, and for that gap the widest bar
// the available columns allow, clamped to limits.MaxWidth.
func Calc(terminalWidth, quantity int, limits Limits) (Settings, error) {
	if err := limits.Validate(); err != nil {
		return Settings{}, err
	}
	if quantity < 1 {
		return Settings{}, fmt.Errorf("layout: quantity must be positive, got %d", quantity)
	}

	for gap := limits.MaxGap; gap >= 0; gap-- {
		available := terminalWidth - (quantity-1)*gap
		if available <= 0 {
			continue
		}
		width := available / quantity
		if width > limits.MaxWidth {
			width = limits.MaxWidth
		}
		if width >= limits.MinWidth {
			return Settings{Width: width, Gap: gap}, nil
		}
	}
	return Settings{}, &CapacityError{Quantity: quantity, Width: terminalWidth}
}

// Label returns the decimal text for value when it fits in width columns and
// "" otherwise.
func Label(value, width int) string {
	s := strconv.Itoa(value)
	if len(s) > width {
		return ""
	}
	return s
}

// Height scales value against top onto rows, rounding up and never dropping
// below one row so the smallest bar stays visible.
func Height(value, top, rows int) int {
	if rows <= 0 {
		return 0
	}
	if top <= 0 || value <= 0 {
		return 1
	}
	h := (value*rows + top - 1) / top
	if h < 1 {
		return 1
	}
	if h > rows {
		return rows
	}
	return h
}

// Center pads s with spaces to width, extra padding going right.
func Center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

package components

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDimension is returned by ParseDimension for strings it cannot read.
var ErrInvalidDimension = errors.New("invalid dimension")

// Unit is the unit a Dimension was written in.
type Unit int

const (
	UnitAuto Unit = iota
	UnitCell
	UnitRem
	UnitPixel
	UnitPercent
	UnitViewport
)

// Conversion factors from CSS-like units to terminal cells. A cell is roughly
// half as wide as it is tall, so one rem spans two columns but one row.
const (
	columnsPerRem = 2
	pixelsPerCol  = 8
	pixelsPerRow  = 16
)

// MaxCells bounds any resolved size. maxDimensionValue bounds what
// ParseDimension accepts, keeping conversions well inside int.
const (
	MaxCells          = 1000
	maxDimensionValue = 1e6
)

// Longest suffixes first so "rem" is not read as "em".
var unitSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"cols", UnitCell},
	{"col", UnitCell},
	{"rem", UnitRem},
	{"em", UnitRem},
	{"ch", UnitCell},
	{"px", UnitPixel},
	{"vw", UnitViewport},
	{"vh", UnitViewport},
	{"%", UnitPercent},
}

// Dimension is a size written the way a stylesheet would write it, such as
// "60", "12.5rem" or "80%".
type Dimension struct {
	Value float64
	Unit  Unit
}

// Auto is the dimension that lets the component pick its natural size.
var Auto = Dimension{Unit: UnitAuto}

// IsAuto reports whether the dimension defers to the component's natural size.
func (d Dimension) IsAuto() bool {
	return d.Unit == UnitAuto
}

// ParseDimension reads s. The empty string, "auto" and "initial" are Auto.
func ParseDimension(s string) (Dimension, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	switch raw {
	case "", "auto", "initial":
		return Auto, nil
	}

	unit := UnitCell
	number := raw
	for _, candidate := range unitSuffixes {
		if strings.HasSuffix(raw, candidate.suffix) {
			unit = candidate.unit
			number = strings.TrimSpace(strings.TrimSuffix(raw, candidate.suffix))
			break
		}
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Auto, fmt.Errorf("%w %q: %v", ErrInvalidDimension, s, err)
	}
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return Auto, fmt.Errorf("%w %q: must be a finite, non-negative size", ErrInvalidDimension, s)
	}
	if value > maxDimensionValue {
		return Auto, fmt.Errorf("%w %q: out of range", ErrInvalidDimension, s)
	}

	return Dimension{Value: value, Unit: unit}, nil
}

// Columns converts the dimension to terminal columns. parent is the width
// available for relative units; 0 means unknown. A zero result means "use
// the natural size".
func (d Dimension) Columns(parent int) int {
	switch d.Unit {
	case UnitCell:
		return roundCells(d.Value)
	case UnitRem:
		return roundCells(d.Value * columnsPerRem)
	case UnitPixel:
		return roundCells(d.Value / pixelsPerCol)
	case UnitPercent, UnitViewport:
		return relativeCells(d.Value, parent)
	default:
		return 0
	}
}

// Rows converts the dimension to terminal rows. parent is the height
// available for relative units; 0 means unknown.
func (d Dimension) Rows(parent int) int {
	switch d.Unit {
	case UnitCell, UnitRem:
		return roundCells(d.Value)
	case UnitPixel:
		return roundCells(d.Value / pixelsPerRow)
	case UnitPercent, UnitViewport:
		return relativeCells(d.Value, parent)
	default:
		return 0
	}
}

func (d Dimension) String() string {
	value := strconv.FormatFloat(d.Value, 'f', -1, 64)
	switch d.Unit {
	case UnitCell:
		return value
	case UnitRem:
		return value + "rem"
	case UnitPixel:
		return value + "px"
	case UnitPercent:
		return value + "%"
	case UnitViewport:
		return value + "vw"
	default:
		return "auto"
	}
}

func relativeCells(percent float64, parent int) int {
	if parent <= 0 {
		return 0
	}
	return roundCells(percent * float64(parent) / 100)
}

// Any positive size occupies at least one cell and at most MaxCells.
func roundCells(v float64) int {
	if v <= 0 {
		return 0
	}
	if v >= MaxCells {
		return MaxCells
	}
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}

package layouts

import (
	"github.com/charlievieth/strcase"
)

// Axis is the direction a stack arranges its children in.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

var axisNames = []string{"Horizontal", "Vertical"}

// AxisFromInt converts an integer selector to an Axis.
// Values outside the enum are coerced to AxisVertical.
func AxisFromInt(i int) Axis {
	if i < 0 || i >= len(axisNames) {
		return AxisVertical
	}
	return Axis(i)
}

// ParseAxis returns the axis with the given name, ignoring case.
// Unknown names are coerced to AxisVertical, the same as AxisFromInt.
func ParseAxis(name string) Axis {
	for i, n := range axisNames {
		if strcase.EqualFold(n, name) {
			return Axis(i)
		}
	}
	return AxisVertical
}

func (a Axis) String() string {
	return axisNames[AxisFromInt(int(a))]
}

// AxisNames returns the display names of all axes, in enum order.
func AxisNames() []string {
	return append([]string(nil), axisNames...)
}

// Margin is the inset applied at a container's outer edges.
type Margin struct {
	Left   float32
	Right  float32
	Top    float32
	Bottom float32
}

func NewMargin(left, right, top, bottom float32) Margin {
	return Margin{Left: left, Right: right, Top: top, Bottom: bottom}
}

// UniformMargin returns a Margin with the same inset on all four edges.
func UniformMargin(m float32) Margin {
	return Margin{Left: m, Right: m, Top: m, Bottom: m}
}

// Normalized returns the margin with negative components clamped to zero.
func (m Margin) Normalized() Margin {
	return Margin{
		Left:   nonNegative(m.Left),
		Right:  nonNegative(m.Right),
		Top:    nonNegative(m.Top),
		Bottom: nonNegative(m.Bottom),
	}
}

func nonNegative(f float32) float32 {
	if f < 0 {
		return 0
	}
	return f
}

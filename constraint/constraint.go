package constraint

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Edge is one of the four edges of a canvas object's frame.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Dimension is the direction along which an edge is measured.
type Dimension int

const (
	DimensionHorizontal Dimension = iota
	DimensionVertical
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return fmt.Sprintf("edge(%d)", int(e))
}

// Dimension returns the dimension the edge lies in.
// Left and right are horizontal, top and bottom are vertical.
func (e Edge) Dimension() Dimension {
	if e == EdgeTop || e == EdgeBottom {
		return DimensionVertical
	}
	return DimensionHorizontal
}

// IsLeading reports whether the edge is the smaller coordinate of its dimension.
func (e Edge) IsLeading() bool {
	return e == EdgeLeft || e == EdgeTop
}

// Anchor names an edge of a specific object.
type Anchor struct {
	Object fyne.CanvasObject
	Edge   Edge
}

func (a Anchor) String() string {
	return fmt.Sprintf("%p.%s", a.Object, a.Edge)
}

// Constraint declares the relationship
//
//	Item = To * Multiplier + Constant
//
// between two edges of the same dimension.
type Constraint struct {
	Item       Anchor
	To         Anchor
	Multiplier float32
	Constant   float32
}

// Equal returns a constraint with a multiplier of 1.
func Equal(item, to Anchor, constant float32) Constraint {
	return Constraint{Item: item, To: to, Multiplier: 1, Constant: constant}
}

func (c Constraint) String() string {
	s := fmt.Sprintf("%s == %s", c.Item, c.To)
	if c.Multiplier != 1 {
		s += fmt.Sprintf(" * %g", c.Multiplier)
	}
	switch {
	case c.Constant > 0:
		s += fmt.Sprintf(" + %g", c.Constant)
	case c.Constant < 0:
		s += fmt.Sprintf(" - %g", -c.Constant)
	}
	return s
}

// Validate returns an error if the constraint relates edges
// of different dimensions or has a missing object.
func (c Constraint) Validate() error {
	if c.Item.Object == nil || c.To.Object == nil {
		return fmt.Errorf("constraint %s: nil object", c)
	}
	if c.Item.Edge.Dimension() != c.To.Edge.Dimension() {
		return fmt.Errorf("constraint %s: relates %s edge to %s edge", c, c.Item.Edge, c.To.Edge)
	}
	return nil
}

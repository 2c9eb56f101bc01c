package layouts

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"github.com/snackview/snackview/constraint"
)

var _ fyne.Layout = (*ConstraintLayout)(nil)

// ConstraintLayout resolves the constraints installed in Group into
// frames for the objects of Container.
//
// Container must be the object the layout is attached to. Its edges are
// the fixed points of the solution: left and top are 0, right and bottom
// are the container's width and height. Every other edge is resolved by
// following constraints from edges that are already known. An object with
// a single known edge in a dimension takes its MinSize for that dimension,
// as long as no constraint targets its other edge.
type ConstraintLayout struct {
	Container fyne.CanvasObject
	Group     *constraint.Group
}

func NewConstraintLayout(container fyne.CanvasObject, group *constraint.Group) *ConstraintLayout {
	return &ConstraintLayout{Container: container, Group: group}
}

// edgeValue is an edge position as a function of the container's extent
// in the edge's dimension: offset + scale*extent.
type edgeValue struct {
	offset float32
	scale  float32
}

func (e edgeValue) at(extent float32) float32 {
	return e.offset + e.scale*extent
}

type edgeKey struct {
	obj  fyne.CanvasObject
	edge constraint.Edge
}

type solution map[edgeKey]edgeValue

var edgePairs = [2][2]constraint.Edge{
	{constraint.EdgeLeft, constraint.EdgeRight},
	{constraint.EdgeTop, constraint.EdgeBottom},
}

func (c *ConstraintLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	sol := c.solve(objects)
	if sol == nil {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(
		sol.minExtent(objects, edgePairs[0], func(s fyne.Size) float32 { return s.Width }),
		sol.minExtent(objects, edgePairs[1], func(s fyne.Size) float32 { return s.Height }),
	)
}

func (c *ConstraintLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	sol := c.solve(objects)
	for _, o := range objects {
		min := o.MinSize()
		x, w := sol.frame(o, edgePairs[0], size.Width, min.Width)
		y, h := sol.frame(o, edgePairs[1], size.Height, min.Height)
		o.Move(fyne.NewPos(x, y))
		o.Resize(fyne.NewSize(w, h))
	}
}

func (c *ConstraintLayout) solve(objects []fyne.CanvasObject) solution {
	if c.Group == nil || c.Group.Len() == 0 {
		return nil
	}
	if err := c.Group.Validate(); err != nil {
		log.Printf("ignoring invalid constraint group: %v", err)
		return nil
	}
	if c.Container == nil {
		panic("layouts: constraint layout has no container")
	}

	members := make(map[fyne.CanvasObject]bool, len(objects)+1)
	members[c.Container] = true
	for _, o := range objects {
		members[o] = true
	}

	cs := c.Group.Constraints()
	targeted := make(map[edgeKey]bool, len(cs))
	for _, con := range cs {
		for _, a := range [2]constraint.Anchor{con.Item, con.To} {
			if !members[a.Object] {
				panic(fmt.Sprintf("layouts: constraint %s references an object outside the container", con))
			}
		}
		targeted[edgeKey{con.Item.Object, con.Item.Edge}] = true
	}

	sol := solution{
		{c.Container, constraint.EdgeLeft}:   {0, 0},
		{c.Container, constraint.EdgeTop}:    {0, 0},
		{c.Container, constraint.EdgeRight}:  {0, 1},
		{c.Container, constraint.EdgeBottom}: {0, 1},
	}
	applied := make([]bool, len(cs))
	for {
		progress := false
		for i, con := range cs {
			if applied[i] {
				continue
			}
			from, ok := sol[edgeKey{con.To.Object, con.To.Edge}]
			if !ok {
				continue
			}
			applied[i] = true
			val := edgeValue{offset: from.offset*con.Multiplier + con.Constant, scale: from.scale * con.Multiplier}
			key := edgeKey{con.Item.Object, con.Item.Edge}
			if prev, ok := sol[key]; ok {
				if prev != val {
					log.Printf("ignoring conflicting constraint %s in group %s", con, c.Group.Name())
				}
				continue
			}
			sol[key] = val
			progress = true
		}
		if progress {
			continue
		}

		for _, o := range objects {
			min := o.MinSize()
			for d, pair := range edgePairs {
				extent := min.Width
				if d == 1 {
					extent = min.Height
				}
				lead, trail := edgeKey{o, pair[0]}, edgeKey{o, pair[1]}
				lv, leadOK := sol[lead]
				tv, trailOK := sol[trail]
				switch {
				case leadOK && !trailOK && !targeted[trail]:
					sol[trail] = edgeValue{offset: lv.offset + extent, scale: lv.scale}
					progress = true
				case trailOK && !leadOK && !targeted[lead]:
					sol[lead] = edgeValue{offset: tv.offset - extent, scale: tv.scale}
					progress = true
				}
			}
		}
		if !progress {
			return sol
		}
	}
}

// frame returns the position and size of o in the dimension of pair.
func (s solution) frame(o fyne.CanvasObject, pair [2]constraint.Edge, extent, min float32) (float32, float32) {
	lv, leadOK := s[edgeKey{o, pair[0]}]
	tv, trailOK := s[edgeKey{o, pair[1]}]
	var pos, size float32
	switch {
	case leadOK && trailOK:
		pos = lv.at(extent)
		size = tv.at(extent) - pos
	case leadOK:
		pos, size = lv.at(extent), min
	case trailOK:
		pos, size = tv.at(extent)-min, min
	default:
		pos, size = 0, min
	}
	return pos, fyne.Max(size, 0)
}

// minExtent returns the smallest container extent in the dimension of pair
// for which no object is sized below its MinSize.
func (s solution) minExtent(objects []fyne.CanvasObject, pair [2]constraint.Edge, dim func(fyne.Size) float32) float32 {
	var extent float32
	for _, o := range objects {
		lv, leadOK := s[edgeKey{o, pair[0]}]
		tv, trailOK := s[edgeKey{o, pair[1]}]
		if !trailOK {
			continue
		}
		if tv.scale == 0 {
			extent = fyne.Max(extent, tv.offset)
		}
		if !leadOK {
			continue
		}
		if grow := tv.scale - lv.scale; grow > 0 {
			need := (dim(o.MinSize()) - (tv.offset - lv.offset)) / grow
			extent = fyne.Max(extent, need)
		}
	}
	return extent
}

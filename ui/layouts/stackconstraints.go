package layouts

import (
	"fyne.io/fyne/v2"
	"github.com/snackview/snackview/constraint"
)

// DeriveStackConstraints returns the constraints that stack children
// inside parent along axis.
//
// Every child is stretched across the cross axis, inset by the matching
// margins. Along the main axis the first child's leading edge is pinned to
// the parent and each following child's leading edge is chained to its
// previous sibling's trailing edge plus spacing. Only the last child's
// trailing edge is pinned to the parent, so interior children keep their
// own main-axis size.
//
// An empty children slice produces no constraints. Deriving constraints for
// children without a parent is a programming error and panics.
func DeriveStackConstraints(parent fyne.CanvasObject, children []fyne.CanvasObject, axis Axis, margin Margin, spacing float32) []constraint.Constraint {
	if len(children) == 0 {
		return nil
	}
	if parent == nil {
		panic("layouts: deriving stack constraints without a parent container")
	}

	mainLead, mainTrail := constraint.EdgeLeft, constraint.EdgeRight
	crossLead, crossTrail := constraint.EdgeTop, constraint.EdgeBottom
	mainLeadMargin, mainTrailMargin := margin.Left, margin.Right
	crossLeadMargin, crossTrailMargin := margin.Top, margin.Bottom
	if axis == AxisVertical {
		mainLead, mainTrail, crossLead, crossTrail = crossLead, crossTrail, mainLead, mainTrail
		mainLeadMargin, mainTrailMargin = margin.Top, margin.Bottom
		crossLeadMargin, crossTrailMargin = margin.Left, margin.Right
	}

	cs := make([]constraint.Constraint, 0, 3*len(children)+1)
	for i, child := range children {
		cs = append(cs,
			constraint.Equal(constraint.Anchor{Object: child, Edge: crossLead},
				constraint.Anchor{Object: parent, Edge: crossLead}, crossLeadMargin),
			constraint.Equal(constraint.Anchor{Object: child, Edge: crossTrail},
				constraint.Anchor{Object: parent, Edge: crossTrail}, -crossTrailMargin),
		)

		if i == 0 {
			cs = append(cs, constraint.Equal(constraint.Anchor{Object: child, Edge: mainLead},
				constraint.Anchor{Object: parent, Edge: mainLead}, mainLeadMargin))
		} else {
			cs = append(cs, constraint.Equal(constraint.Anchor{Object: child, Edge: mainLead},
				constraint.Anchor{Object: children[i-1], Edge: mainTrail}, spacing))
		}
	}

	last := children[len(children)-1]
	cs = append(cs, constraint.Equal(constraint.Anchor{Object: last, Edge: mainTrail},
		constraint.Anchor{Object: parent, Edge: mainTrail}, -mainTrailMargin))
	return cs
}

package constraint

import (
	"fmt"

	"github.com/google/uuid"
)

// Group is a named set of constraints that is always replaced as a whole.
// Exactly one set is installed at a time; installing a new set retracts
// the previous one in the same step.
// It is not thread-safe. All access happens on the UI thread.
type Group struct {
	id          uuid.UUID
	name        string
	constraints []Constraint
}

func NewGroup(name string) *Group {
	return &Group{id: uuid.New(), name: name}
}

func (g *Group) ID() uuid.UUID {
	return g.id
}

func (g *Group) Name() string {
	return g.name
}

// Replace installs cs as the group's constraint set and returns
// the number of constraints retracted from the previous set.
// The slice is copied, so callers may reuse it.
func (g *Group) Replace(cs []Constraint) int {
	retracted := len(g.constraints)
	var installed []Constraint
	if len(cs) > 0 {
		installed = make([]Constraint, len(cs))
		copy(installed, cs)
	}
	g.constraints = installed
	return retracted
}

// Constraints returns a copy of the installed set.
func (g *Group) Constraints() []Constraint {
	if len(g.constraints) == 0 {
		return nil
	}
	cs := make([]Constraint, len(g.constraints))
	copy(cs, g.constraints)
	return cs
}

func (g *Group) Len() int {
	return len(g.constraints)
}

// Clear retracts every installed constraint.
func (g *Group) Clear() {
	g.constraints = nil
}

// Validate checks every installed constraint.
func (g *Group) Validate() error {
	for i, c := range g.constraints {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("group %q [%d]: %w", g.name, i, err)
		}
	}
	return nil
}

func (g *Group) String() string {
	return fmt.Sprintf("%s(%s, %d constraints)", g.name, g.id, len(g.constraints))
}

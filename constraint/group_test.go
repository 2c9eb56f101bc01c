package constraint

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sameObject = cmp.Comparer(func(a, b fyne.CanvasObject) bool { return a == b })

func Test_Group_ReplaceRetractsPreviousSet(t *testing.T) {
	parent, a, b := canvas.NewRectangle(nil), canvas.NewRectangle(nil), canvas.NewRectangle(nil)
	g := NewGroup("stack")

	first := []Constraint{
		Equal(Anchor{a, EdgeLeft}, Anchor{parent, EdgeLeft}, 4),
		Equal(Anchor{b, EdgeLeft}, Anchor{a, EdgeRight}, 2),
	}
	assert.Equal(t, 0, g.Replace(first))
	assert.Equal(t, 2, g.Len())

	second := []Constraint{
		Equal(Anchor{b, EdgeTop}, Anchor{parent, EdgeTop}, 0),
	}
	assert.Equal(t, 2, g.Replace(second))
	if diff := cmp.Diff(second, g.Constraints(), sameObject); diff != "" {
		t.Errorf("installed set mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 1, g.Replace(nil))
	assert.Nil(t, g.Constraints())
}

func Test_Group_ReplaceCopiesInput(t *testing.T) {
	parent, a := canvas.NewRectangle(nil), canvas.NewRectangle(nil)
	g := NewGroup("stack")
	cs := []Constraint{Equal(Anchor{a, EdgeTop}, Anchor{parent, EdgeTop}, 1)}
	g.Replace(cs)
	cs[0].Constant = 99

	assert.Equal(t, float32(1), g.Constraints()[0].Constant)

	out := g.Constraints()
	out[0].Constant = 42
	assert.Equal(t, float32(1), g.Constraints()[0].Constant)
}

func Test_Group_IDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewGroup("a").ID(), NewGroup("a").ID())
}

func Test_Group_Validate(t *testing.T) {
	parent, a := canvas.NewRectangle(nil), canvas.NewRectangle(nil)
	g := NewGroup("stack")
	g.Replace([]Constraint{
		Equal(Anchor{a, EdgeLeft}, Anchor{parent, EdgeLeft}, 0),
	})
	require.NoError(t, g.Validate())

	g.Replace([]Constraint{
		Equal(Anchor{a, EdgeLeft}, Anchor{parent, EdgeTop}, 0),
	})
	require.Error(t, g.Validate())

	g.Replace([]Constraint{
		Equal(Anchor{nil, EdgeLeft}, Anchor{parent, EdgeLeft}, 0),
	})
	require.Error(t, g.Validate())

	g.Clear()
	assert.Equal(t, 0, g.Len())
	require.NoError(t, g.Validate())
}

func Test_Edge(t *testing.T) {
	assert.Equal(t, DimensionHorizontal, EdgeLeft.Dimension())
	assert.Equal(t, DimensionHorizontal, EdgeRight.Dimension())
	assert.Equal(t, DimensionVertical, EdgeTop.Dimension())
	assert.Equal(t, DimensionVertical, EdgeBottom.Dimension())
	assert.True(t, EdgeTop.IsLeading())
	assert.False(t, EdgeBottom.IsLeading())
	assert.Equal(t, "bottom", EdgeBottom.String())
}

func Test_Constraint_String(t *testing.T) {
	a, b := canvas.NewRectangle(nil), canvas.NewRectangle(nil)
	c := Equal(Anchor{a, EdgeRight}, Anchor{b, EdgeRight}, -3)
	assert.Contains(t, c.String(), ".right == ")
	assert.Contains(t, c.String(), " - 3")
}

package widgets

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/snackview/snackview/constraint"
	"github.com/snackview/snackview/ui/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swatches(n int, size fyne.Size) []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, n)
	for i := range objs {
		objs[i] = NewSwatch("", color.Black, size)
	}
	return objs
}

func Test_StackContainer_StartsEmpty(t *testing.T) {
	test.NewTempApp(t)
	s := NewHStack()
	assert.Empty(t, s.Constraints())
	assert.Equal(t, layouts.AxisHorizontal, s.Axis())
	assert.Equal(t, layouts.Margin{}, s.Margin())
	assert.Equal(t, fyne.NewSize(0, 0), s.MinSize())

	s.SetSpacing(10)
	s.SetMargin(layouts.UniformMargin(3))
	assert.Empty(t, s.Constraints())
}

func Test_StackContainer_DerivesOnConstruction(t *testing.T) {
	test.NewTempApp(t)
	children := swatches(2, fyne.NewSize(10, 10))
	s := NewStackContainer(layouts.AxisVertical, layouts.NewMargin(1, 2, 3, 4), children...)
	want := layouts.DeriveStackConstraints(s.content, children, layouts.AxisVertical, layouts.NewMargin(1, 2, 3, 4), 0)
	assert.Equal(t, want, s.Constraints())
}

func Test_StackContainer_ReconfigureMatchesFreshDerivation(t *testing.T) {
	test.NewTempApp(t)
	children := swatches(3, fyne.NewSize(20, 20))
	s := NewStackContainer(layouts.AxisHorizontal, layouts.UniformMargin(2), children...)
	s.SetSpacing(4)
	id := s.ConstraintGroupID()

	s.SetSpacing(12)
	fresh := layouts.DeriveStackConstraints(s.content, children, layouts.AxisHorizontal, layouts.UniformMargin(2), 12)
	assert.Equal(t, fresh, s.Constraints())
	assert.Len(t, s.Constraints(), 3*3+1)
	assert.Equal(t, id, s.ConstraintGroupID())

	s.SetAxis(layouts.AxisVertical)
	fresh = layouts.DeriveStackConstraints(s.content, children, layouts.AxisVertical, layouts.UniformMargin(2), 12)
	assert.Equal(t, fresh, s.Constraints())
}

func Test_StackContainer_AxisSelectorCoercion(t *testing.T) {
	test.NewTempApp(t)
	s := NewHStack(swatches(2, fyne.NewSize(5, 5))...)
	for _, sel := range []int{-3, 2, 42} {
		s.SetAxis(layouts.AxisHorizontal)
		s.SetAxisIndex(sel)
		assert.Equal(t, layouts.AxisVertical, s.Axis(), "selector %d", sel)
		assert.Equal(t, 1, s.AxisIndex())
	}
	s.SetAxisIndex(0)
	assert.Equal(t, layouts.AxisHorizontal, s.Axis())
}

func Test_StackContainer_MarginSettersPreserveOtherComponents(t *testing.T) {
	test.NewTempApp(t)
	s := NewStackContainer(layouts.AxisHorizontal, layouts.NewMargin(1, 2, 3, 4))
	s.SetLeftMargin(10)
	assert.Equal(t, layouts.NewMargin(10, 2, 3, 4), s.Margin())
	s.SetRightMargin(20)
	assert.Equal(t, layouts.NewMargin(10, 20, 3, 4), s.Margin())
	s.SetTopMargin(30)
	assert.Equal(t, layouts.NewMargin(10, 20, 30, 4), s.Margin())
	s.SetBottomMargin(40)
	assert.Equal(t, layouts.NewMargin(10, 20, 30, 40), s.Margin())
	assert.Equal(t, float32(10), s.LeftMargin())
	assert.Equal(t, float32(20), s.RightMargin())
	assert.Equal(t, float32(30), s.TopMargin())
	assert.Equal(t, float32(40), s.BottomMargin())

	s.SetTopMargin(-5)
	assert.Equal(t, float32(0), s.TopMargin())
}

func Test_StackContainer_NegativeSpacingClamps(t *testing.T) {
	test.NewTempApp(t)
	s := NewVStack()
	s.SetSpacing(-8)
	assert.Equal(t, float32(0), s.Spacing())
}

func Test_StackContainer_ApplyAndOptions(t *testing.T) {
	test.NewTempApp(t)
	children := swatches(2, fyne.NewSize(10, 10))
	s := NewHStack(children...)
	opts := StackOptions{Axis: 9, Spacing: 6, LeftMargin: 1, RightMargin: 2, TopMargin: 3, BottomMargin: 4}
	s.Apply(opts)

	assert.Equal(t, layouts.AxisVertical, s.Axis())
	assert.Equal(t, float32(6), s.Spacing())
	assert.Equal(t, layouts.NewMargin(1, 2, 3, 4), s.Margin())

	opts.Axis = 1
	assert.Equal(t, opts, s.Options())
	fresh := layouts.DeriveStackConstraints(s.content, children, layouts.AxisVertical, opts.Margin(), 6)
	assert.Equal(t, fresh, s.Constraints())
}

func Test_StackContainer_ChildOperations(t *testing.T) {
	test.NewTempApp(t)
	children := swatches(3, fyne.NewSize(10, 10))
	a, b, c := children[0], children[1], children[2]
	s := NewHStack()

	s.Add(a)
	assert.Len(t, s.Constraints(), 4)
	s.AddAll(b, c)
	assert.Equal(t, children, s.Children())
	assert.Len(t, s.Constraints(), 10)

	s.MoveChildren([]int{2}, 0)
	assert.Equal(t, []fyne.CanvasObject{c, a, b}, s.Children())
	assert.Contains(t, s.Constraints(), constraint.Equal(
		constraint.Anchor{Object: c, Edge: constraint.EdgeLeft},
		constraint.Anchor{Object: s.content, Edge: constraint.EdgeLeft}, 0))

	s.Reverse()
	assert.Equal(t, []fyne.CanvasObject{b, a, c}, s.Children())

	s.Remove(a)
	assert.Equal(t, []fyne.CanvasObject{b, c}, s.Children())
	assert.Len(t, s.Constraints(), 7)
	assert.Contains(t, s.Constraints(), constraint.Equal(
		constraint.Anchor{Object: c, Edge: constraint.EdgeLeft},
		constraint.Anchor{Object: b, Edge: constraint.EdgeRight}, 0))

	s.Clear()
	assert.Empty(t, s.Children())
	assert.Empty(t, s.Constraints())
}

func Test_StackContainer_LaysOutEdgeToEdge(t *testing.T) {
	test.NewTempApp(t)
	const w = 40
	children := swatches(3, fyne.NewSize(w, 30))
	s := NewStackContainer(layouts.AxisHorizontal, layouts.Margin{})
	s.SetSpacing(0)
	s.AddAll(children...)
	s.Resize(fyne.NewSize(3*w, 60))

	require.Len(t, s.Children(), 3)
	assert.Equal(t, float32(0), children[0].Position().X)
	last := children[2]
	assert.Equal(t, float32(3*w), last.Position().X+last.Size().Width)
	var gaps float32
	for i := 1; i < len(children); i++ {
		prev := children[i-1]
		gaps += children[i].Position().X - (prev.Position().X + prev.Size().Width)
	}
	assert.Zero(t, gaps)
	for _, c := range children {
		assert.Equal(t, float32(60), c.Size().Height)
	}
}

func Test_StackContainer_RelayoutIsImmediate(t *testing.T) {
	test.NewTempApp(t)
	children := swatches(2, fyne.NewSize(20, 20))
	s := NewStackContainer(layouts.AxisVertical, layouts.Margin{}, children...)
	s.Resize(fyne.NewSize(100, 100))
	assert.Equal(t, fyne.NewPos(0, 20), children[1].Position())

	s.SetSpacing(10)
	assert.Equal(t, fyne.NewPos(0, 30), children[1].Position())
	assert.Equal(t, fyne.NewSize(100, 70), children[1].Size())

	s.SetLeftMargin(5)
	assert.Equal(t, fyne.NewPos(5, 30), children[1].Position())
	assert.Equal(t, fyne.NewSize(95, 70), children[1].Size())

	s.Reverse()
	assert.Equal(t, fyne.NewPos(5, 0), children[1].Position())
	assert.Equal(t, fyne.NewSize(95, 20), children[1].Size())
}

func Test_StackContainer_MinSize(t *testing.T) {
	test.NewTempApp(t)
	s := NewStackContainer(layouts.AxisHorizontal, layouts.NewMargin(1, 2, 3, 4), swatches(3, fyne.NewSize(40, 30))...)
	s.SetSpacing(5)
	assert.Equal(t, fyne.NewSize(1+3*40+2*5+2, 3+30+4), s.MinSize())
}

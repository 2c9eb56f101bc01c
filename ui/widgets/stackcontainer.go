package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"github.com/snackview/snackview/constraint"
	"github.com/snackview/snackview/sharedutil"
	"github.com/snackview/snackview/ui/layouts"
)

// StackContainer arranges its children in a single row or column.
// Children are stretched across the cross axis and chained edge to edge
// along the main axis, with a uniform margin at the outer edges and a
// uniform spacing between consecutive children.
//
// Every mutating method re-derives the full constraint set, replaces the
// previous set and runs a layout pass before returning.
// It must only be used from the UI thread.
type StackContainer struct {
	widget.BaseWidget

	axis     layouts.Axis
	margin   layouts.Margin
	spacing  float32
	children []fyne.CanvasObject

	group   *constraint.Group
	content *fyne.Container
}

// StackOptions are the live-editable settings of a StackContainer.
type StackOptions struct {
	Axis         int
	Spacing      float32
	LeftMargin   float32
	RightMargin  float32
	TopMargin    float32
	BottomMargin float32
}

func (o StackOptions) Margin() layouts.Margin {
	return layouts.NewMargin(o.LeftMargin, o.RightMargin, o.TopMargin, o.BottomMargin)
}

func NewStackContainer(axis layouts.Axis, margin layouts.Margin, children ...fyne.CanvasObject) *StackContainer {
	s := &StackContainer{
		axis:     layouts.AxisFromInt(int(axis)),
		margin:   margin.Normalized(),
		children: append([]fyne.CanvasObject(nil), children...),
		group:    constraint.NewGroup("stack"),
	}
	l := layouts.NewConstraintLayout(nil, s.group)
	s.content = container.New(l)
	l.Container = s.content
	s.ExtendBaseWidget(s)
	s.layout()
	return s
}

// NewHStack returns a horizontal stack with no margin.
func NewHStack(children ...fyne.CanvasObject) *StackContainer {
	return NewStackContainer(layouts.AxisHorizontal, layouts.Margin{}, children...)
}

// NewVStack returns a vertical stack with no margin.
func NewVStack(children ...fyne.CanvasObject) *StackContainer {
	return NewStackContainer(layouts.AxisVertical, layouts.Margin{}, children...)
}

func (s *StackContainer) Axis() layouts.Axis {
	return s.axis
}

func (s *StackContainer) SetAxis(axis layouts.Axis) {
	s.axis = layouts.AxisFromInt(int(axis))
	s.layout()
}

// AxisIndex returns the axis as its integer selector.
func (s *StackContainer) AxisIndex() int {
	return int(s.axis)
}

// SetAxisIndex sets the axis from an integer selector.
// Out of range selectors set AxisVertical.
func (s *StackContainer) SetAxisIndex(i int) {
	s.SetAxis(layouts.AxisFromInt(i))
}

func (s *StackContainer) Spacing() float32 {
	return s.spacing
}

func (s *StackContainer) SetSpacing(spacing float32) {
	s.spacing = fyne.Max(spacing, 0)
	s.layout()
}

func (s *StackContainer) Margin() layouts.Margin {
	return s.margin
}

func (s *StackContainer) SetMargin(m layouts.Margin) {
	s.margin = m.Normalized()
	s.layout()
}

func (s *StackContainer) LeftMargin() float32 { return s.margin.Left }

func (s *StackContainer) SetLeftMargin(f float32) {
	s.SetMargin(layouts.NewMargin(f, s.margin.Right, s.margin.Top, s.margin.Bottom))
}

func (s *StackContainer) RightMargin() float32 { return s.margin.Right }

func (s *StackContainer) SetRightMargin(f float32) {
	s.SetMargin(layouts.NewMargin(s.margin.Left, f, s.margin.Top, s.margin.Bottom))
}

func (s *StackContainer) TopMargin() float32 { return s.margin.Top }

func (s *StackContainer) SetTopMargin(f float32) {
	s.SetMargin(layouts.NewMargin(s.margin.Left, s.margin.Right, f, s.margin.Bottom))
}

func (s *StackContainer) BottomMargin() float32 { return s.margin.Bottom }

func (s *StackContainer) SetBottomMargin(f float32) {
	s.SetMargin(layouts.NewMargin(s.margin.Left, s.margin.Right, s.margin.Top, f))
}

// Options returns the current live-editable settings.
func (s *StackContainer) Options() StackOptions {
	return StackOptions{
		Axis:         int(s.axis),
		Spacing:      s.spacing,
		LeftMargin:   s.margin.Left,
		RightMargin:  s.margin.Right,
		TopMargin:    s.margin.Top,
		BottomMargin: s.margin.Bottom,
	}
}

// Apply updates every setting at once with a single re-layout.
func (s *StackContainer) Apply(o StackOptions) {
	s.axis = layouts.AxisFromInt(o.Axis)
	s.spacing = fyne.Max(o.Spacing, 0)
	s.margin = o.Margin().Normalized()
	s.layout()
}

// Children returns a copy of the children in stacking order.
func (s *StackContainer) Children() []fyne.CanvasObject {
	return append([]fyne.CanvasObject(nil), s.children...)
}

// AddAll appends objs to the end of the stack.
func (s *StackContainer) AddAll(objs ...fyne.CanvasObject) {
	s.children = append(s.children, objs...)
	s.layout()
}

func (s *StackContainer) Add(obj fyne.CanvasObject) {
	s.children = append(s.children, obj)
	s.layout()
}

// Remove removes every occurrence of obj.
func (s *StackContainer) Remove(obj fyne.CanvasObject) {
	s.children = sharedutil.FilterSlice(s.children, func(c fyne.CanvasObject) bool {
		return c != obj
	})
	s.layout()
}

// MoveChildren moves the children at the indexes in idx to insertIdx,
// keeping their relative order.
// idx must contain only valid indexes and no repeats.
func (s *StackContainer) MoveChildren(idx []int, insertIdx int) {
	s.children = sharedutil.ReorderItems(s.children, idx, insertIdx)
	s.layout()
}

// Reverse reverses the stacking order.
func (s *StackContainer) Reverse() {
	s.children = sharedutil.Reversed(s.children)
	s.layout()
}

func (s *StackContainer) Clear() {
	s.children = nil
	s.layout()
}

// Constraints returns a copy of the active constraint set.
func (s *StackContainer) Constraints() []constraint.Constraint {
	return s.group.Constraints()
}

func (s *StackContainer) ConstraintGroupID() uuid.UUID {
	return s.group.ID()
}

func (s *StackContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// layout derives the constraints for the current configuration, installs
// them in place of the previous set and lays out the children immediately.
func (s *StackContainer) layout() {
	s.content.Objects = s.Children()
	s.group.Replace(layouts.DeriveStackConstraints(s.content, s.content.Objects, s.axis, s.margin, s.spacing))
	s.content.Layout.Layout(s.content.Objects, s.content.Size())
	s.Refresh()
}

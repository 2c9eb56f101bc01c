package dialogs

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"github.com/snackview/snackview/ui/layouts"
	"github.com/snackview/snackview/ui/widgets"
)

// default slider range; a larger incoming value widens its slider
const maxInspectorDistance = 64

// StackInspector edits the live settings of a stack.
// Every user edit is reported through OnChanged with the full set of options.
type StackInspector struct {
	widget.BaseWidget

	OnChanged func(widgets.StackOptions)

	axis    *widget.RadioGroup
	spacing *inspectorSlider
	left    *inspectorSlider
	right   *inspectorSlider
	top     *inspectorSlider
	bottom  *inspectorSlider

	syncing   bool
	container *fyne.Container
}

func NewStackInspector(opts widgets.StackOptions) *StackInspector {
	s := &StackInspector{}
	s.ExtendBaseWidget(s)

	s.axis = widget.NewRadioGroup(layouts.AxisNames(), func(string) { s.onChanged() })
	s.axis.Horizontal = true
	s.axis.Required = true
	s.spacing = s.newSlider()
	s.left = s.newSlider()
	s.right = s.newSlider()
	s.top = s.newSlider()
	s.bottom = s.newSlider()

	title := widget.NewRichTextWithText("Stack")
	ts := title.Segments[0].(*widget.TextSegment)
	ts.Style.TextStyle.Bold = true
	ts.Style.SizeName = theme.SizeNameSubHeadingText

	s.container = container.NewVBox(
		title,
		widget.NewForm(
			widget.NewFormItem("Axis", s.axis),
			widget.NewFormItem("Spacing", s.spacing),
		),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem("Left margin", s.left),
			widget.NewFormItem("Right margin", s.right),
			widget.NewFormItem("Top margin", s.top),
			widget.NewFormItem("Bottom margin", s.bottom),
		),
	)
	s.SetOptions(opts)
	return s
}

// SetOptions updates the displayed values without invoking OnChanged.
func (s *StackInspector) SetOptions(o widgets.StackOptions) {
	s.syncing = true
	defer func() { s.syncing = false }()

	s.axis.SetSelected(layouts.AxisFromInt(o.Axis).String())
	s.spacing.setValue(o.Spacing)
	s.left.setValue(o.LeftMargin)
	s.right.setValue(o.RightMargin)
	s.top.setValue(o.TopMargin)
	s.bottom.setValue(o.BottomMargin)
}

func (s *StackInspector) Options() widgets.StackOptions {
	return widgets.StackOptions{
		Axis:         int(layouts.ParseAxis(s.axis.Selected)),
		Spacing:      float32(s.spacing.Value),
		LeftMargin:   float32(s.left.Value),
		RightMargin:  float32(s.right.Value),
		TopMargin:    float32(s.top.Value),
		BottomMargin: float32(s.bottom.Value),
	}
}

func (s *StackInspector) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.container)
}

func (s *StackInspector) newSlider() *inspectorSlider {
	sl := newInspectorSlider()
	sl.OnChanged = func(float64) {
		sl.UpdateToolTip()
		s.onChanged()
	}
	return sl
}

func (s *StackInspector) onChanged() {
	if s.syncing || s.OnChanged == nil {
		return
	}
	s.OnChanged(s.Options())
}

type inspectorSlider struct {
	ttwidget.Slider
}

func newInspectorSlider() *inspectorSlider {
	s := &inspectorSlider{
		Slider: ttwidget.Slider{
			Slider: widget.Slider{
				Orientation: widget.Horizontal,
				Min:         0,
				Max:         maxInspectorDistance,
				Step:        1,
			},
		},
	}
	s.UpdateToolTip()
	s.ExtendBaseWidget(s)
	return s
}

func (s *inspectorSlider) setValue(f float32) {
	if v := float64(f); v > s.Max {
		s.Max = v
	}
	s.SetValue(float64(f))
	s.UpdateToolTip()
}

func (s *inspectorSlider) UpdateToolTip() {
	s.SetToolTip(fmt.Sprintf("%0.0f", s.Value))
}

// Double tapping resets the value to zero.
func (s *inspectorSlider) DoubleTapped(*fyne.PointEvent) {
	s.SetValue(0)
}

package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Swatch is a colored tile with a centered caption and a fixed
// intrinsic size, used as a sample child of a previewed stack.
type Swatch struct {
	widget.BaseWidget

	Intrinsic fyne.Size

	rect  *canvas.Rectangle
	label *widget.Label
}

func NewSwatch(caption string, fill color.Color, size fyne.Size) *Swatch {
	s := &Swatch{
		Intrinsic: size,
		rect:      canvas.NewRectangle(fill),
		label:     widget.NewLabel(caption),
	}
	s.label.Alignment = fyne.TextAlignCenter
	s.rect.CornerRadius = 4
	s.ExtendBaseWidget(s)
	return s
}

func (s *Swatch) MinSize() fyne.Size {
	return s.Intrinsic
}

func (s *Swatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(s.rect, container.NewCenter(s.label)))
}

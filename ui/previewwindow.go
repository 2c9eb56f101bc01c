package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/snackview/snackview/backend"
	"github.com/snackview/snackview/constraint"
	"github.com/snackview/snackview/sharedutil"
	"github.com/snackview/snackview/ui/dialogs"
	"github.com/snackview/snackview/ui/widgets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

var swatchColors = []color.Color{
	color.NRGBA{R: 0xe5, G: 0x73, B: 0x73, A: 0xff},
	color.NRGBA{R: 0x64, G: 0xb5, B: 0xf6, A: 0xff},
	color.NRGBA{R: 0x81, G: 0xc7, B: 0x84, A: 0xff},
	color.NRGBA{R: 0xff, G: 0xb7, B: 0x4d, A: 0xff},
	color.NRGBA{R: 0xba, G: 0x68, B: 0xc8, A: 0xff},
}

var swatchSize = fyne.NewSize(64, 48)

// PreviewWindow shows a live stack next to an inspector that edits it.
type PreviewWindow struct {
	Window    fyne.Window
	App       *backend.App
	Stack     *widgets.StackContainer
	Inspector *dialogs.StackInspector

	split          *container.Split
	nextSwatch     int
	childrenEdited bool
}

// NewPreviewWindow builds the preview from the session stack settings.
// Only edits made in the window are written back to app.Config.
func NewPreviewWindow(fyneApp fyne.App, displayAppName string, app *backend.App, stack backend.StackConfig, size fyne.Size) *PreviewWindow {
	p := &PreviewWindow{
		App:    app,
		Window: fyneApp.NewWindow(displayAppName),
	}

	cfg := &app.Config.Stack
	p.Stack = widgets.NewHStack()
	p.Stack.Apply(stack.StackOptions())
	for i := 0; i < stack.SampleChildren; i++ {
		p.Stack.Add(p.newSwatch())
	}

	p.Inspector = dialogs.NewStackInspector(p.Stack.Options())
	p.Inspector.OnChanged = func(o widgets.StackOptions) {
		p.Stack.Apply(o)
		cfg.SetStackOptions(o)
	}

	p.split = container.NewHSplit(
		container.NewBorder(p.buildToolbar(), nil, nil, nil, p.Stack),
		container.NewPadded(p.Inspector),
	)
	p.split.Offset = app.Config.Application.InspectorOffset
	p.Window.SetContent(fynetooltip.AddWindowToolTipLayer(p.split, p.Window.Canvas()))
	p.Window.Resize(size)
	return p
}

func (p *PreviewWindow) buildToolbar() fyne.CanvasObject {
	add := ttwidget.NewButtonWithIcon("", theme.ContentAddIcon(), p.addChild)
	add.SetToolTip("Add child")
	remove := ttwidget.NewButtonWithIcon("", theme.ContentRemoveIcon(), p.removeLastChild)
	remove.SetToolTip("Remove last child")
	reverse := ttwidget.NewButtonWithIcon("", theme.ViewRefreshIcon(), p.Stack.Reverse)
	reverse.SetToolTip("Reverse order")
	clearAll := ttwidget.NewButtonWithIcon("", theme.DeleteIcon(), p.clearChildren)
	clearAll.SetToolTip("Remove all children")
	show := ttwidget.NewButtonWithIcon("", theme.InfoIcon(), p.ShowConstraints)
	show.SetToolTip("Show constraints")

	return container.NewHBox(add, remove, reverse, clearAll, show)
}

func (p *PreviewWindow) addChild() {
	p.Stack.Add(p.newSwatch())
	p.childrenEdited = true
}

func (p *PreviewWindow) removeLastChild() {
	if children := p.Stack.Children(); len(children) > 0 {
		p.Stack.Remove(children[len(children)-1])
		p.childrenEdited = true
	}
}

func (p *PreviewWindow) clearChildren() {
	p.Stack.Clear()
	p.nextSwatch = 0
	p.childrenEdited = true
}

func (p *PreviewWindow) newSwatch() *widgets.Swatch {
	n := p.nextSwatch
	p.nextSwatch++
	return widgets.NewSwatch(fmt.Sprintf("%d", n+1), swatchColors[n%len(swatchColors)], swatchSize)
}

// ShowConstraints shows the stack's active constraint set.
func (p *PreviewWindow) ShowConstraints() {
	lines := sharedutil.MapSlice(p.Stack.Constraints(), constraint.Constraint.String)
	text := "No constraints"
	if len(lines) > 0 {
		text = strings.Join(lines, "\n")
	}
	entry := widget.NewMultiLineEntry()
	entry.SetText(text)
	entry.Disable()
	scroll := container.NewScroll(entry)
	scroll.SetMinSize(fyne.NewSize(420, 300))
	title := fmt.Sprintf("Constraint group %s", p.Stack.ConstraintGroupID())
	dialog.ShowCustom(title, "Close", scroll, p.Window)
}

func (p *PreviewWindow) Show() {
	p.Window.Show()
}

func (p *PreviewWindow) Quit() {
	p.SaveWindowSize()
	fyne.CurrentApp().Quit()
}

// SaveWindowSize stores the window size and split offset in the config,
// and the sample child count if the child list was edited.
func (p *PreviewWindow) SaveWindowSize() {
	// round sizes to even to avoid Wayland issues with 2x scaling factor
	p.App.Config.Application.WindowHeight = int(math.RoundToEven(float64(p.Window.Canvas().Size().Height)))
	p.App.Config.Application.WindowWidth = int(math.RoundToEven(float64(p.Window.Canvas().Size().Width)))
	p.App.Config.Application.InspectorOffset = p.split.Offset
	if p.childrenEdited {
		p.App.Config.Stack.SampleChildren = len(p.Stack.Children())
	}
}

package plot

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NavigationToolbar drives a Canvas and shows the pointer readout.
type NavigationToolbar struct {
	canvas    *Canvas
	toolbar   *widget.Toolbar
	locLabel  *widget.Label
	container fyne.CanvasObject
}

func NewNavigationToolbar(c *Canvas) *NavigationToolbar {
	nt := &NavigationToolbar{canvas: c}

	nt.toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRestoreIcon(), c.Home),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomInIcon(), c.ZoomIn),
		widget.NewToolbarAction(theme.ZoomOutIcon(), c.ZoomOut),
	)

	nt.locLabel = widget.NewLabel("")
	nt.locLabel.Alignment = fyne.TextAlignCenter
	nt.locLabel.TextStyle = fyne.TextStyle{Monospace: true}

	nt.container = container.NewHBox(nt.toolbar, nt.locLabel)

	c.OnStatus(nt.SetMessage)
	return nt
}

func (nt *NavigationToolbar) GetContainer() fyne.CanvasObject {
	return nt.container
}

// SetMessage shows a pointer message, reformatted when it parses.
func (nt *NavigationToolbar) SetMessage(msg string) {
	nt.locLabel.SetText(FormatStatus(msg))
}

func (nt *NavigationToolbar) Message() string {
	return nt.locLabel.Text
}

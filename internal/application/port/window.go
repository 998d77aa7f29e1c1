package port

import "github.com/bnema/dockit/internal/domain/entity"

// Window is a top-level window provided by the host toolkit. The docking
// engine drives floating containers through it and never renders itself.
type Window interface {
	Show()
	Hide()
	Raise()
	Close()
	SetTitle(title string)
	SetGeometry(r entity.Rect)
	SetWindowState(state entity.WindowState)

	// SetStaysOnTop toggles the toolkit stay-on-top window flag.
	SetStaysOnTop(on bool)
	// SetKeepAbove sets or clears the X11 _NET_WM_STATE_ABOVE hint.
	SetKeepAbove(on bool)
}

// WindowFactory creates the windows hosting floating containers.
type WindowFactory interface {
	NewFloatingWindow(id int) Window
}

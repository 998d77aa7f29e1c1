package docking

import (
	"os"
	"runtime"
)

// PlatformXCB is the X11 platform name. Floating windows there are kept above
// the main window with the _NET_WM_STATE_ABOVE hint instead of a window flag.
const PlatformXCB = "xcb"

func defaultPlatform() string {
	switch runtime.GOOS {
	case "darwin":
		return "cocoa"
	case "windows":
		return "windows"
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return "wayland"
	}
	return PlatformXCB
}

// isLinuxLike reports whether the platform is a unix desktop other than macOS.
func isLinuxLike() bool {
	return runtime.GOOS != "darwin" && runtime.GOOS != "windows"
}

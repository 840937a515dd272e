//go:build windows

package termwidth

import "golang.org/x/sys/windows"

func detectWidth(fd uintptr) (int, bool) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, false
	}

	w := int(info.Window.Right - info.Window.Left + 1)
	if w <= 0 {
		return 0, false
	}

	return w, true
}

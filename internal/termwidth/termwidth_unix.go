//go:build linux || darwin || freebsd || netbsd || openbsd

package termwidth

import "golang.org/x/sys/unix"

func detectWidth(fd uintptr) (int, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, false
	}

	return int(ws.Col), true
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package theme

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const oscTimeout = 300 * time.Millisecond

// queryDefaultColors asks the terminal for its default foreground and
// background colors via OSC 10/11. Multiplexers and dumb terminals are
// skipped since they swallow or garble the response.
func queryDefaultColors() Palette {
	termValue := os.Getenv("TERM")
	if termValue == "" || strings.HasPrefix(termValue, "screen") ||
		strings.HasPrefix(termValue, "tmux") || strings.HasPrefix(termValue, "dumb") {
		return Palette{}
	}
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return Palette{}
	}
	defer tty.Close()

	fd := int(tty.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return Palette{}
	}
	defer term.Restore(fd, state)

	var palette Palette
	if rgb, ok := queryOSCColor(tty, fd, 10); ok {
		palette.FG, palette.HasFG = rgb, true
	}
	if rgb, ok := queryOSCColor(tty, fd, 11); ok {
		palette.BG, palette.HasBG = rgb, true
	}
	return palette
}

func queryOSCColor(tty *os.File, fd, code int) (RGB, bool) {
	if _, err := fmt.Fprintf(tty, "\x1b]%d;?\x1b\\", code); err != nil {
		return RGB{}, false
	}
	response, ok := readOSCResponse(fd, oscTimeout)
	if !ok {
		return RGB{}, false
	}
	return parseOSCColor(response, code)
}

// readOSCResponse collects one ESC ] ... (BEL | ST) sequence from the
// tty, discarding unrelated input bytes along the way.
func readOSCResponse(fd int, timeout time.Duration) (string, bool) {
	deadline := time.Now().Add(timeout)
	buf := make([]byte, 0, 64)
	inOSC := false
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", false
		}
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, int(remaining/time.Millisecond)+1)
		if err == unix.EINTR {
			continue
		}
		if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			return "", false
		}
		var b [1]byte
		if rn, err := unix.Read(fd, b[:]); err != nil || rn == 0 {
			return "", false
		}
		ch := b[0]
		if !inOSC {
			if ch == 0x1b {
				buf = append(buf[:0], ch)
			} else if ch == ']' && len(buf) == 1 {
				buf = append(buf, ch)
				inOSC = true
			} else {
				buf = buf[:0]
			}
			continue
		}
		buf = append(buf, ch)
		if ch == '\a' || (len(buf) >= 2 && buf[len(buf)-2] == 0x1b && ch == '\\') {
			return string(buf), true
		}
		if len(buf) > 128 {
			return "", false
		}
	}
}

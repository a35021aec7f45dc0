// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clipboard copies dialog results to the system clipboard.
package clipboard

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

var initOnce sync.Once
var initErr error

// WriteText places s on the system clipboard. On WSL the native
// clipboard is unreachable from the Linux side, so clip.exe is used
// instead.
func WriteText(s string) error {
	if runtime.GOOS == "linux" && isWSL() {
		if err := writeWSLClipboard(s); err == nil {
			return nil
		}
	}
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", initErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

func isWSL() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	if data, err := os.ReadFile("/proc/version"); err == nil {
		version := strings.ToLower(string(data))
		if strings.Contains(version, "microsoft") || strings.Contains(version, "wsl") {
			return true
		}
	}
	return os.Getenv("WSL_DISTRO_NAME") != "" || os.Getenv("WSL_INTEROP") != ""
}

func writeWSLClipboard(s string) error {
	cmd := exec.Command("clip.exe")
	cmd.Stdin = strings.NewReader(s)
	return cmd.Run()
}

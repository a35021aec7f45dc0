// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !darwin && !linux && !windows && !js

package pick

// Platforms without a native dialog surface get terminal forms.
func newPlatformBackend() backend {
	return newTermBackend()
}

// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package version

// Version is overridden at build time with
// -ldflags "-X github.com/staranto/stagebuild/internal/version.Version=...".
var Version = "dev"

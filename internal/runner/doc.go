// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package runner executes build stages one at a time through the host shell
// and stops at the first stage that exits non-zero.
package runner

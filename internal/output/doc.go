// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders a resolved build pipeline as text, JSON or YAML.
package output

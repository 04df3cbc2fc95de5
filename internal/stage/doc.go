// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package stage describes the stages of a multi-stage image build and
// composes the build tool command line for each of them.
package stage

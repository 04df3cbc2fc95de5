// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// stagebuild is the main package for the stagebuild command line tool. It
// runs the stages of a multi-stage image build one at a time and exits with
// the status of the first stage that fails.
package main

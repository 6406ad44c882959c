// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color provides ANSI color helpers for console output. Whether color
// is emitted is decided once at startup: the NO_COLOR environment variable
// disables it, FORCE_COLOR enables it, and otherwise it is enabled when
// stdout is a terminal (detected with golang.org/x/term).
package color

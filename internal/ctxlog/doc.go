// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog.Logger in a context.Context and provides a
// pretty console handler for it. The minimum level is read from the
// VIGIL_LOG_LEVEL environment variable ("DEBUG", "INFO", "WARN", "ERROR");
// anything else defaults to INFO, which keeps worker lifecycle messages
// visible in normal operation.
package ctxlog

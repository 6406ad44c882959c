// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package supervise contains the cooperative cancellation core: a monotonic
// process-wide stop signal, a level-triggered wake gate, and a supervisor that
// launches workers, broadcasts wakeups and joins them on shutdown.
//
// All coordination state is owned by the Supervisor and passed to workers at
// construction; nothing is looked up through package globals, so multiple
// independent supervisors can coexist in tests.
package supervise

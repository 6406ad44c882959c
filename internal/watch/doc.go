// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package watch bridges a blocking filesystem watch call into the cooperative
// cancellation model of package supervise.
//
// The watch mechanism itself is an external collaborator behind the Adapter
// interface: an opaque Start that blocks until Stop is called or a fault
// occurs, plus change-event callbacks. Worker owns one Adapter and runs a
// nested unblocker task whose sole job is to guarantee the blocking call
// returns when the stop signal trips: it calls Stop and then manufactures one
// filesystem change (a sentinel file inside the watched directory), because
// some watch mechanisms only notice new activity and a bare Stop is not
// sufficient for every implementation.
package watch

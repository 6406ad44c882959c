// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package watch

// Kind classifies a filesystem change event.
type Kind int

const (
	// KindCreate is a file or directory creation.
	KindCreate Kind = iota
	// KindModify is a content write or truncation.
	KindModify
	// KindDelete is a removal or rename away.
	KindDelete
)

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindModify:
		return "modify"
	case KindDelete:
		return "delete"
	}

	return "unknown"
}

// Event is a single detected filesystem change.
type Event struct {
	Kind Kind
	Path string
}

// Adapter is the external watch mechanism consumed by Worker.
//
// Start blocks the calling goroutine until Stop is called or a fatal error
// occurs, invoking the registered change callback zero or more times while
// it runs. Stop is a best-effort, non-blocking request for Start to return
// and is safe to call from a different goroutine than the one inside Start.
// Callers must not rely on Stop alone being sufficient to unblock Start for
// every implementation; see Worker's escalation.
type Adapter interface {
	Start() error
	Stop() error
	OnChange(fn func(Event))
}

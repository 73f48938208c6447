// File: pool/handoff.go
// Package pool adapts the internal SPSC ring as api.Handoff.
// Author: xitren
// License: Apache-2.0

package pool

import (
	"github.com/xitren/dmaring/api"
	"github.com/xitren/dmaring/internal/concurrency"
)

// HandoffRing[T] implements api.Handoff[T] with power-of-two capacity.
// It carries elements between the single goroutine mutating a
// ring.Buffer and a peer goroutine, which is the external coordination
// the core buffer itself does not provide.
type HandoffRing[T any] struct {
	*concurrency.SPSC[T]
}

// NewHandoffRing creates a handoff ring holding at least capacity items.
func NewHandoffRing[T any](capacity int) *HandoffRing[T] {
	return &HandoffRing[T]{SPSC: concurrency.NewSPSC[T](capacity)}
}

// Ensure compile-time compliance.
var _ api.Handoff[any] = (*HandoffRing[any])(nil)

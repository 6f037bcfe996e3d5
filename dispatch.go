// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// Dispatcher routes operations on tagged handles to the backend that
// owns them. It is stateless beyond the backend references and safe
// for concurrent use.
//
// There is no Dispatcher.NewID: allocation is inherently
// backend-specific (the caller picks which pool to draw from), so
// callers allocate on the concrete backend and receive an
// already-tagged handle.
//
// A handle whose tag matches no configured backend is a programming
// error — typically a handle from an incompatible build leaking
// across the IPC boundary — and every operation fails fast on it by
// panicking with the operation and handle.
type Dispatcher struct {
	sig   *Signal
	uintr Backend
}

// NewDispatcher returns a dispatcher over the compiled-in signal
// backend and an optional external backend in the TagUintr slot.
// Either may be nil; handles tagged for a nil slot fail fast like an
// unknown tag.
func NewDispatcher(sig *Signal, uintr Backend) *Dispatcher {
	if uintr != nil && uintr.Tag() != TagUintr {
		panic(fmt.Sprintf("wake: NewDispatcher: backend tag 0x%02x in the TagUintr slot", uint8(uintr.Tag())))
	}
	return &Dispatcher{sig: sig, uintr: uintr}
}

// Wait suspends the caller until one wakeup is delivered on h.
func (d *Dispatcher) Wait(h Handle) {
	d.backend("Wait", h).Wait(h)
}

// TryWait consumes one pending wakeup on h without suspending,
// returning iox.ErrWouldBlock if none is pending.
func (d *Dispatcher) TryWait(h Handle) error {
	return d.backend("TryWait", h).TryWait(h)
}

// Release returns h's slot to its backend's free pool.
func (d *Dispatcher) Release(h Handle) {
	d.backend("Release", h).Release(h)
}

// Notify delivers one wakeup to the peer process's source h.
func (d *Dispatcher) Notify(pid int, h Handle) {
	d.backend("Notify", h).Notify(pid, h)
}

// backend resolves h's owning backend or panics.
func (d *Dispatcher) backend(op string, h Handle) Backend {
	switch h.Tag() {
	case TagSignal:
		if d.sig != nil {
			return d.sig
		}
	case TagUintr:
		if d.uintr != nil {
			return d.uintr
		}
	}
	panic(fmt.Sprintf("wake: %s: no backend for handle %s", op, h))
}

// NewIDWait allocates from b, blocking with adaptive backoff while
// the pool is exhausted. It returns once another party releases a
// slot; callers that cannot tolerate an unbounded stall should call
// NewID and handle iox.ErrWouldBlock themselves.
func NewIDWait(b Backend) Handle {
	var bo iox.Backoff
	for {
		h, err := b.NewID()
		if err == nil {
			return h
		}
		bo.Wait()
	}
}

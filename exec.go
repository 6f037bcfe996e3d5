// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// wakeHandler implements kont.Handler for wakeup effects.
// Waits on iox.ErrWouldBlock, converting non-blocking dispatch into
// blocking evaluation for Exec/ExecExpr.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type wakeHandler[R any] struct {
	d *Dispatcher
}

// Dispatch implements kont.Handler via structural interface assertion.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff.
func (h wakeHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	wop, ok := op.(wakeDispatcher)
	if !ok {
		panic("wake: unhandled effect in wakeHandler")
	}
	return dispatchWait(h.d, wop), true
}

// dispatchWait blocks until DispatchWake succeeds, backing off on
// iox.ErrWouldBlock with iox.Backoff (wakeup readiness waiting).
func dispatchWait(d *Dispatcher, wop wakeDispatcher) kont.Resumed {
	var bo iox.Backoff
	for {
		v, err := wop.DispatchWake(d)
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Exec runs a Cont-world wakeup protocol against the dispatcher.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func Exec[R any](d *Dispatcher, protocol kont.Eff[R]) R {
	h := wakeHandler[R]{d: d}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world wakeup protocol against the dispatcher.
// Blocks on iox.ErrWouldBlock via adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func ExecExpr[R any](d *Dispatcher, protocol kont.Expr[R]) R {
	h := wakeHandler[R]{d: d}
	return kont.HandleExpr(protocol, h)
}

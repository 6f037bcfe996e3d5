// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a wakeup protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended wakeup operation on the dispatcher.
// DispatchWake is non-blocking: returns iox.ErrWouldBlock when no
// wakeup is pending on the operation's handle.
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On iox.ErrWouldBlock, the suspension is unconsumed and may be retried
// after a peer notifies.
func Advance[R any](d *Dispatcher, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	wop, ok := susp.Op().(wakeDispatcher)
	if !ok {
		panic("wake: unhandled effect in Advance")
	}
	v, err := wop.DispatchWake(d)
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}

// Reify converts a Cont-world wakeup protocol to Expr-world.
// The resulting Expr can be evaluated with ExecExpr or stepped with
// Step and Advance.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world wakeup protocol to Cont-world.
// The resulting Eff can be evaluated with Exec.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}

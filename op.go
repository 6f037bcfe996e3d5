// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"code.hybscloud.com/kont"
)

// WaitOn is the effect operation for awaiting one wakeup on a handle.
// Perform(WaitOn{Handle: h}) suspends the protocol until a wakeup is
// consumable on h. It resumes with no payload: a wakeup is a pure
// doorbell.
type WaitOn struct {
	kont.Phantom[struct{}]
	Handle Handle
}

// wakeDispatcher is the structural interface for wakeup operations.
// DispatchWake is non-blocking: it returns iox.ErrWouldBlock when no
// wakeup is pending on the operation's handle.
type wakeDispatcher interface {
	DispatchWake(d *Dispatcher) (kont.Resumed, error)
}

// DispatchWake handles WaitOn against the dispatcher.
// Non-blocking: returns iox.ErrWouldBlock if no wakeup is pending.
func (w WaitOn) DispatchWake(d *Dispatcher) (kont.Resumed, error) {
	if err := d.TryWait(w.Handle); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// WaitThen awaits one wakeup on h and then continues with next.
// Fuses Perform(WaitOn{Handle: h}) + Then.
func WaitThen[B any](h Handle, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(WaitOn{Handle: h}), next)
}

// WaitDone awaits one wakeup on h and returns a.
// Fuses Perform(WaitOn{Handle: h}) + Then + Pure.
func WaitDone[A any](h Handle, a A) kont.Eff[A] {
	return kont.Then(kont.Perform(WaitOn{Handle: h}), kont.Pure(a))
}

// exprReturnFrame is the pre-allocated terminal frame for Expr-world
// construction, avoiding a per-call boxing of ReturnFrame{}.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value,
// consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprWaitThen awaits one wakeup on h and then continues with next.
// Fuses ExprPerform(WaitOn{Handle: h}) + ExprThen.
func ExprWaitThen[B any](h Handle, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = WaitOn{Handle: h}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprWaitDone awaits one wakeup on h and returns a.
// Fuses ExprPerform(WaitOn{Handle: h}) + ExprThen + ExprReturn.
func ExprWaitDone[A any](h Handle, a A) kont.Expr[A] {
	return ExprWaitThen(h, kont.ExprReturn(a))
}

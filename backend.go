// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

// Backend is the contract every wakeup delivery mechanism implements.
// The Signal backend is compiled in; a user-level-interrupt backend
// satisfies the same contract over its own handle namespace and is
// consumed through this interface only.
//
// Expected failures (pool exhausted, no wakeup pending) are reported
// as iox.ErrWouldBlock. Contract violations — a handle outside the
// backend's namespace, releasing a free slot, an unreachable notify
// target — panic: they indicate a broken invariant in the caller,
// never a transient condition.
type Backend interface {
	// Tag returns the tag this backend stamps on its handles.
	Tag() Tag

	// NewID allocates a fresh wakeup source and returns its tagged
	// handle. The source receives and buffers notifications from the
	// moment of allocation, so wakeups sent before the first Wait are
	// not lost. Returns iox.ErrWouldBlock when the pool is exhausted.
	NewID() (Handle, error)

	// Wait suspends the caller until one wakeup is delivered on h.
	// One wakeup is consumed per call; wakeups queue in delivery order.
	Wait(h Handle)

	// TryWait consumes one pending wakeup on h without suspending.
	// Returns iox.ErrWouldBlock if none is pending.
	TryWait(h Handle) error

	// Release returns h's slot to the free pool. The caller must
	// ensure no Wait on h is still in flight, and must not use h
	// again until NewID reissues it; neither is detected in
	// production builds.
	Release(h Handle)

	// Notify delivers one wakeup to the peer process's source h.
	// Non-suspending. Panics if the peer is unreachable.
	Notify(pid int, h Handle)
}

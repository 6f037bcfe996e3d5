// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wake provides an asynchronous cross-process wakeup primitive:
// one process allocates a waitable source, hands its 64-bit handle to a
// peer out of band, and awaits it; the peer rings it by process id.
// A wakeup carries no payload — it is a doorbell for a higher IPC layer,
// not a message transport.
//
// # Architecture
//
//   - Handles: [Handle] packs an 8-bit backend [Tag] with a 56-bit
//     backend-local id. The raw uint64 is the wire contract between
//     cooperating processes.
//   - Backends: [Signal] delivers over Linux real-time signals (which
//     queue per occurrence rather than coalesce); [Loopback] delivers
//     in-process over bounded lock-free SPSC mailboxes via
//     [code.hybscloud.com/lfq] and stands in for an external
//     user-level-interrupt backend. Both implement [Backend].
//   - Dispatch: [Dispatcher] decodes a handle's tag and forwards
//     Wait/TryWait/Release/Notify to the owning backend, panicking on
//     tags with no compiled-in backend. Allocation is backend-specific
//     and never dispatched.
//   - Allocation: lock-free over a fixed slot set — an atomic cursor
//     masked to a power-of-two probe index, claims by atomic
//     test-and-set, approximate round-robin reuse. Exhaustion returns
//     [code.hybscloud.com/iox.ErrWouldBlock].
//   - Effects: [WaitOn] exposes waiting as an operation on
//     [code.hybscloud.com/kont], with blocking evaluation ([Exec]) and
//     non-blocking stepping ([Step], [Advance]) mirroring the sess
//     conventions.
//
// # Contract
//
//   - Wait is the one suspension point; NewID, TryWait, Release, and
//     Notify never suspend and need no external locking.
//   - There is no cancellation and no timeout; bounded waits are the
//     caller's concern.
//   - Releasing a handle while a Wait on it is in flight, or waiting on
//     a released handle, is undefined behavior. Race builds assert the
//     former; production builds pay nothing.
//   - Unknown tags, out-of-range ids, double releases, and failed
//     signal delivery panic: they are caller bugs, not runtime
//     conditions.
//
// # Example
//
//	sig := wake.NewSignal()
//	d := wake.NewDispatcher(sig, nil)
//	h, err := sig.NewID()
//	if err != nil {
//		// pool exhausted, retry after a release
//	}
//	// ... send h's raw value to the peer out of band ...
//	d.Wait(h)                          // parked until the peer rings
//	d.Notify(peerPid, peerHandle)      // ring the peer's doorbell
//	d.Release(h)
//
// The signal backend assumes Linux; see the range constants in
// rtsig.go for the exact platform contract.
package wake

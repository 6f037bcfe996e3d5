// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"fmt"
	"os"
	"os/signal"

	"code.hybscloud.com/iox"
	"golang.org/x/sys/unix"
)

// streamCapacity is the buffer of the per-slot signal stream.
// Real-time signals queue in the kernel and the runtime forwards each
// occurrence to the channel; occurrences beyond an undrained buffer
// of this depth are dropped, so it is sized well past any plausible
// doorbell burst.
const streamCapacity = 64

// sigSlot carries the live signal stream of one occupied slot.
// The field is owned exclusively by the claimant between claim and
// reclaim; it reaches waiters through whatever synchronization hands
// them the handle.
type sigSlot struct {
	ch chan os.Signal
}

// Signal delivers wakeups over POSIX real-time signals.
// One slot per usable signal number; the handle's inner id is the raw
// signal number, so it can target the matching slot in any
// cooperating process. All methods are safe for concurrent use;
// only Wait suspends.
type Signal struct {
	nums  []int
	index map[uint64]int
	slots []sigSlot
	pool  pool
}

// NewSignal returns a signal backend over the platform's usable
// real-time signal range.
func NewSignal() *Signal {
	return NewSignalSet(rtSignals()...)
}

// NewSignalSet returns a signal backend over an explicit set of
// signal numbers. Intended for tests and deployments that partition
// the real-time range between subsystems; nums must be non-empty and
// distinct.
func NewSignalSet(nums ...int) *Signal {
	if len(nums) == 0 {
		panic("wake: NewSignalSet: empty signal set")
	}
	s := &Signal{
		nums:  make([]int, len(nums)),
		index: make(map[uint64]int, len(nums)),
		slots: make([]sigSlot, len(nums)),
	}
	copy(s.nums, nums)
	for i, n := range s.nums {
		if n <= 0 {
			panic(fmt.Sprintf("wake: NewSignalSet: invalid signal number %d", n))
		}
		if _, dup := s.index[uint64(n)]; dup {
			panic(fmt.Sprintf("wake: NewSignalSet: duplicate signal number %d", n))
		}
		s.index[uint64(n)] = i
	}
	s.pool.init(len(nums))
	return s
}

// Tag implements Backend.
func (s *Signal) Tag() Tag {
	return TagSignal
}

// NewID claims a free signal number and returns its tagged handle.
// The slot's signal stream is bound before the handle is returned, so
// a peer that learns the handle and notifies immediately cannot race
// ahead of the first Wait. Returns iox.ErrWouldBlock when every
// signal number is occupied.
func (s *Signal) NewID() (Handle, error) {
	i, err := s.pool.claim()
	if err != nil {
		return 0, err
	}
	ch := make(chan os.Signal, streamCapacity)
	signal.Notify(ch, unix.Signal(s.nums[i]))
	s.slots[i].ch = ch
	return Compose(TagSignal, uint64(s.nums[i])), nil
}

// Wait implements Backend. It suspends the calling goroutine until
// the slot's signal is next delivered to this process. This is the
// module's one suspension point; there is no cancellation and no
// timeout — callers needing bounds race Wait against a timer at a
// higher layer.
func (s *Signal) Wait(h Handle) {
	i := s.slot("Wait", h)
	p := &s.pool
	p.enterWait(i)
	<-s.slots[i].ch
	p.leaveWait(i)
}

// TryWait implements Backend. It consumes one buffered signal
// occurrence if present and returns iox.ErrWouldBlock otherwise.
func (s *Signal) TryWait(h Handle) error {
	i := s.slot("TryWait", h)
	p := &s.pool
	p.enterWait(i)
	defer p.leaveWait(i)
	select {
	case <-s.slots[i].ch:
		return nil
	default:
		return iox.ErrWouldBlock
	}
}

// Release implements Backend. The stream is unbound and discarded
// while the slot is still held, so buffered occurrences never leak
// into the slot's next occupancy; the occupancy flag is cleared last.
// Releasing a free slot panics.
func (s *Signal) Release(h Handle) {
	i := s.slot("Release", h)
	s.pool.assertIdle(i, h)
	ch := s.slots[i].ch
	s.slots[i].ch = nil
	if ch != nil {
		signal.Stop(ch)
	}
	if !s.pool.reclaim(i) {
		panic("wake: Release: slot not occupied for " + h.String())
	}
}

// Notify implements Backend. It delivers the handle's signal to the
// target process. Delivery failure — no such process, permission
// denied — panics: target liveness is guaranteed by the enclosing
// IPC layer, so a failing kill means that guarantee is already
// broken.
func (s *Signal) Notify(pid int, h Handle) {
	i := s.slot("Notify", h)
	if err := unix.Kill(pid, unix.Signal(s.nums[i])); err != nil {
		panic(fmt.Sprintf("wake: Notify: kill pid %d with %s: %v", pid, h, err))
	}
}

// slot maps h to its slot index, panicking on any handle outside this
// backend's namespace.
func (s *Signal) slot(op string, h Handle) int {
	if h.Tag() == TagSignal {
		if i, ok := s.index[h.Inner()]; ok {
			return i
		}
	}
	panic(fmt.Sprintf("wake: %s: not a pool signal: %s", op, h))
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"fmt"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"golang.org/x/sys/unix"
)

// mailCapacity is the depth of a loopback slot's wakeup mailbox.
// Matches streamCapacity so both in-tree backends tolerate the same
// notify burst ahead of a draining waiter.
const mailCapacity = 64

// wakeToken is the pre-allocated mailbox element; enqueuing a pointer
// to it avoids a per-notify heap escape.
var wakeToken struct{}

// lbSlot is one loopback wakeup source. The mailbox is a bounded
// lock-free SPSC queue: the doorbell contract has one notifier and
// one waiter per handle, which is exactly the queue's producer and
// consumer.
type lbSlot struct {
	mail lfq.SPSC[struct{}]
}

// Loopback delivers wakeups inside a single process over lock-free
// mailboxes. It implements the same contract as the signal backend
// and stands in for an external backend — typically under TagUintr —
// where hardware user-level interrupts are unavailable or where tests
// need a second routable backend.
type Loopback struct {
	tag   Tag
	pid   int
	slots []lbSlot
	pool  pool
}

// NewLoopback returns a loopback backend stamping handles with tag
// and holding size slots.
func NewLoopback(tag Tag, size int) *Loopback {
	if size <= 0 {
		panic("wake: NewLoopback: non-positive pool size")
	}
	l := &Loopback{
		tag:   tag,
		pid:   unix.Getpid(),
		slots: make([]lbSlot, size),
	}
	for i := range l.slots {
		l.slots[i].mail.Init(mailCapacity)
	}
	l.pool.init(size)
	return l
}

// Tag implements Backend.
func (l *Loopback) Tag() Tag {
	return l.tag
}

// NewID implements Backend. The slot's mailbox is drained of any
// occurrences left over from a prior occupancy before the handle is
// returned. Returns iox.ErrWouldBlock when every slot is occupied.
func (l *Loopback) NewID() (Handle, error) {
	i, err := l.pool.claim()
	if err != nil {
		return 0, err
	}
	for {
		if _, err := l.slots[i].mail.Dequeue(); err != nil {
			break
		}
	}
	return Compose(l.tag, uint64(i)), nil
}

// Wait implements Backend. Blocks by polling the mailbox with
// adaptive backoff until one wakeup arrives.
func (l *Loopback) Wait(h Handle) {
	i := l.slot("Wait", h)
	p := &l.pool
	p.enterWait(i)
	var bo iox.Backoff
	for {
		if _, err := l.slots[i].mail.Dequeue(); err == nil {
			p.leaveWait(i)
			return
		}
		bo.Wait()
	}
}

// TryWait implements Backend.
func (l *Loopback) TryWait(h Handle) error {
	i := l.slot("TryWait", h)
	p := &l.pool
	p.enterWait(i)
	defer p.leaveWait(i)
	_, err := l.slots[i].mail.Dequeue()
	return err
}

// Release implements Backend. Releasing a free slot panics.
func (l *Loopback) Release(h Handle) {
	i := l.slot("Release", h)
	l.pool.assertIdle(i, h)
	if !l.pool.reclaim(i) {
		panic("wake: Release: slot not occupied for " + h.String())
	}
}

// Notify implements Backend. Loopback delivery cannot cross a process
// boundary, so a pid other than the current process is the liveness
// violation of this backend and panics, as does mailbox overflow
// (the wakeup would otherwise be silently lost).
func (l *Loopback) Notify(pid int, h Handle) {
	i := l.slot("Notify", h)
	if pid != l.pid {
		panic(fmt.Sprintf("wake: Notify: loopback cannot reach pid %d with %s", pid, h))
	}
	if err := l.slots[i].mail.Enqueue(&wakeToken); err != nil {
		panic(fmt.Sprintf("wake: Notify: mailbox overflow on %s", h))
	}
}

// slot maps h to its slot index, panicking on any handle outside this
// backend's namespace.
func (l *Loopback) slot(op string, h Handle) int {
	if h.Tag() == l.tag {
		if i := h.Inner(); i < uint64(len(l.slots)) {
			return int(i)
		}
	}
	panic(fmt.Sprintf("wake: %s: not a loopback slot: %s", op, h))
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import (
	"math/bits"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// pool is a lock-free occupancy table over a fixed set of slots,
// shared by the in-tree backends. Allocation distributes claims in
// approximate round-robin order: a process-wide cursor is
// fetch-and-incremented per probe and reduced to an index by masking
// with the smallest power of two ≥ size. The cursor is never reset;
// arithmetic wraparound is harmless because only the masked low bits
// are ever used.
//
// The occupancy flags and the cursor are the only shared mutable
// state. They are never locked, so claim and reclaim are safe from
// any number of goroutines and cannot deadlock.
type pool struct {
	size    int
	mask    uint64
	cursor  atomix.Uint64
	used    []atomix.Uint32
	waiting []atomix.Uint32 // in-flight Wait counters, race builds only
}

func (p *pool) init(size int) {
	p.size = size
	p.mask = uint64(1)<<bits.Len(uint(size-1)) - 1
	p.used = make([]atomix.Uint32, size)
	if debugChecks {
		p.waiting = make([]atomix.Uint32, size)
	}
}

// claim allocates a free slot and returns its index.
// Up to mask+1 occupied probes are attempted before giving up with
// iox.ErrWouldBlock; probes that fall beyond size (the power-of-two
// padding) re-probe for free and do not count against that budget.
//
// The Swap on the occupancy flag is the only point of arbitration:
// two concurrent claimants of the same index see exactly one prior
// value of 0, so a slot is never handed out twice.
func (p *pool) claim() (int, error) {
	for budget := p.mask + 1; budget > 0; {
		i := (p.cursor.Add(1) - 1) & p.mask
		if i >= uint64(p.size) {
			continue
		}
		if p.used[i].Swap(1) == 0 {
			return int(i), nil
		}
		budget--
	}
	return 0, iox.ErrWouldBlock
}

// reclaim frees slot i and reports whether it was occupied.
// A false return is a double release; the caller turns it into a
// panic carrying the offending handle.
func (p *pool) reclaim(i int) bool {
	return p.used[i].Swap(0) == 1
}

// enterWait and leaveWait bracket a Wait or TryWait on slot i.
// Compiled away outside race builds.
func (p *pool) enterWait(i int) {
	if debugChecks {
		p.waiting[i].Add(1)
	}
}

func (p *pool) leaveWait(i int) {
	if debugChecks {
		p.waiting[i].Add(^uint32(0))
	}
}

// assertIdle panics if a Wait on slot i is still in flight.
// Releasing a slot under an active waiter is undefined behavior by
// contract; race builds turn the common case into a crash here.
func (p *pool) assertIdle(i int, h Handle) {
	if debugChecks && p.waiting[i].Load() != 0 {
		panic("wake: Release with wait in flight on " + h.String())
	}
}

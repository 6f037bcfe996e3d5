// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

import "fmt"

// Tag identifies the backend that owns a handle.
// It occupies the high 8 bits of a Handle and is part of the
// cross-process wire contract: both sides of an IPC channel must
// agree on tag values, not only on inner ids.
type Tag uint8

const (
	// TagSignal marks handles owned by the real-time-signal backend.
	// The inner id is the raw signal number.
	TagSignal Tag = 0x01
	// TagUintr marks handles owned by the user-level-interrupt backend.
	// The inner id namespace belongs to that backend.
	TagUintr Tag = 0x02
)

const (
	tagShift  = 56
	innerMask = 1<<tagShift - 1
)

// Handle is an opaque 64-bit wakeup source identifier.
// Bits 63–56 hold the backend Tag, bits 55–0 the backend-local id.
// Handles travel by value between processes; the raw uint64 is the
// wire representation.
type Handle uint64

// Compose packs a tag and a backend-local id into a Handle.
// inner must fit in 56 bits; higher bits are silently dropped.
func Compose(tag Tag, inner uint64) Handle {
	return Handle(uint64(tag)<<tagShift | inner&innerMask)
}

// Tag returns the backend tag of h.
func (h Handle) Tag() Tag {
	return Tag(h >> tagShift)
}

// Inner returns the backend-local id of h.
// It is meaningful only within the owning backend's namespace.
func (h Handle) Inner() uint64 {
	return uint64(h) & innerMask
}

// String formats h as a fixed-width hex literal for diagnostics.
func (h Handle) String() string {
	return fmt.Sprintf("0x%016x", uint64(h))
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake_test

import (
	"testing"
	"testing/quick"

	"code.hybscloud.com/wake"
)

func TestComposeLayout(t *testing.T) {
	h := wake.Compose(wake.TagSignal, 34)
	if uint64(h) != 0x0100_0000_0000_0022 {
		t.Fatalf("handle got %s, want 0x0100000000000022", h)
	}
	if h.Tag() != wake.TagSignal {
		t.Fatalf("tag got 0x%02x, want 0x01", uint8(h.Tag()))
	}
	if h.Inner() != 34 {
		t.Fatalf("inner got %d, want 34", h.Inner())
	}
}

func TestComposeTruncatesInner(t *testing.T) {
	// inner wider than 56 bits must not bleed into the tag
	h := wake.Compose(wake.TagUintr, 1<<56|7)
	if h.Tag() != wake.TagUintr {
		t.Fatalf("tag got 0x%02x, want 0x02", uint8(h.Tag()))
	}
	if h.Inner() != 7 {
		t.Fatalf("inner got %d, want 7", h.Inner())
	}
}

func TestHandleString(t *testing.T) {
	h := wake.Compose(wake.TagSignal, 0x22)
	if got := h.String(); got != "0x0100000000000022" {
		t.Fatalf("String got %q", got)
	}
}

// TestPropertyComposeRoundTrip proves that for any tag and any inner
// value, decoding recovers the tag and the masked inner id exactly.
func TestPropertyComposeRoundTrip(t *testing.T) {
	roundTrip := func(tag uint8, inner uint64) bool {
		h := wake.Compose(wake.Tag(tag), inner)
		return h.Tag() == wake.Tag(tag) && h.Inner() == inner&(1<<56-1)
	}
	if err := quick.Check(roundTrip, nil); err != nil {
		t.Error(err)
	}
}

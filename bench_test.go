// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake_test

import (
	"os"
	"testing"

	"code.hybscloud.com/wake"
)

// BenchmarkNewIDRelease measures one allocate/release cycle on a
// loopback pool.
func BenchmarkNewIDRelease(b *testing.B) {
	skipRace(b)
	lb := wake.NewLoopback(wake.TagUintr, 8)
	b.ReportAllocs()
	for b.Loop() {
		h, err := lb.NewID()
		if err != nil {
			b.Fatal(err)
		}
		lb.Release(h)
	}
}

// BenchmarkNotifyTryWait measures one doorbell round-trip through the
// dispatcher.
func BenchmarkNotifyTryWait(b *testing.B) {
	skipRace(b)
	lb := wake.NewLoopback(wake.TagUintr, 1)
	d := wake.NewDispatcher(nil, lb)
	h, err := lb.NewID()
	if err != nil {
		b.Fatal(err)
	}
	defer d.Release(h)
	pid := os.Getpid()

	b.ReportAllocs()
	for b.Loop() {
		d.Notify(pid, h)
		if err := d.TryWait(h); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExecWait measures effect-world evaluation of a single
// pre-rung wait.
func BenchmarkExecWait(b *testing.B) {
	skipRace(b)
	lb := wake.NewLoopback(wake.TagUintr, 1)
	d := wake.NewDispatcher(nil, lb)
	h, err := lb.NewID()
	if err != nil {
		b.Fatal(err)
	}
	defer d.Release(h)
	pid := os.Getpid()

	b.ReportAllocs()
	for b.Loop() {
		lb.Notify(pid, h)
		wake.ExecExpr(d, wake.ExprWaitDone(h, struct{}{}))
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake_test

import (
	"runtime"
	"strings"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/wake"
)

// requireLinux skips tests that deliver real signals.
// The real-time range in rtsig.go is a Linux contract.
func requireLinux(tb testing.TB) {
	tb.Helper()
	if runtime.GOOS != "linux" {
		tb.Skip("skip: real-time signal delivery is Linux-only")
	}
}

// mustNewID allocates from b, failing the test on pool exhaustion.
func mustNewID(tb testing.TB, b wake.Backend) wake.Handle {
	tb.Helper()
	h, err := b.NewID()
	if err != nil {
		tb.Fatalf("NewID: %v", err)
	}
	return h
}

// drive runs a protocol to completion via Step+Advance loop.
// Retries on iox.ErrWouldBlock (no wakeup pending yet).
// Used by stepping tests to exercise the non-blocking path.
func drive[R any](d *wake.Dispatcher, protocol kont.Expr[R]) R {
	result, susp := wake.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = wake.Advance(d, susp)
		if err != nil {
			continue
		}
	}
	return result
}

// mustPanic runs f and fails the test unless it panics with a message
// containing want.
func mustPanic(tb testing.TB, want string, f func()) {
	tb.Helper()
	defer func() {
		r := recover()
		if r == nil {
			tb.Fatalf("expected panic containing %q", want)
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, want) {
			tb.Fatalf("unexpected panic: %v", r)
		}
	}()
	f()
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wake

// Usable real-time signal range, fixed at build time.
//
// Platform assumption: Linux with a glibc-convention userland, where
// the application-visible real-time range is [34, 64] (the kernel
// range [32, 64] minus the two numbers libc reserves for threading).
// 63 and 64 are additionally excluded: delivery to them fails on the
// target platform, so handing them out would only move the failure
// from allocation to notify.
const (
	rtMin = 34
	rtMax = 64
)

// rtExcluded lists signal numbers inside [rtMin, rtMax] that are not
// deliverable cross-process.
var rtExcluded = [...]int{63, 64}

// rtSignals returns the ordered set of usable real-time signal
// numbers backing NewSignal.
func rtSignals() []int {
	nums := make([]int, 0, rtMax-rtMin+1)
next:
	for n := rtMin; n <= rtMax; n++ {
		for _, x := range rtExcluded {
			if n == x {
				continue next
			}
		}
		nums = append(nums, n)
	}
	return nums
}

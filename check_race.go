// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package wake

// debugChecks enables in-flight wait accounting in race builds.
// The wait/release ordering contract is otherwise unenforced.
const debugChecks = true

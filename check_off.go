// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package wake

// debugChecks disables in-flight wait accounting in production
// builds; the guarded branches constant-fold to nothing.
const debugChecks = false

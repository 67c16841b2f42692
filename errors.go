// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import "errors"

// ErrNilRejection is the rejection reason of a future rejected with a nil error.
var ErrNilRejection = errors.New("pend: rejected with nil error")

// ErrSelfResolution is the rejection reason of a future resolved with itself.
var ErrSelfResolution = errors.New("pend: future resolved with itself")

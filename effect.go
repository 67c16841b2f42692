// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import "code.hybscloud.com/kont"

// Lift evaluates a Cont-world computation on a new goroutine and returns
// a future on loop settled by it. Right resolves with the result; a thrown
// error rejects with it. Only error effects may be performed; a resolved
// awaitable is adopted like in [Future.Resolve].
func Lift[R any](loop *Loop, computation kont.Eff[R]) *Future {
	return settleFrom(loop, func() kont.Either[error, R] {
		return kont.RunError[error, R](computation)
	})
}

// LiftExpr is the Expr-world counterpart of Lift.
func LiftExpr[R any](loop *Loop, computation kont.Expr[R]) *Future {
	return settleFrom(loop, func() kont.Either[error, R] {
		return kont.RunErrorExpr[error, R](computation)
	})
}

// settleFrom runs eval on a new goroutine and settles a future on l with
// its Either result.
func settleFrom[R any](l *Loop, eval func() kont.Either[error, R]) *Future {
	f := l.NewFuture()
	go func() {
		result := eval()
		if err, ok := result.GetLeft(); ok {
			f.Reject(err)
			return
		}
		r, _ := result.GetRight()
		f.Resolve(r)
	}()
	return f
}

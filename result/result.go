// Package result defines a closed success/failure variant for
// asynchronous task outcomes.
package result

// Result carries either a success payload of type S or a failure payload
// of type F. The zero value is an empty success of S's zero value.
//
// Results are immutable value types. When S and F are comparable, two
// Results compare equal with == exactly when they have the same variant,
// equal payloads, and the same emptiness.
type Result[S, F any] struct {
	value  S
	err    F
	failed bool
	empty  bool
}

// Success creates a successful result. It is never empty.
func Success[S, F any](value S) Result[S, F] {
	return Result[S, F]{value: value}
}

// SuccessWhen creates a successful result whose emptiness is decided by
// applying isEmpty to value at construction. A nil predicate means not
// empty.
func SuccessWhen[S, F any](value S, isEmpty func(S) bool) Result[S, F] {
	r := Result[S, F]{value: value}
	if isEmpty != nil {
		r.empty = isEmpty(value)
	}
	return r
}

// Failure creates a failed result.
func Failure[S, F any](err F) Result[S, F] {
	return Result[S, F]{err: err, failed: true}
}

// IsSuccess reports whether the result carries a success payload.
func (r Result[S, F]) IsSuccess() bool {
	return !r.failed
}

// IsFailure reports whether the result carries a failure payload.
func (r Result[S, F]) IsFailure() bool {
	return r.failed
}

// IsEmpty reports whether a successful payload was judged empty by the
// predicate given at construction. Failures are never empty.
func (r Result[S, F]) IsEmpty() bool {
	return !r.failed && r.empty
}

// Value returns the success payload, or S's zero value for failures.
func (r Result[S, F]) Value() S {
	if r.failed {
		var zero S
		return zero
	}
	return r.value
}

// Err returns the failure payload, or F's zero value for successes.
func (r Result[S, F]) Err() F {
	if !r.failed {
		var zero F
		return zero
	}
	return r.err
}

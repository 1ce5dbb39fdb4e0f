package result

import (
	"errors"
	"testing"
)

func TestSuccess_CarriesValue(t *testing.T) {
	r := Success[int, error](5)
	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success variant")
	}
	if r.Value() != 5 {
		t.Fatalf("expected value 5, got %d", r.Value())
	}
	if r.Err() != nil {
		t.Fatalf("expected nil failure payload, got %v", r.Err())
	}
}

func TestFailure_CarriesError(t *testing.T) {
	boom := errors.New("boom")
	r := Failure[int](boom)
	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("expected failure variant")
	}
	if r.Err() != boom {
		t.Fatalf("expected failure payload boom, got %v", r.Err())
	}
	if r.Value() != 0 {
		t.Fatalf("expected zero success payload, got %d", r.Value())
	}
}

func TestSuccessWhen_Emptiness(t *testing.T) {
	isZero := func(v int) bool { return v == 0 }

	if SuccessWhen[int, error](5, isZero).IsEmpty() {
		t.Fatalf("expected non-zero payload to not be empty")
	}
	if !SuccessWhen[int, error](0, isZero).IsEmpty() {
		t.Fatalf("expected zero payload to be empty")
	}
	if Success[int, error](5).IsEmpty() {
		t.Fatalf("expected success without predicate to not be empty")
	}
	if SuccessWhen[int, error](0, nil).IsEmpty() {
		t.Fatalf("expected nil predicate to mean not empty")
	}
}

func TestFailure_NeverEmpty(t *testing.T) {
	if Failure[int](errors.New("x")).IsEmpty() {
		t.Fatalf("expected failure to not be empty")
	}
}

func TestResult_StructuralEquality(t *testing.T) {
	isZero := func(v int) bool { return v == 0 }

	if Success[int, string](3) != Success[int, string](3) {
		t.Fatalf("expected equal successes to compare equal")
	}
	if Success[int, string](3) == Success[int, string](4) {
		t.Fatalf("expected unequal payloads to compare unequal")
	}
	if Failure[int]("x") != Failure[int]("x") {
		t.Fatalf("expected equal failures to compare equal")
	}
	if Success[int, string](0) == Failure[int]("") {
		t.Fatalf("expected success and failure to compare unequal")
	}
	if SuccessWhen[int, string](3, isZero) != Success[int, string](3) {
		t.Fatalf("expected same emptiness to compare equal")
	}
	if SuccessWhen[int, string](0, isZero) == Success[int, string](0) {
		t.Fatalf("expected differing emptiness to compare unequal")
	}
}

package state

import "testing"

func TestComputed_RecomputesOnDependencyChange(t *testing.T) {
	a := NewObservable(2)
	b := NewObservable(3)
	sum := NewComputed(func() int { return a.Get() + b.Get() }, a, b)

	if sum.Get() != 5 {
		t.Fatalf("expected initial computed value 5, got %d", sum.Get())
	}

	a.Set(10)
	if sum.Get() != 13 {
		t.Fatalf("expected recomputed value 13, got %d", sum.Get())
	}
}

func TestComputed_SubscribersSeeRecomputes(t *testing.T) {
	src := NewObservable(1)
	double := NewComputed(func() int { return src.Get() * 2 }, src)
	var got []int

	double.Subscribe(func(v int) {
		got = append(got, v)
	})

	src.Set(5)
	if len(got) != 2 || got[0] != 2 || got[1] != 10 {
		t.Fatalf("expected replay then recompute, got %v", got)
	}
}

func TestComputed_StopDetaches(t *testing.T) {
	src := NewObservable(1)
	c := NewComputed(func() int { return src.Get() }, src)

	c.Stop()
	src.Set(9)
	if c.Get() != 1 {
		t.Fatalf("expected stale value after stop, got %d", c.Get())
	}
}

func TestComputed_Scheduler(t *testing.T) {
	src := NewObservable(1)
	queue := NewQueue()
	c := NewComputedWithScheduler(queue, func() int { return src.Get() * 10 }, src)

	src.Set(2)
	if c.Get() != 10 {
		t.Fatalf("expected recompute to wait for flush, got %d", c.Get())
	}
	queue.Flush()
	if c.Get() != 20 {
		t.Fatalf("expected recomputed value 20 after flush, got %d", c.Get())
	}
}

func TestComputed_NilCompute(t *testing.T) {
	c := NewComputed[int](nil)
	if c.Get() != 0 {
		t.Fatalf("expected zero value for nil compute, got %d", c.Get())
	}
}

package state

import "testing"

func TestSubscriptions_Clear(t *testing.T) {
	subs := &Subscriptions{}
	calls := 0

	subs.Add(func() { calls++ })
	subs.Add(func() { calls++ })

	subs.Clear()
	if calls != 2 {
		t.Fatalf("expected 2 cancel calls, got %d", calls)
	}

	subs.Clear()
	if calls != 2 {
		t.Fatalf("expected no extra calls after clear, got %d", calls)
	}
}

func TestSubscriptions_Watch(t *testing.T) {
	obs := NewObservable(1)
	subs := &Subscriptions{}
	calls := 0

	subs.Watch(obs, func() { calls++ })

	obs.Set(2)
	if calls != 1 {
		t.Fatalf("expected 1 notification, got %d", calls)
	}

	subs.Clear()
	obs.Set(3)
	if calls != 1 {
		t.Fatalf("expected no notifications after clear, got %d", calls)
	}
}

func TestObserve_UsesDefaultScheduler(t *testing.T) {
	obs := NewObservable(1)
	queue := NewQueue()
	subs := NewSubscriptions(queue)
	var got []int

	Observe(subs, obs, func(v int) {
		got = append(got, v)
	})

	obs.Set(2)
	if len(got) != 0 {
		t.Fatalf("expected callbacks to be queued, got %v", got)
	}
	queue.Flush()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected replay then change after flush, got %v", got)
	}

	subs.Clear()
	obs.Set(3)
	queue.Flush()
	if len(got) != 2 {
		t.Fatalf("expected no deliveries after clear, got %v", got)
	}
}

func TestObserve_SynchronousWithoutScheduler(t *testing.T) {
	obs := NewObservable("a")
	subs := &Subscriptions{}
	var got []string

	Observe(subs, obs, func(v string) {
		got = append(got, v)
	})

	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected synchronous replay, got %v", got)
	}
	obs.Set("b")
	if len(got) != 2 || got[1] != "b" {
		t.Fatalf("expected synchronous delivery, got %v", got)
	}
}

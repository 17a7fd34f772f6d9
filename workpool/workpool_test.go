package workpool

import (
	"sync/atomic"
	"testing"
)

func TestGroupWaitJoinsAllTasks(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var counter int64
	group := pool.Group()
	for i := 0; i < 100; i++ {
		group.Submit(func() {
			atomic.AddInt64(&counter, 1)
		})
	}
	group.Wait()

	if counter != 100 {
		t.Errorf("counter=%d after Wait; expected 100", counter)
	}
}

func TestGroupsJoinIndependently(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	var first int64
	a := pool.Group()
	b := pool.Group()

	a.Submit(func() { atomic.AddInt64(&first, 1) })
	b.Submit(func() {})
	a.Wait()

	if first != 1 {
		t.Errorf("first group not complete after its Wait")
	}
	b.Wait()
}

func TestCloseDrainsPendingWork(t *testing.T) {
	pool := New(1)
	var counter int64
	group := pool.Group()
	for i := 0; i < 10; i++ {
		group.Submit(func() { atomic.AddInt64(&counter, 1) })
	}
	pool.Close()

	if counter != 10 {
		t.Errorf("counter=%d after Close; expected 10", counter)
	}
}

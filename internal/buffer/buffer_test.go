package buffer

import (
	"testing"
	"time"
)

func TestRingEvictsStaleEntries(t *testing.T) {
	r := NewRing(2 * time.Second)
	base := time.Now()

	r.Append([]byte("a"), base)
	r.Append([]byte("b"), base.Add(1*time.Second))
	r.Append([]byte("c"), base.Add(3*time.Second))

	got := r.Snapshot()
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving entries, got %d", len(got))
	}
	if string(got[0].Data) != "b" || string(got[1].Data) != "c" {
		t.Errorf("unexpected surviving entries: %+v", got)
	}
}

func TestRingSuppressEvictionDuringRecording(t *testing.T) {
	r := NewRing(1 * time.Second)
	base := time.Now()

	r.Append([]byte("a"), base)
	r.SetSuppressEviction(true)
	r.Append([]byte("b"), base.Add(5*time.Second))
	r.Append([]byte("c"), base.Add(10*time.Second))

	if got := r.Len(); got != 3 {
		t.Fatalf("expected suppressed ring to retain all 3 entries, got %d", got)
	}

	r.SetSuppressEviction(false)
	r.Append([]byte("d"), base.Add(10*time.Second))
	if got := r.Len(); got != 2 {
		t.Fatalf("expected eviction to resume and drop stale entries, got %d entries", got)
	}
}

func TestRingClear(t *testing.T) {
	r := NewRing(time.Minute)
	r.Append([]byte("a"), time.Now())
	r.Clear()
	if got := r.Len(); got != 0 {
		t.Fatalf("expected empty ring after Clear, got %d entries", got)
	}
}

func TestRingSnapshotIsDefensiveCopy(t *testing.T) {
	r := NewRing(time.Minute)
	r.Append([]byte("a"), time.Now())
	snap := r.Snapshot()
	snap[0].Data[0] = 'z'
	if string(r.Snapshot()[0].Data) == "z" {
		t.Fatal("Snapshot must return a defensive copy")
	}
}

func TestPTSStoreEvictsOldestAtCapacity(t *testing.T) {
	p := NewPTSStore(3)
	base := time.Now()
	for i := int64(1); i <= 5; i++ {
		p.Put(i, base.Add(time.Duration(i)*time.Second))
	}

	if _, ok := p.Lookup(1); ok {
		t.Error("expected pts=1 to have been evicted")
	}
	if _, ok := p.Lookup(2); ok {
		t.Error("expected pts=2 to have been evicted")
	}
	if _, ok := p.Lookup(5); !ok {
		t.Error("expected pts=5 to still be present")
	}
}

func TestPTSStorePopOldestConsumesInInsertionOrder(t *testing.T) {
	p := NewPTSStore(10)
	base := time.Now()
	p.Put(7, base)
	p.Put(8, base.Add(time.Second))

	pts, when, ok := p.PopOldest()
	if !ok || pts != 7 || !when.Equal(base) {
		t.Fatalf("expected oldest entry (7, base), got (%d, %v, %v)", pts, when, ok)
	}
	if _, ok := p.Lookup(7); ok {
		t.Error("expected popped entry to be removed")
	}

	pts, _, ok = p.PopOldest()
	if !ok || pts != 8 {
		t.Fatalf("expected second entry (8), got (%d, %v)", pts, ok)
	}
	if _, _, ok := p.PopOldest(); ok {
		t.Fatal("expected pop on an empty store to report false")
	}
}

func TestPTSStoreLookupMiss(t *testing.T) {
	p := NewPTSStore(10)
	if _, ok := p.Lookup(42); ok {
		t.Fatal("expected lookup miss on empty store")
	}
}

func TestPTSStoreClear(t *testing.T) {
	p := NewPTSStore(10)
	p.Put(1, time.Now())
	p.Clear()
	if _, ok := p.Lookup(1); ok {
		t.Fatal("expected store to be empty after Clear")
	}
}

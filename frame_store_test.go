package gui_test

import (
	"testing"

	"github.com/tillpoint/gui"
)

func TestFrameStoreEvictsAfterOneMissedFrame(t *testing.T) {
	var evicted []gui.ID
	store := gui.NewFrameStoreWithEvict(func(id gui.ID, v *int) {
		evicted = append(evicted, id)
	})

	gui.NextFrame()
	*store.Get(1, 0) = 10
	*store.Get(2, 0) = 20

	gui.NextFrame()
	store.Get(2, 0)
	if len(evicted) != 0 {
		t.Fatalf("entries used last frame must survive, evicted %v", evicted)
	}

	gui.NextFrame()
	if len(evicted) != 1 || evicted[0] != 1 {
		t.Fatalf("expected entry 1 evicted, got %v", evicted)
	}
	if got := store.GetIfExists(2); got == nil || *got != 20 {
		t.Errorf("entry 2 should keep its value, got %v", got)
	}
}

func TestFrameStoreDeleteAndClearEvict(t *testing.T) {
	evicted := map[gui.ID]int{}
	store := gui.NewFrameStoreWithEvict(func(id gui.ID, v *int) {
		evicted[id] = *v
	})

	store.Set(1, 100)
	store.Set(2, 200)
	store.Set(3, 300)

	store.Delete(1)
	store.Delete(42)
	if len(evicted) != 1 || evicted[1] != 100 {
		t.Fatalf("Delete should evict exactly the deleted entry, got %v", evicted)
	}

	store.Clear()
	if store.Len() != 0 {
		t.Errorf("store should be empty after Clear, has %d", store.Len())
	}
	if evicted[2] != 200 || evicted[3] != 300 {
		t.Errorf("Clear should evict every entry, got %v", evicted)
	}
}

func TestFrameStoreWithoutEvict(t *testing.T) {
	store := gui.NewFrameStore[string]()
	store.Set(7, "seven")
	if got := store.GetIfExists(7); got == nil || *got != "seven" {
		t.Fatalf("GetIfExists = %v", got)
	}
	store.Delete(7)
	if store.GetIfExists(7) != nil {
		t.Error("deleted entry still present")
	}
}

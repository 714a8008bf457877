package store

import "testing"

func TestSavedNoDuplicates(t *testing.T) {
	saved := NewSaved(testKV(t))

	added, err := saved.Save(42)
	if err != nil || !added {
		t.Fatalf("first save: added=%v err=%v", added, err)
	}

	added, err = saved.Save(42)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if added {
		t.Fatalf("expected second save to be a no-op")
	}

	if ids := saved.IDs(); len(ids) != 1 || ids[0] != 42 {
		t.Fatalf("expected exactly one occurrence, got %v", ids)
	}
}

func TestUnsaveAbsentIsNoop(t *testing.T) {
	saved := NewSaved(testKV(t))

	removed, err := saved.Unsave(7)
	if err != nil {
		t.Fatalf("unsave absent: %v", err)
	}
	if removed {
		t.Fatalf("expected unsave of absent id to report false")
	}
}

func TestSavedInsertionOrderAndClear(t *testing.T) {
	saved := NewSaved(testKV(t))

	for _, id := range []int{3, 1, 2} {
		if _, err := saved.Save(id); err != nil {
			t.Fatalf("save %d: %v", id, err)
		}
	}

	ids := saved.IDs()
	if len(ids) != 3 || ids[0] != 3 || ids[1] != 1 || ids[2] != 2 {
		t.Fatalf("expected insertion order, got %v", ids)
	}

	if !saved.Contains(1) {
		t.Fatalf("expected id 1 to be saved")
	}

	if _, err := saved.Unsave(1); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	ids = saved.IDs()
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 2 {
		t.Fatalf("expected order preserved after unsave, got %v", ids)
	}

	if err := saved.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(saved.IDs()) != 0 {
		t.Fatalf("expected empty set after clear")
	}
}

package ftsengine

import (
	"math/rand"
	"testing"
)

func TestOrderedScoreMapAccumulateInsertsAndAdds(t *testing.T) {
	m := newOrderedScoreMap(rand.New(rand.NewSource(1)))

	m.Accumulate(5, 1.5)
	m.Accumulate(5, 2.5)
	m.Accumulate(1, 10)

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].id != 1 || entries[0].score != 10 {
		t.Errorf("entries[0] = %+v, want {1 10}", entries[0])
	}
	if entries[1].id != 5 || entries[1].score != 4.0 {
		t.Errorf("entries[1] = %+v, want {5 4}", entries[1])
	}
}

func TestOrderedScoreMapAscendingOrder(t *testing.T) {
	m := newOrderedScoreMap(rand.New(rand.NewSource(42)))
	ids := []int{50, 10, 30, 20, 40, 0}
	for _, id := range ids {
		m.Accumulate(id, float64(id))
	}

	entries := m.Entries()
	if len(entries) != len(ids) {
		t.Fatalf("expected %d entries, got %d", len(ids), len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].id >= entries[i].id {
			t.Fatalf("entries not ascending at index %d: %v", i, entries)
		}
	}
}

func TestOrderedScoreMapEmpty(t *testing.T) {
	m := newOrderedScoreMap(rand.New(rand.NewSource(7)))
	if entries := m.Entries(); len(entries) != 0 {
		t.Errorf("expected no entries, got %v", entries)
	}
}

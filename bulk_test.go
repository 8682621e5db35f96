package ftsengine

import "testing"

func newBulkTestIndex(t *testing.T) *SearchServer {
	t.Helper()
	s := NewSearchServer(nil)
	docs := []string{"cat and dog", "dog only", "cat only", "fish"}
	for i, body := range docs {
		if err := s.AddDocument(i, body, StatusActual, []int{i}); err != nil {
			t.Fatalf("AddDocument(%d): %v", i, err)
		}
	}
	return s
}

func TestProcessQueriesIsIndexAligned(t *testing.T) {
	s := newBulkTestIndex(t)
	results, err := ProcessQueries(s, []string{"cat", "dog", "fish", "bird"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 result sets, got %d", len(results))
	}
	if len(results[0]) != 2 { // "cat and dog" and "cat only" both match "cat"
		t.Errorf("results[0] (query \"cat\") = %+v, want 2 matches", results[0])
	}
	if len(results[3]) != 0 {
		t.Errorf("results[3] (query \"bird\") = %+v, want no matches", results[3])
	}
}

func TestProcessQueriesPropagatesFirstError(t *testing.T) {
	s := newBulkTestIndex(t)
	_, err := ProcessQueries(s, []string{"cat", "dog --bad", "fish"})
	if err == nil {
		t.Fatal("expected an error from the malformed second query")
	}
}

func TestProcessQueriesJoinedConcatenatesInOrder(t *testing.T) {
	s := newBulkTestIndex(t)
	joined, err := ProcessQueriesJoined(s, []string{"cat", "dog"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	perQuery, err := ProcessQueries(s, []string{"cat", "dog"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := len(perQuery[0]) + len(perQuery[1])
	if len(joined) != want {
		t.Fatalf("ProcessQueriesJoined returned %d documents, want %d", len(joined), want)
	}
	for i, d := range perQuery[0] {
		if joined[i].ID != d.ID {
			t.Errorf("joined[%d].ID = %d, want %d (first query's order preserved)", i, joined[i].ID, d.ID)
		}
	}
}

func TestProcessQueriesEmptyInput(t *testing.T) {
	s := newBulkTestIndex(t)
	results, err := ProcessQueries(s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for an empty query list, got %+v", results)
	}
}

package ftsengine

import (
	"reflect"
	"testing"
)

func TestParseQueryPlusAndMinus(t *testing.T) {
	sw, _ := NewStopWordsFromText("the")
	q, err := parseQuery("cat -in the", sw, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.plus, []string{"cat"}) {
		t.Errorf("plus = %v, want [cat]", q.plus)
	}
	if !reflect.DeepEqual(q.minus, []string{"in"}) {
		t.Errorf("minus = %v, want [in]", q.minus)
	}
}

func TestParseQueryDedup(t *testing.T) {
	q, err := parseQuery("cat cat dog -rat -rat", nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.plus, []string{"cat", "dog"}) {
		t.Errorf("plus = %v, want [cat dog]", q.plus)
	}
	if !reflect.DeepEqual(q.minus, []string{"rat"}) {
		t.Errorf("minus = %v, want [rat]", q.minus)
	}
}

func TestParseQueryNoDedupKeepsOrderAndRepeats(t *testing.T) {
	q, err := parseQuery("dog cat dog", nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.plus, []string{"dog", "cat", "dog"}) {
		t.Errorf("plus = %v, want [dog cat dog]", q.plus)
	}
}

func TestParseQueryRejectsDoubleMinus(t *testing.T) {
	_, err := parseQuery("cat --dog", nil, false)
	if err == nil {
		t.Fatal("expected an error for a double-minus word")
	}
}

func TestParseQueryRejectsBareMinus(t *testing.T) {
	_, err := parseQuery("cat -", nil, false)
	if err == nil {
		t.Fatal("expected an error for a bare minus")
	}
}

func TestParseQueryRejectsControlByte(t *testing.T) {
	_, err := parseQuery("cat\x01dog", nil, false)
	if err == nil {
		t.Fatal("expected an error for a query containing a control byte")
	}
}

func TestSortUnique(t *testing.T) {
	got := sortUnique([]string{"b", "a", "b", "c", "a"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortUnique = %v, want %v", got, want)
	}
}

func TestSortUniqueShortInputs(t *testing.T) {
	if got := sortUnique(nil); len(got) != 0 {
		t.Errorf("sortUnique(nil) = %v, want empty", got)
	}
	if got := sortUnique([]string{"a"}); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("sortUnique([a]) = %v, want [a]", got)
	}
}

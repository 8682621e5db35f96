package ftsengine

import (
	"reflect"
	"testing"
	"unsafe"
)

func TestSplitIntoWordsView(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"cat in the city", []string{"cat", "in", "the", "city"}},
		{"  leading and trailing   ", []string{"leading", "and", "trailing"}},
		{"", nil},
		{"   ", nil},
		{"single", []string{"single"}},
	}

	for _, c := range cases {
		got := splitIntoWordsView(c.text)
		if len(got) != len(c.want) {
			t.Fatalf("splitIntoWordsView(%q) = %v, want %v", c.text, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("splitIntoWordsView(%q)[%d] = %q, want %q", c.text, i, got[i], c.want[i])
			}
		}
	}
}

func TestSplitIntoWordsViewIsAView(t *testing.T) {
	text := "cat city"
	words := splitIntoWordsView(text)
	if !reflect.DeepEqual(words, []string{"cat", "city"}) {
		t.Fatalf("unexpected split: %v", words)
	}
	if unsafe.StringData(words[1]) != unsafe.StringData(text[4:]) {
		t.Error("expected words[1] to share text's backing bytes")
	}
}

func TestIsValidWord(t *testing.T) {
	if !isValidWord("cat") {
		t.Error("expected \"cat\" to be valid")
	}
	if isValidWord("ca\tt") {
		t.Error("expected word containing a tab to be invalid")
	}
	if isValidWord("ca\x01t") {
		t.Error("expected word containing a control byte to be invalid")
	}
	if !isValidWord("") {
		t.Error("expected empty word to be valid (no bytes to violate the rule)")
	}
}

func TestWordStoreInterning(t *testing.T) {
	store := newWordStore()

	body := "cat in the city"
	first := store.intern(body[0:3]) // "cat"

	other := "a cat sat"
	second := store.intern(other[2:5]) // "cat"

	if first != second {
		t.Fatalf("interned spellings should compare equal: %q vs %q", first, second)
	}

	// The two input substrings came from different backing arrays; both
	// must resolve to the same single stored spelling.
	if len(store.words) != 1 {
		t.Fatalf("expected exactly one interned spelling, got %d", len(store.words))
	}
}

package ftsengine

import "strings"

// ═══════════════════════════════════════════════════════════════════════════════
// TOKENIZER
// ═══════════════════════════════════════════════════════════════════════════════
// Splits a text span into non-empty whitespace-delimited word spans. Unlike
// the tokenizer this package's teacher carries (Unicode-letter splitting
// feeding a stemmer), this one only needs ASCII whitespace: the spec treats
// any byte <= 0x20 as a separator and validates each resulting word rather
// than normalizing it.
//
// Example:
//
//	splitIntoWordsView("cat in   the city") == []string{"cat", "in", "the", "city"}
// ═══════════════════════════════════════════════════════════════════════════════

func isSpaceByte(b byte) bool {
	return b <= ' '
}

// splitIntoWordsView returns the whitespace-delimited sub-spans of text.
// Each returned string is a substring view into text (Go substrings share
// the original backing array, so this allocates no new bytes).
func splitIntoWordsView(text string) []string {
	var words []string
	start := -1
	for i := 0; i < len(text); i++ {
		if isSpaceByte(text[i]) {
			if start >= 0 {
				words = append(words, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words
}

// isValidWord reports whether word contains no control bytes (every byte
// must be >= 0x20).
func isValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 0x20 {
			return false
		}
	}
	return true
}

// ═══════════════════════════════════════════════════════════════════════════════
// WORD STORE: Interning
// ═══════════════════════════════════════════════════════════════════════════════
// The inverted and forward indexes key their maps on words taken from
// document bodies. A document body is only alive for the duration of
// AddDocument, so a word view into it would dangle the moment the call
// returns. wordStore interns each retained word into its own backing
// allocation (via strings.Clone) the first time it's seen, and every later
// occurrence of the same spelling reuses that allocation as the map key —
// this is the "indexing by interned-id... sidesteps stable-address
// requirements" alternative the design notes call out, done by sharing one
// owned string instead of a numeric id.
//
// wordStore is written to exclusively from AddDocument, which the caller is
// required to serialize (§5); it carries no internal lock.
type wordStore struct {
	words map[string]string
}

func newWordStore() *wordStore {
	return &wordStore{words: make(map[string]string)}
}

// intern returns the canonical, independently-owned copy of w, allocating
// one the first time w's spelling is seen.
func (s *wordStore) intern(w string) string {
	if owned, ok := s.words[w]; ok {
		return owned
	}
	owned := strings.Clone(w)
	s.words[owned] = owned
	return owned
}

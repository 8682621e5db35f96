package ftsengine

// ═══════════════════════════════════════════════════════════════════════════════
// STOP-WORD SET
// ═══════════════════════════════════════════════════════════════════════════════
// A StopWords set is established once, at construction, and is immutable
// thereafter (§3: "Stop-word set... established at construction, immutable
// thereafter"). The three constructors mirror the three the original
// search-server exposes: from a container of strings, from a whitespace
// text blob, and (identically, since Go has one string type) from a plain
// string. All three funnel into the same non-empty-unique-words logic the
// original's MakeUniqueNonEmptyStrings performs.
// ═══════════════════════════════════════════════════════════════════════════════

// StopWords is an immutable set of words ignored on ingest and in queries.
type StopWords struct {
	set map[string]struct{}
}

// NewStopWordsFromSlice builds a StopWords set from a container of raw
// strings, keeping only the non-empty ones. Fails with ErrInvalidStopWords
// if any kept word contains a control byte.
func NewStopWordsFromSlice(words []string) (*StopWords, error) {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if !isValidWord(w) {
			return nil, errInvalidStopWord(w)
		}
		set[w] = struct{}{}
	}
	return &StopWords{set: set}, nil
}

// NewStopWordsFromText builds a StopWords set from a single whitespace
// separated string, e.g. "in the on".
func NewStopWordsFromText(text string) (*StopWords, error) {
	return NewStopWordsFromSlice(splitIntoWordsView(text))
}

// NewStopWordsFromView is identical to NewStopWordsFromText; Go has no
// separate string/string-view distinction, so it exists only to mirror the
// original's three-constructor surface (container, string_view, string).
func NewStopWordsFromView(text string) (*StopWords, error) {
	return NewStopWordsFromText(text)
}

// Contains reports whether w is a stop-word. A nil *StopWords (the
// zero-stop-words index) contains nothing.
func (s *StopWords) Contains(w string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[w]
	return ok
}

// Len returns the number of distinct stop-words.
func (s *StopWords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

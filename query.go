package ftsengine

import "sort"

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY PARSER
// ═══════════════════════════════════════════════════════════════════════════════
// Classifies the whitespace-delimited words of a raw query into a plus-list
// and a minus-list, dropping stop-words. A leading '-' marks a minus-term;
// "--foo" and a bare "-" are rejected as invalid query words, matching the
// original's ParseQueryWord.
//
// EXAMPLE:
//
//	parseQuery("cat -in the", stopWords("the"), dedup=false)
//	  → plus: ["cat"], minus: ["in"]   ("the" dropped as a stop-word)
// ═══════════════════════════════════════════════════════════════════════════════

// query holds the classified, filtered words of a parsed search request.
type query struct {
	plus  []string
	minus []string
}

// parseQuery splits and classifies raw query text. When dedup is true both
// lists are sorted and deduplicated (used by Match and by both the
// sequential and parallel top-k paths); when false they retain insertion
// order and may repeat (used by MatchParallel, which sorts and deduplicates
// its matched words afterwards).
func parseQuery(raw string, stopWords *StopWords, dedup bool) (query, error) {
	if !isValidWord(raw) {
		return query{}, ErrInvalidQuery
	}

	var q query
	for _, token := range splitIntoWordsView(raw) {
		w := token
		minus := false
		if len(w) > 0 && w[0] == '-' {
			minus = true
			w = w[1:]
		}
		if w == "" || (len(w) > 0 && w[0] == '-') || !isValidWord(w) {
			return query{}, errInvalidQueryWord(token)
		}
		if stopWords.Contains(w) {
			continue
		}
		if minus {
			q.minus = append(q.minus, w)
		} else {
			q.plus = append(q.plus, w)
		}
	}

	if dedup {
		q.plus = sortUnique(q.plus)
		q.minus = sortUnique(q.minus)
	}
	return q, nil
}

// sortUnique sorts words and removes adjacent duplicates in place.
func sortUnique(words []string) []string {
	if len(words) < 2 {
		return words
	}
	sort.Strings(words)
	out := words[:1]
	for _, w := range words[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}

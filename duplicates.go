package ftsengine

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════════
// DUPLICATE REMOVER
// ═══════════════════════════════════════════════════════════════════════════════
// Groups documents by the exact set of non-stop-word keys in their forward
// entry. Within each group of more than one document, keeps the smallest
// id and removes every other one, writing one line
// "Found duplicate document id <id>" to sink before each removal — matching
// remove_duplicates.cpp, which prints before calling RemoveDocument, and
// keeps the minimum id of the group (`max(..., id)` into duplicate_ids
// while the group's representative is always its smallest member).
//
// Errors are not caught here (§7): a removal never fails in this engine
// (RemoveDocument silently no-ops on an absent id), so there's nothing to
// propagate, but RemoveDuplicates itself does not wrap anything in a
// recover the way AddDocumentReporting does.
// ═══════════════════════════════════════════════════════════════════════════════

// RemoveDuplicates removes every document whose forward-index word-set
// exactly matches an earlier (smaller-id) document's, writing one
// "Found duplicate document id <id>" line to sink per removal. Calling it
// twice in a row is idempotent: the second call finds nothing left to
// remove.
func RemoveDuplicates(sink io.Writer, server *SearchServer) {
	groups := make(map[string][]int)

	for _, id := range server.Ids() {
		key := wordSetKey(server.GetWordFrequencies(id))
		groups[key] = append(groups[key], id)
	}

	var duplicates []int
	for _, ids := range groups {
		if len(ids) < 2 {
			continue
		}
		sort.Ints(ids)
		duplicates = append(duplicates, ids[1:]...)
	}
	sort.Ints(duplicates)

	for _, id := range duplicates {
		fmt.Fprintf(sink, "Found duplicate document id %d\n", id)
		server.RemoveDocument(id)
	}
}

// wordSetKey canonicalizes a document's word-frequency map into a string
// that's equal for two documents iff their key sets are equal, regardless
// of frequency values or map iteration order.
func wordSetKey(freqs map[string]float64) string {
	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}
	sort.Strings(words)
	return strings.Join(words, "\x00")
}

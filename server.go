package ftsengine

import (
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// SEARCH SERVER: the index core
// ═══════════════════════════════════════════════════════════════════════════════
// SearchServer owns every piece of state for one in-memory document
// collection: the forward and inverted indexes, the document records, the
// interned word store, and the ordered set of live identifiers.
//
// INVARIANTS:
//   - forward[d] and inverted[w][d] always agree: forward[d][w] == t iff
//     inverted[w][d] == t.
//   - stop-words never appear as keys of inverted or forward[_].
//   - a document whose body is entirely stop-words is still present in
//     documents, with an (existing, empty) forward[d].
//
// CONCURRENCY (§5): the server itself holds no lock. Add/Remove calls must
// be externally serialized by the caller. Concurrent reads (Match,
// FindTopDocuments, GetWordFrequencies) are safe with each other. Only the
// *Parallel methods spin up internal goroutines, and they join every
// goroutine before returning.
// ═══════════════════════════════════════════════════════════════════════════════

type documentData struct {
	rating int
	status Status
}

// SearchServer is an in-memory inverted-index full-text search engine.
type SearchServer struct {
	config    EngineConfig
	stopWords *StopWords
	words     *wordStore

	documents map[int]documentData
	forward   map[int]map[string]float64 // id -> word -> tf
	inverted  map[string]map[int]float64 // word -> id -> tf
	ids       *roaring.Bitmap
}

// NewSearchServer constructs an empty index using the given stop-words and
// the default engine configuration.
func NewSearchServer(stopWords *StopWords) *SearchServer {
	return NewSearchServerWithConfig(stopWords, DefaultEngineConfig())
}

// NewSearchServerWithConfig is NewSearchServer with an explicit
// EngineConfig, for callers that need to tune MaxResultDocumentCount,
// RelevanceEpsilon, or WindowSize.
func NewSearchServerWithConfig(stopWords *StopWords, cfg EngineConfig) *SearchServer {
	return &SearchServer{
		config:    cfg,
		stopWords: stopWords,
		words:     newWordStore(),
		documents: make(map[int]documentData),
		forward:   make(map[int]map[string]float64),
		inverted:  make(map[string]map[int]float64),
		ids:       roaring.NewBitmap(),
	}
}

// ═══════════════════════════════════════════════════════════════════════════════
// ADD
// ═══════════════════════════════════════════════════════════════════════════════

// AddDocument ingests a document. It fails with ErrInvalidDocumentID when id
// is negative or already present, and with ErrInvalidWord when body
// contains a control byte outside a stop-word. On failure the index is left
// exactly as it was before the call: token validation runs to completion
// before any index entry is written.
func (s *SearchServer) AddDocument(id int, body string, status Status, ratings []int) error {
	if id < 0 {
		return errInvalidDocumentID(id)
	}
	if _, exists := s.documents[id]; exists {
		return errInvalidDocumentID(id)
	}
	// The tokenizer treats every byte <= 0x20 as a separator, so control
	// bytes are caught on the whole body before splitting.
	if !isValidWord(body) {
		return errInvalidWord(body)
	}

	tokens := make([]string, 0, 8)
	for _, w := range splitIntoWordsView(body) {
		if s.stopWords.Contains(w) {
			continue
		}
		if !isValidWord(w) {
			return errInvalidWord(w)
		}
		tokens = append(tokens, w)
	}

	rating := 0
	if n := len(ratings); n > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		rating = sum / n // truncates toward zero, matching the source (§9)
	}

	// forward[id] exists from here on even if tokens is empty (invariant 4).
	s.forward[id] = make(map[string]float64, len(tokens))

	if len(tokens) > 0 {
		inv := 1.0 / float64(len(tokens))
		for _, tok := range tokens {
			w := s.words.intern(tok)
			if s.inverted[w] == nil {
				s.inverted[w] = make(map[int]float64)
			}
			s.inverted[w][id] += inv
			s.forward[id][w] += inv
		}
	}

	s.documents[id] = documentData{rating: rating, status: status}
	s.ids.Add(uint32(id))

	slog.Info("indexed document", slog.Int("id", id), slog.Int("tokens", len(tokens)))
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// REMOVE
// ═══════════════════════════════════════════════════════════════════════════════

// RemoveDocument removes id, if present, from every index structure.
// Removing an absent id is a silent no-op.
func (s *SearchServer) RemoveDocument(id int) {
	s.removeDocument(id, false)
}

// RemoveDocumentParallel is RemoveDocument, fanning the inverted-index
// cleanup out across a worker pool.
func (s *SearchServer) RemoveDocumentParallel(id int) {
	s.removeDocument(id, true)
}

func (s *SearchServer) removeDocument(id int, parallel bool) {
	wordFreqs, exists := s.forward[id]
	if !exists {
		return
	}

	words := make([]string, 0, len(wordFreqs))
	for w := range wordFreqs {
		words = append(words, w)
	}

	s.ids.Remove(uint32(id))
	delete(s.documents, id)
	delete(s.forward, id)

	unlink := func(w string) {
		if postings, ok := s.inverted[w]; ok {
			delete(postings, id) // inverted[w] itself is left in place, even if now empty
		}
	}

	if parallel {
		parallelForEach(words, unlink)
	} else {
		for _, w := range words {
			unlink(w)
		}
	}

	slog.Debug("removed document", slog.Int("id", id))
}

// ═══════════════════════════════════════════════════════════════════════════════
// MATCH
// ═══════════════════════════════════════════════════════════════════════════════

// Match reports which of raw's plus-terms appear in document id, or an
// empty word list if any of raw's minus-terms appear in it. Fails with
// ErrOutOfRange if id is absent and ErrInvalidQuery if raw contains a
// control byte.
func (s *SearchServer) Match(raw string, id int) (MatchResult, error) {
	return s.match(raw, id, false)
}

// MatchParallel is Match, testing plus-terms concurrently.
func (s *SearchServer) MatchParallel(raw string, id int) (MatchResult, error) {
	return s.match(raw, id, true)
}

func (s *SearchServer) match(raw string, id int, parallel bool) (MatchResult, error) {
	doc, ok := s.documents[id]
	if !ok {
		return MatchResult{}, errOutOfRange(id)
	}

	q, err := parseQuery(raw, s.stopWords, !parallel)
	if err != nil {
		return MatchResult{}, err
	}

	for _, w := range q.minus {
		if postings, ok := s.inverted[w]; ok {
			if _, present := postings[id]; present {
				return MatchResult{Status: doc.status}, nil
			}
		}
	}

	if !parallel {
		var words []string
		for _, w := range q.plus {
			if postings, ok := s.inverted[w]; ok {
				if _, present := postings[id]; present {
					words = append(words, w)
				}
			}
		}
		return MatchResult{Words: words, Status: doc.status}, nil
	}

	var mu sync.Mutex
	var words []string
	parallelForEach(q.plus, func(w string) {
		postings, ok := s.inverted[w]
		if !ok {
			return
		}
		if _, present := postings[id]; !present {
			return
		}
		mu.Lock()
		words = append(words, w)
		mu.Unlock()
	})
	words = sortUnique(words)
	return MatchResult{Words: words, Status: doc.status}, nil
}

// ═══════════════════════════════════════════════════════════════════════════════
// TOP-K SEARCH
// ═══════════════════════════════════════════════════════════════════════════════

// FindTopDocuments returns the best-matching documents for raw, keeping
// only candidates for which predicate returns true, ranked by TF-IDF
// relevance with ties broken by descending rating, truncated to
// MaxResultDocumentCount.
func (s *SearchServer) FindTopDocuments(raw string, predicate DocumentPredicate) ([]Document, error) {
	return s.findTopDocuments(raw, predicate, false)
}

// FindTopDocumentsByStatus is FindTopDocuments with a status-equality
// predicate.
func (s *SearchServer) FindTopDocumentsByStatus(raw string, status Status) ([]Document, error) {
	return s.FindTopDocuments(raw, StatusPredicate(status))
}

// FindTopDocumentsActual is FindTopDocuments restricted to ACTUAL
// documents, the default when no status or predicate is given.
func (s *SearchServer) FindTopDocumentsActual(raw string) ([]Document, error) {
	return s.FindTopDocumentsByStatus(raw, StatusActual)
}

// FindTopDocumentsParallel is FindTopDocuments, scoring plus-terms
// concurrently via the sharded score map (§4.2).
func (s *SearchServer) FindTopDocumentsParallel(raw string, predicate DocumentPredicate) ([]Document, error) {
	return s.findTopDocuments(raw, predicate, true)
}

// FindTopDocumentsByStatusParallel is FindTopDocumentsByStatus, parallel.
func (s *SearchServer) FindTopDocumentsByStatusParallel(raw string, status Status) ([]Document, error) {
	return s.FindTopDocumentsParallel(raw, StatusPredicate(status))
}

// FindTopDocumentsActualParallel is FindTopDocumentsActual, parallel.
func (s *SearchServer) FindTopDocumentsActualParallel(raw string) ([]Document, error) {
	return s.FindTopDocumentsByStatusParallel(raw, StatusActual)
}

func (s *SearchServer) findTopDocuments(raw string, predicate DocumentPredicate, parallel bool) ([]Document, error) {
	q, err := parseQuery(raw, s.stopWords, true) // top-k always parses with dedup on
	if err != nil {
		return nil, err
	}

	var scores map[int]float64
	if !parallel {
		scores = s.scorePlusTermsSequential(q.plus, predicate)
	} else {
		scores = s.scorePlusTermsParallel(q.plus, predicate)
	}

	for _, w := range q.minus {
		if postings, ok := s.inverted[w]; ok {
			for id := range postings {
				delete(scores, id)
			}
		}
	}

	docs := make([]Document, 0, len(scores))
	for id, relevance := range scores {
		docs = append(docs, Document{ID: id, Relevance: relevance, Rating: s.documents[id].rating})
	}
	sortDocuments(docs, s.config.RelevanceEpsilon)

	if max := s.config.MaxResultDocumentCount; len(docs) > max {
		docs = docs[:max]
	}
	return docs, nil
}

func (s *SearchServer) scorePlusTermsSequential(plusTerms []string, predicate DocumentPredicate) map[int]float64 {
	scores := make(map[int]float64)
	for _, w := range plusTerms {
		postings, ok := s.inverted[w]
		if !ok || len(postings) == 0 {
			continue
		}
		idf := s.inverseDocumentFrequency(len(postings))
		for id, tf := range postings {
			doc := s.documents[id]
			if predicate(id, doc.status, doc.rating) {
				scores[id] += tf * idf
			}
		}
	}
	return scores
}

func (s *SearchServer) scorePlusTermsParallel(plusTerms []string, predicate DocumentPredicate) map[int]float64 {
	shardMap := NewShardedScoreMap()
	parallelForEach(plusTerms, func(w string) {
		postings, ok := s.inverted[w]
		if !ok || len(postings) == 0 {
			return
		}
		idf := s.inverseDocumentFrequency(len(postings))
		for id, tf := range postings {
			doc := s.documents[id]
			if predicate(id, doc.status, doc.rating) {
				shardMap.Accumulate(id, tf*idf)
			}
		}
	})

	entries := shardMap.BuildOrderedSnapshot()
	scores := make(map[int]float64, len(entries))
	for _, e := range entries {
		scores[e.id] = e.score
	}
	return scores
}

// inverseDocumentFrequency computes log(N / df) for a term seen in df
// documents out of the N currently indexed.
func (s *SearchServer) inverseDocumentFrequency(documentFrequency int) float64 {
	return math.Log(float64(len(s.documents)) / float64(documentFrequency))
}

// sortDocuments orders docs by descending relevance; scores within
// epsilon of each other are considered tied and ordered by descending
// rating instead.
func sortDocuments(docs []Document, epsilon float64) {
	sort.Slice(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if math.Abs(a.Relevance-b.Relevance) < epsilon {
			return a.Rating > b.Rating
		}
		return a.Relevance > b.Relevance
	})
}

// ═══════════════════════════════════════════════════════════════════════════════
// INTROSPECTION
// ═══════════════════════════════════════════════════════════════════════════════

// GetWordFrequencies returns the forward-index entry for id: its
// non-stop-word terms mapped to their term frequency within id. Absent ids
// (and the historical empty-index fallback) return an empty, non-nil map.
func (s *SearchServer) GetWordFrequencies(id int) map[string]float64 {
	freqs, ok := s.forward[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(freqs))
	for w, tf := range freqs {
		out[w] = tf
	}
	return out
}

// Ids returns every currently-present document id, ascending.
func (s *SearchServer) Ids() []int {
	ids := make([]int, 0, s.ids.GetCardinality())
	it := s.ids.Iterator()
	for it.HasNext() {
		ids = append(ids, int(it.Next()))
	}
	return ids
}

// DocumentCount returns the number of documents currently indexed.
func (s *SearchServer) DocumentCount() int {
	return len(s.documents)
}

// ═══════════════════════════════════════════════════════════════════════════════
// PACKAGE OVERVIEW
// ═══════════════════════════════════════════════════════════════════════════════
// ftsengine is an in-memory full-text search engine over short text documents.
//
// Documents are added with an integer id, a text body, a status tag, and a
// list of integer ratings. Clients issue free-text queries made of plus-terms
// and minus-terms; the engine returns the top matching documents ranked by
// TF-IDF relevance, ties broken by average rating.
//
// ARCHITECTURE:
// -------------
//
//	client text ─▶ tokenizer ─▶ stop-word filter ─▶ word store (intern)
//	                                                      │
//	                                    forward index ◀───┼───▶ inverted index
//	                                   (id → word → tf)        (word → id → tf)
//
//	query text  ─▶ query parser ─▶ plus/minus word lists ─▶ SearchServer
//	                                                              │
//	                                      sequential path ◀──────┼──────▶ parallel path
//	                                      (ordered map)                  (sharded map, §4.2)
//
// Every hot operation (top-k search, match, remove) comes in a sequential and
// a parallel form; the parallel forms fan out over a worker pool and use the
// concurrent sharded map to accumulate per-document relevance without lock
// contention. See SPEC_FULL.md for the full module breakdown.
// ═══════════════════════════════════════════════════════════════════════════════
package ftsengine

package ftsengine

// ═══════════════════════════════════════════════════════════════════════════════
// BULK QUERY EXECUTOR
// ═══════════════════════════════════════════════════════════════════════════════
// Runs a batch of queries against FindTopDocumentsActual in parallel,
// mirroring process_queries.cpp's use of std::transform(execution::par, ...):
// queries are spread over a worker pool, results are index-aligned. Errors
// propagate rather than
// being caught — the bulk entry points don't have a reporting sink (§7:
// "The RemoveDuplicates and bulk-query entry points do not catch; they
// propagate").
// ═══════════════════════════════════════════════════════════════════════════════

type queryOutcome struct {
	docs []Document
	err  error
}

// ProcessQueries runs FindTopDocumentsActual for every query in queries in
// parallel, returning one result list per query, index-aligned with the
// input. The first error encountered (by query index) is returned.
func ProcessQueries(server *SearchServer, queries []string) ([][]Document, error) {
	outcomes := make([]queryOutcome, len(queries))
	indices := make([]int, len(queries))
	for i := range queries {
		indices[i] = i
	}

	parallelForEach(indices, func(i int) {
		docs, err := server.FindTopDocumentsActual(queries[i])
		outcomes[i] = queryOutcome{docs: docs, err: err}
	})

	results := make([][]Document, len(queries))
	for i, o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		results[i] = o.docs
	}
	return results, nil
}

// ProcessQueriesJoined is ProcessQueries, concatenating every query's
// result list while preserving per-query ordering and inter-query order.
func ProcessQueriesJoined(server *SearchServer, queries []string) ([]Document, error) {
	perQuery, err := ProcessQueries(server, queries)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, docs := range perQuery {
		total += len(docs)
	}

	joined := make([]Document, 0, total)
	for _, docs := range perQuery {
		joined = append(joined, docs...)
	}
	return joined, nil
}

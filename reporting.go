package ftsengine

import "fmt"

// ═══════════════════════════════════════════════════════════════════════════════
// REPORTING WRAPPERS
// ═══════════════════════════════════════════════════════════════════════════════
// §7's convenience wrappers: each tries the underlying core call and, on
// failure, writes a fixed-format line to sink instead of propagating the
// error. The phrasing — including the two typos — is preserved verbatim
// from the original search-server's free functions, for compatibility with
// anything scripted against its console output.
//
// These wrappers are the core's contract with the printer functions that
// are explicitly out of scope (§1): on success they hand the caller real
// results to format and print; on failure they print the error themselves
// and hand back nothing.
// ═══════════════════════════════════════════════════════════════════════════════

// ReportingSink is anything that can receive the wrappers' diagnostic
// lines — typically os.Stdout or a bytes.Buffer in tests.
type ReportingSink interface {
	Write(p []byte) (n int, err error)
}

// AddDocumentReporting calls server.AddDocument, writing
// "Error in adding document <id>: <message>" to sink on failure instead of
// returning the error.
func AddDocumentReporting(sink ReportingSink, server *SearchServer, id int, body string, status Status, ratings []int) {
	if err := server.AddDocument(id, body, status, ratings); err != nil {
		fmt.Fprintf(sink, "Error in adding document %d: %s\n", id, err.Error())
	}
}

// FindTopDocumentsReporting calls server.FindTopDocumentsActual, writing
// "Error is seaching: <message>" (typo preserved from the original) to
// sink and returning nil on failure.
func FindTopDocumentsReporting(sink ReportingSink, server *SearchServer, raw string) []Document {
	docs, err := server.FindTopDocumentsActual(raw)
	if err != nil {
		fmt.Fprintf(sink, "Error is seaching: %s\n", err.Error())
		return nil
	}
	return docs
}

// MatchDocumentReporting calls server.Match, writing
// "Error in matchig request <q>: <message>" (typo preserved from the
// original) to sink and returning the zero MatchResult on failure.
func MatchDocumentReporting(sink ReportingSink, server *SearchServer, raw string, id int) MatchResult {
	result, err := server.Match(raw, id)
	if err != nil {
		fmt.Fprintf(sink, "Error in matchig request %s: %s\n", raw, err.Error())
		return MatchResult{}
	}
	return result
}

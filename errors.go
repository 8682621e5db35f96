package ftsengine

import (
	"errors"
	"fmt"
)

// ═══════════════════════════════════════════════════════════════════════════════
// ERROR DEFINITIONS
// ═══════════════════════════════════════════════════════════════════════════════
// Sentinel errors, one per failure kind, so callers can compare with
// errors.Is. Several call sites wrap a sentinel with fmt.Errorf to carry the
// offending id/word without losing the ability to match the sentinel.
var (
	ErrInvalidDocumentID = errors.New("invalid document id")
	ErrOutOfRange        = errors.New("out of range")
	ErrInvalidQuery      = errors.New("invalid query")
	ErrInvalidQueryWord  = errors.New("invalid query word")
	ErrInvalidStopWords  = errors.New("invalid stop words")
	ErrInvalidWord       = errors.New("invalid word")
)

func errInvalidDocumentID(id int) error {
	return fmt.Errorf("%w: %d", ErrInvalidDocumentID, id)
}

func errOutOfRange(id int) error {
	return fmt.Errorf("%w: document id %d", ErrOutOfRange, id)
}

func errInvalidWord(word string) error {
	return fmt.Errorf("%w: %q", ErrInvalidWord, word)
}

func errInvalidQueryWord(word string) error {
	return fmt.Errorf("%w: %q", ErrInvalidQueryWord, word)
}

func errInvalidStopWord(word string) error {
	return fmt.Errorf("%w: %q", ErrInvalidStopWords, word)
}

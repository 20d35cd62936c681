// Package ingest bulk-loads record datasets through the domain services.
//
// Records are read one at a time from a Source, handed to a dispatch
// function, and tallied. Individual failures never stop a run; only a source
// that cannot be opened (or read at all) does.
package ingest

import (
	"context"
	"fmt"
)

// Source yields records in order. Next returns io.EOF after the last record
// and a *RecordError for a record that could not be parsed; reading may
// continue after a RecordError.
type Source[T any] interface {
	Next() (T, error)
	Close() error
}

// OpenFunc opens a record source.
type OpenFunc[T any] func() (Source[T], error)

// DispatchFunc hands one parsed record to the storage side.
type DispatchFunc[T any] func(ctx context.Context, record T) error

// RecordError reports a record that could not be parsed.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Outcome is the result of processing a single record.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeParseError
	OutcomeDispatchError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeParseError:
		return "parse_error"
	case OutcomeDispatchError:
		return "dispatch_error"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result tallies the outcomes of a run.
type Result struct {
	Success int `json:"success_count"`
	Errors  int `json:"error_count"`
}

// Tally records one outcome.
func (r *Result) Tally(o Outcome) {
	if o == OutcomeOK {
		r.Success++
		return
	}
	r.Errors++
}

// Add merges another tally into r.
func (r *Result) Add(other Result) {
	r.Success += other.Success
	r.Errors += other.Errors
}

// Total is the number of records seen.
func (r Result) Total() int {
	return r.Success + r.Errors
}

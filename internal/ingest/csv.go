package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
)

// utf8BOM is stripped from the start of a dataset if present.
const utf8BOM = "\ufeff"

// csvSource decodes the rows of a headed CSV stream into T.
type csvSource[T any] struct {
	closer io.Closer
	reader *csv.Reader
	dec    *decoder
}

// OpenCSV opens the CSV file at path as a Source of T. Columns are matched to
// T's `csv` struct tags by header name.
func OpenCSV[T any](path string) (Source[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	src, err := NewCSVSource[T](f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// NewCSVSource reads the header from rc and returns a Source over the
// remaining rows. rc is closed by the source's Close.
func NewCSVSource[T any](rc io.ReadCloser) (Source[T], error) {
	br := bufio.NewReader(rc)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	// Rows with a different field count are reported per record.
	r.FieldsPerRecord = len(header)

	dec, err := newDecoder(reflect.TypeFor[T](), header)
	if err != nil {
		return nil, err
	}
	return &csvSource[T]{closer: rc, reader: r, dec: dec}, nil
}

func (s *csvSource[T]) Next() (T, error) {
	var rec T
	row, err := s.reader.Read()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return rec, &RecordError{Line: pe.StartLine, Err: pe.Err}
		}
		return rec, err
	}

	line, _ := s.reader.FieldPos(0)
	if err := s.dec.decode(row, reflect.ValueOf(&rec).Elem()); err != nil {
		var zero T
		return zero, &RecordError{Line: line, Err: err}
	}
	return rec, nil
}

func (s *csvSource[T]) Close() error {
	return s.closer.Close()
}

package ingest

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/simp-lee/storefront/internal/domain"
)

// sliceSource yields a fixed sequence of records and errors.
type sliceSource struct {
	items  []sliceItem
	pos    int
	closed bool
}

type sliceItem struct {
	rec string
	err error
}

func (s *sliceSource) Next() (string, error) {
	if s.pos >= len(s.items) {
		return "", io.EOF
	}
	it := s.items[s.pos]
	s.pos++
	return it.rec, it.err
}

func (s *sliceSource) Close() error {
	s.closed = true
	return nil
}

func openSlice(src *sliceSource) OpenFunc[string] {
	return func() (Source[string], error) { return src, nil }
}

// recorder is a dispatch target that remembers what it received.
type recorder struct {
	got  []string
	fail map[string]bool
}

func (r *recorder) dispatch(_ context.Context, rec string) error {
	r.got = append(r.got, rec)
	if r.fail[rec] {
		return errors.New("rejected")
	}
	return nil
}

func TestIngest_ValidAndMalformedRecords(t *testing.T) {
	path := writeCSV(t, "customers.csv", customersHeader+
		"c1,u1,01001,sao paulo,SP\n"+
		"c2,u2,01002,sao paulo\n"+
		"c3,u3,20000,rio de janeiro,RJ\n"+
		"c4,u4,\"01\"004,santos,SP\n"+
		"c5,u5,30000,belo horizonte,MG\n")

	var ids []string
	open := func() (Source[domain.CreateCustomerRequest], error) {
		return OpenCSV[domain.CreateCustomerRequest](path)
	}
	res, err := Ingest(context.Background(), open, func(_ context.Context, r domain.CreateCustomerRequest) error {
		ids = append(ids, r.CustomerID)
		return nil
	})
	if err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}
	if res != (Result{Success: 3, Errors: 2}) {
		t.Errorf("Result = %+v; want 3 success, 2 errors", res)
	}
	if len(ids) != 3 || ids[0] != "c1" || ids[1] != "c3" || ids[2] != "c5" {
		t.Errorf("dispatched = %v; want [c1 c3 c5] in order", ids)
	}
}

func TestIngest_DispatchFailuresAreCounted(t *testing.T) {
	src := &sliceSource{items: []sliceItem{{rec: "a"}, {rec: "dup"}, {rec: "b"}, {rec: "dup"}}}
	rec := &recorder{fail: map[string]bool{"dup": true}}

	res, err := Ingest(context.Background(), openSlice(src), rec.dispatch)
	if err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}
	if res != (Result{Success: 2, Errors: 2}) {
		t.Errorf("Result = %+v; want 2/2", res)
	}
	if len(rec.got) != 4 {
		t.Errorf("dispatch calls = %d; want 4 (no dedup)", len(rec.got))
	}
	if !src.closed {
		t.Error("source was not closed")
	}
}

func TestIngest_OpenFailure(t *testing.T) {
	rec := &recorder{}
	open := func() (Source[string], error) { return nil, os.ErrNotExist }

	res, err := Ingest(context.Background(), open, rec.dispatch)
	if !domain.IsConfig(err) {
		t.Fatalf("Ingest() error = %v; want config error", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Ingest() error = %v; want to wrap the open failure", err)
	}
	if res.Total() != 0 || len(rec.got) != 0 {
		t.Errorf("processed %d records, dispatched %d; want none", res.Total(), len(rec.got))
	}
}

func TestIngest_MissingCSVFile(t *testing.T) {
	open := func() (Source[domain.CreateSellerRequest], error) {
		return OpenCSV[domain.CreateSellerRequest](filepath.Join(t.TempDir(), "sellers.csv"))
	}
	res, err := Ingest(context.Background(), open, func(context.Context, domain.CreateSellerRequest) error {
		t.Fatal("dispatch called for a missing file")
		return nil
	})
	if !domain.IsConfig(err) {
		t.Fatalf("Ingest() error = %v; want config error", err)
	}
	if res != (Result{}) {
		t.Errorf("Result = %+v; want zero", res)
	}
}

func TestIngest_ReadFailureStopsRun(t *testing.T) {
	src := &sliceSource{items: []sliceItem{{rec: "a"}, {err: errors.New("disk gone")}, {rec: "b"}}}
	rec := &recorder{}

	res, err := Ingest(context.Background(), openSlice(src), rec.dispatch)
	if !domain.IsConfig(err) {
		t.Fatalf("Ingest() error = %v; want config error", err)
	}
	if res != (Result{Success: 1}) {
		t.Errorf("Result = %+v; want 1 success", res)
	}
	if !src.closed {
		t.Error("source was not closed")
	}
}

func TestIngest_ParseErrorsContinue(t *testing.T) {
	src := &sliceSource{items: []sliceItem{
		{err: &RecordError{Line: 2, Err: errors.New("bad")}},
		{rec: "a"},
		{err: &RecordError{Line: 4, Err: errors.New("bad")}},
	}}
	rec := &recorder{}

	res, err := Ingest(context.Background(), openSlice(src), rec.dispatch)
	if err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}
	if res != (Result{Success: 1, Errors: 2}) {
		t.Errorf("Result = %+v; want 1/2", res)
	}
}

func TestIngest_RunsToCompletionAfterCancel(t *testing.T) {
	src := &sliceSource{items: []sliceItem{{rec: "a"}, {rec: "b"}, {rec: "c"}}}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got []string
	res, err := Ingest(ctx, openSlice(src), func(_ context.Context, rec string) error {
		got = append(got, rec)
		if rec == "a" {
			cancel()
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Ingest() error = %v; want nil", err)
	}
	if res != (Result{Success: 3}) || len(got) != 3 {
		t.Errorf("Result = %+v, dispatched %v; want all 3 records", res, got)
	}
	if !src.closed {
		t.Error("source was not closed")
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{OutcomeOK, "ok"},
		{OutcomeParseError, "parse_error"},
		{OutcomeDispatchError, "dispatch_error"},
		{Outcome(9), "outcome(9)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q; want %q", int(tt.o), got, tt.want)
		}
	}
}

func TestResult_TallyAndAdd(t *testing.T) {
	var r Result
	for _, o := range []Outcome{OutcomeOK, OutcomeParseError, OutcomeOK, OutcomeDispatchError} {
		r.Tally(o)
	}
	if r != (Result{Success: 2, Errors: 2}) {
		t.Errorf("Tally = %+v; want 2/2", r)
	}

	r.Add(Result{Success: 5, Errors: 1})
	if r.Success != 7 || r.Errors != 3 || r.Total() != 10 {
		t.Errorf("after Add = %+v (total %d); want 7/3 total 10", r, r.Total())
	}
}

func TestRecordError(t *testing.T) {
	cause := errors.New("wrong number of fields")
	err := error(&RecordError{Line: 7, Err: cause})

	if err.Error() != "line 7: wrong number of fields" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("RecordError does not unwrap to its cause")
	}
}

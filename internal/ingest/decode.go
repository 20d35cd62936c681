package ingest

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// timeLayouts are tried in order when decoding timestamp cells.
var timeLayouts = []string{
	time.DateTime,
	time.RFC3339,
	time.DateOnly,
}

var (
	stringType     = reflect.TypeOf("")
	stringPtrType  = reflect.TypeOf((*string)(nil))
	intType        = reflect.TypeOf(0)
	intPtrType     = reflect.TypeOf((*int)(nil))
	timeType       = reflect.TypeOf(time.Time{})
	timePtrType    = reflect.TypeOf((*time.Time)(nil))
	decimalType    = reflect.TypeOf(decimal.Decimal{})
	supportedTypes = map[reflect.Type]bool{
		stringType: true, stringPtrType: true,
		intType: true, intPtrType: true,
		timeType: true, timePtrType: true,
		decimalType: true,
	}
)

// column binds one `csv`-tagged struct field to its position in the header.
type column struct {
	name  string
	pos   int
	index []int
}

// decoder fills structs of one type from rows sharing one header.
type decoder struct {
	columns []column
}

// headerIndex maps normalized header names to their positions.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// newDecoder resolves every `csv` tag of t (including promoted fields of
// embedded structs) against header. A tag with no matching column, or a
// field of an unsupported type, is an error.
func newDecoder(t reflect.Type, header []string) (*decoder, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("ingest: record type %s is not a struct", t)
	}

	idx := headerIndex(header)
	d := &decoder{}
	for _, f := range reflect.VisibleFields(t) {
		tag := f.Tag.Get("csv")
		if tag == "" || tag == "-" || !f.IsExported() {
			continue
		}
		if !supportedTypes[f.Type] {
			return nil, fmt.Errorf("ingest: field %s has unsupported type %s", f.Name, f.Type)
		}
		pos, ok := idx[strings.ToLower(tag)]
		if !ok {
			return nil, fmt.Errorf("ingest: column %q not found in header", tag)
		}
		d.columns = append(d.columns, column{name: tag, pos: pos, index: f.Index})
	}
	if len(d.columns) == 0 {
		return nil, fmt.Errorf("ingest: record type %s has no csv fields", t)
	}
	return d, nil
}

// decode fills dst, which must be an addressable struct of the decoder's type.
func (d *decoder) decode(row []string, dst reflect.Value) error {
	for _, c := range d.columns {
		if c.pos >= len(row) {
			return fmt.Errorf("column %s: missing", c.name)
		}
		if err := setCell(dst.FieldByIndex(c.index), strings.TrimSpace(row[c.pos])); err != nil {
			return fmt.Errorf("column %s: %w", c.name, err)
		}
	}
	return nil
}

// setCell parses raw into v. Empty cells leave pointer fields nil and are
// rejected for non-pointer numeric and time fields.
func setCell(v reflect.Value, raw string) error {
	switch p := v.Addr().Interface().(type) {
	case *string:
		*p = raw
	case **string:
		if raw != "" {
			*p = &raw
		}
	case *int:
		n, err := parseInt(raw)
		if err != nil {
			return err
		}
		*p = n
	case **int:
		if raw == "" {
			return nil
		}
		n, err := parseInt(raw)
		if err != nil {
			return err
		}
		*p = &n
	case *time.Time:
		ts, err := parseTime(raw)
		if err != nil {
			return err
		}
		*p = ts
	case **time.Time:
		if raw == "" {
			return nil
		}
		ts, err := parseTime(raw)
		if err != nil {
			return err
		}
		*p = &ts
	case *decimal.Decimal:
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("invalid amount %q", raw)
		}
		*p = amount
	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
	return nil
}

// parseInt accepts plain integers and integral floats such as "225.0".
func parseInt(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty value")
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return int(f), nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

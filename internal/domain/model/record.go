package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record is a loosely typed transaction as supplied by a ledger reader.
// Recognized keys are "amount", "type", "destination" and "timestamp".
type Record map[string]any

// Record keys.
const (
	FieldAmount      = "amount"
	FieldType        = "type"
	FieldDestination = "destination"
	FieldTimestamp   = "timestamp"
)

// FromRecord sanitizes a record into a Transaction. It never fails:
// missing or malformed fields degrade to zero amount, empty strings and an
// absent timestamp.
func FromRecord(r Record) Transaction {
	tx := NewTransaction(
		parseAmount(r[FieldAmount]),
		strings.ToLower(parseString(r[FieldType])),
		parseString(r[FieldDestination]),
	)
	return tx.WithTimestamp(parseTimestamp(r[FieldTimestamp]))
}

// FromRecords sanitizes every record, preserving order.
func FromRecords(records []Record) []Transaction {
	txs := make([]Transaction, len(records))
	for i, r := range records {
		txs[i] = FromRecord(r)
	}
	return txs
}

// parseString renders scalar values in their default text form. Composite
// values and nil yield "".
func parseString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case fmt.Stringer:
		return x.String()
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(x)
	}
	return ""
}

func parseAmount(v any) decimal.Decimal {
	var (
		d   decimal.Decimal
		err error
	)
	switch x := v.(type) {
	case decimal.Decimal:
		d = x
	case *decimal.Decimal:
		if x != nil {
			d = *x
		}
	case float64:
		d, err = fromFloat(x)
	case float32:
		d, err = fromFloat(float64(x))
	case int:
		d = decimal.NewFromInt(int64(x))
	case int8:
		d = decimal.NewFromInt(int64(x))
	case int16:
		d = decimal.NewFromInt(int64(x))
	case int32:
		d = decimal.NewFromInt(int64(x))
	case int64:
		d = decimal.NewFromInt(x)
	case uint:
		d, err = decimal.NewFromString(strconv.FormatUint(uint64(x), 10))
	case uint8:
		d = decimal.NewFromInt(int64(x))
	case uint16:
		d = decimal.NewFromInt(int64(x))
	case uint32:
		d = decimal.NewFromInt(int64(x))
	case uint64:
		d, err = decimal.NewFromString(strconv.FormatUint(x, 10))
	case json.Number:
		d, err = decimal.NewFromString(x.String())
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(x))
	}
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, strconv.ErrRange
	}
	return decimal.NewFromFloat(f), nil
}

func parseTimestamp(v any) time.Time {
	switch x := v.(type) {
	case time.Time:
		return x
	case *time.Time:
		if x != nil {
			return *x
		}
	case string:
		return parseTimestampString(strings.TrimSpace(x))
	case json.Number:
		if sec, err := x.Int64(); err == nil {
			return time.Unix(sec, 0).UTC()
		}
		if f, err := x.Float64(); err == nil {
			return unixFloat(f)
		}
	case int:
		return time.Unix(int64(x), 0).UTC()
	case int64:
		return time.Unix(x, 0).UTC()
	case float64:
		return unixFloat(x)
	}
	return time.Time{}
}

// timestampLayouts are tried in order. Layouts without a zone offset are
// read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestampString(s string) time.Time {
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func unixFloat(f float64) time.Time {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

package database

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	// ErrMissingColumn is returned when a required column is absent from a row.
	ErrMissingColumn = errors.New("missing column")
	// ErrNullColumn is returned when a required column holds NULL.
	ErrNullColumn = errors.New("null column")
	// ErrColumnType is returned when a column value cannot be read as the requested type.
	ErrColumnType = errors.New("unexpected column type")
)

// Row is one result row keyed by column name. Values are normalized by
// normalizeValue, so integers are int64, reals are float64 and text is string
// regardless of which driver produced them.
type Row map[string]any

// Has reports whether the row carries the column at all.
func (r Row) Has(col string) bool {
	_, ok := r[col]
	return ok
}

// Int64 reads a required integer column.
func (r Row) Int64(col string) (int64, error) {
	v, ok := r[col]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumn, col)
	}
	if v == nil {
		return 0, fmt.Errorf("%w: %s", ErrNullColumn, col)
	}
	return toInt64(col, v)
}

// OptInt64 reads an integer column, returning 0 when it is missing or NULL.
func (r Row) OptInt64(col string) (int64, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return 0, nil
	}
	return toInt64(col, v)
}

// NullInt64 reads a nullable integer column. Missing and NULL both yield nil.
func (r Row) NullInt64(col string) (*int64, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return nil, nil
	}
	n, err := toInt64(col, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// OptString reads a text column, returning "" when it is missing or NULL.
func (r Row) OptString(col string) (string, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return "", nil
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	default:
		return "", fmt.Errorf("%w: %s holds %T", ErrColumnType, col, v)
	}
}

// OptFloat64 reads a numeric column as float64, returning 0 when it is missing or NULL.
func (r Row) OptFloat64(col string) (float64, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return 0, nil
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int64:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s holds %q", ErrColumnType, col, t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %s holds %T", ErrColumnType, col, v)
	}
}

func toInt64(col string, v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case float64:
		if t != float64(int64(t)) {
			return 0, fmt.Errorf("%w: %s holds fractional %v", ErrColumnType, col, t)
		}
		return int64(t), nil
	case string:
		// Text-protocol drivers hand integers back as decimal strings.
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s holds %q", ErrColumnType, col, t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s holds %T", ErrColumnType, col, v)
	}
}

// normalizeValue maps a driver value onto the small set of types Row readers understand.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(t)
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		return int64(t)
	case float32:
		return float64(t)
	case bool:
		if t {
			return int64(1)
		}
		return int64(0)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}

package logic

import (
	"errors"
	"fmt"

	"datatable/internal/domain"
)

// Misconfiguration errors. They describe caller mistakes and are reported, not recovered from.
var (
	ErrEmptyColumnKey     = errors.New("column has an empty key")
	ErrDuplicateColumnKey = errors.New("duplicate column key")
	ErrEmptyDataIndex     = errors.New("column has no data index")
	ErrDuplicateRowKey    = errors.New("duplicate row key")
)

// ValidateColumns checks that column keys are present and unique and that
// every column reads some field. All problems are returned joined.
func ValidateColumns(columns []domain.Column) error {
	var errs []error
	seen := make(map[string]bool, len(columns))

	for i, col := range columns {
		if col.Key == "" {
			errs = append(errs, fmt.Errorf("%w: column %d", ErrEmptyColumnKey, i))
			continue
		}
		if seen[col.Key] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateColumnKey, col.Key))
		}
		seen[col.Key] = true
		if col.DataIndex == "" {
			errs = append(errs, fmt.Errorf("%w: %q", ErrEmptyDataIndex, col.Key))
		}
	}

	return errors.Join(errs...)
}

// ValidateRows checks that no two rows share an identity. Each duplicated key
// is reported once.
func ValidateRows[R any](rows []R, key KeyFunc[R]) error {
	key = keyOrDefault(key)

	var errs []error
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		k := key(row)
		counts[k]++
		if counts[k] == 2 {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateRowKey, k))
		}
	}

	return errors.Join(errs...)
}

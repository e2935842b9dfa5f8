package datasource

import (
	"context"
	"errors"

	"datatable/internal/domain"
)

// ErrEmptyQuery is returned when a source has nothing to run
var ErrEmptyQuery = errors.New("empty query")

// Row is a record keyed by column name
type Row = map[string]any

// Source produces rows for a table
type Source interface {
	// Columns describes the rows Load will return without fetching them
	Columns(ctx context.Context) ([]domain.Column, error)
	// Load fetches every row
	Load(ctx context.Context) ([]Row, error)
	Close() error
}

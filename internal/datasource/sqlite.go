package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"datatable/internal/domain"
)

// SQLiteSource reads rows from a query against a SQLite database
type SQLiteSource struct {
	db    *sql.DB
	query string
}

var _ Source = (*SQLiteSource)(nil)

// NewSQLiteSource opens the database at path. The query runs on every Load.
func NewSQLiteSource(path, query string) (*SQLiteSource, error) {
	query = strings.TrimRight(strings.TrimSpace(query), ";")
	if query == "" {
		return nil, ErrEmptyQuery
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &SQLiteSource{db: db, query: query}, nil
}

// Columns returns one sortable column per result column, titled by name
func (s *SQLiteSource) Columns(ctx context.Context) ([]domain.Column, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM ("+s.query+") LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("failed to describe query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	columns := make([]domain.Column, len(names))
	for i, name := range names {
		columns[i] = domain.Column{Key: name, Title: name, DataIndex: name, Sortable: true}
	}
	return columns, nil
}

// Load runs the query and returns every row
func (s *SQLiteSource) Load(ctx context.Context) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	return readRows(rows)
}

// Close closes the database
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// readRows scans every row into a map, turning byte slices into strings
func readRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var results []Row
	for rows.Next() {
		values := make([]any, len(columns))
		scanArgs := make([]any, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}

		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return results, nil
}

// Package pglookup resolves schema reference fields against a PostgreSQL
// table through a pgx connection pool.
//
// Records come back as map[string]any keyed by column name, which the
// jsonresp encoder renders directly. Result sets implement
// jsonresp.Collection so list endpoints can return them as plain arrays.
package pglookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bipsandbytes/echo-api/schema"
	"github.com/jackc/pgx/v5"
)

// Querier is the query surface pglookup needs; *pgxpool.Pool satisfies it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Table is a schema.Lookup that resolves records by primary key from a
// single table.
type Table struct {
	db       Querier
	table    string
	pkColumn string
	columns  []string
}

// New builds a Table lookup. columns restricts which columns appear in the
// returned record; empty means all.
func New(db Querier, table, pkColumn string, columns ...string) *Table {
	return &Table{db: db, table: table, pkColumn: pkColumn, columns: columns}
}

func (t *Table) columnList() string {
	if len(t.columns) == 0 {
		return "*"
	}
	return strings.Join(t.columns, ", ")
}

// FindByPK implements schema.Lookup. A missing row is reported as
// schema.ErrNotFound; every other failure carries the table name.
func (t *Table) FindByPK(ctx context.Context, pk int64) (any, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.columnList(), t.table, t.pkColumn)

	rows, err := t.db.Query(ctx, sql, pk)
	if err != nil {
		return nil, fmt.Errorf("pglookup: query %s: %w", t.table, err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, schema.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("pglookup: collect %s: %w", t.table, err)
	}
	return record, nil
}

// Rows is an ordered result set that encodes as a plain JSON array.
type Rows []map[string]any

// Items implements jsonresp.Collection.
func (r Rows) Items() []any {
	items := make([]any, len(r))
	for i := range r {
		items[i] = r[i]
	}
	return items
}

// SelectAll loads up to limit rows of the table ordered by primary key.
func (t *Table) SelectAll(ctx context.Context, limit int) (Rows, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s LIMIT $1", t.columnList(), t.table, t.pkColumn)

	rows, err := t.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("pglookup: query %s: %w", t.table, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("pglookup: collect %s: %w", t.table, err)
	}
	return Rows(records), nil
}

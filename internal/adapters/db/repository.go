// internal/adapters/db/repository.go
package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/sondurak/garage-be/internal/pkg/paging"
	"github.com/sondurak/garage-be/internal/report"
)

// countRows counts the filtered set before pagination is applied.
func countRows(ctx context.Context, db *Database, qb squirrel.SelectBuilder) (int64, error) {
	countQb := squirrel.Select("COUNT(*)").
		FromSelect(qb, "filtered").
		PlaceholderFormat(squirrel.Dollar)
	countSQL, countArgs, err := countQb.ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	err = db.QueryRow(ctx, countSQL, countArgs...).Scan(&total)
	if err != nil && err != pgx.ErrNoRows {
		return 0, err
	}
	return total, nil
}

// paginate applies the query's page window. A zero PageSize leaves the
// query unbounded so exporters can read the full filtered set.
func paginate(qb squirrel.SelectBuilder, q report.Query) squirrel.SelectBuilder {
	if q.PageSize <= 0 {
		return qb
	}
	qb = qb.Limit(uint64(q.PageSize))
	if offset := paging.Offset(q.Page, q.PageSize); offset > 0 {
		qb = qb.Offset(uint64(offset))
	}
	return qb
}

// joinName assembles a display name from nullable name columns.
func joinName(first, last sql.NullString) string {
	return strings.TrimSpace(strings.TrimSpace(first.String) + " " + strings.TrimSpace(last.String))
}

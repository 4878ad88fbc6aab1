package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUndefinedTable  = "42P01"
	pgUndefinedColumn = "42703"
)

// IsSchemaMissing reports whether an error comes from querying a table or
// column that has not been migrated yet. Read projections use it to degrade
// to empty results on fresh tenants instead of failing the request.
func IsSchemaMissing(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable || pgErr.Code == pgUndefinedColumn
	}

	// sqlite (in-memory test driver) reports the same condition as a plain
	// error string.
	msg := err.Error()
	return strings.Contains(msg, "no such table") || strings.Contains(msg, "no such column")
}

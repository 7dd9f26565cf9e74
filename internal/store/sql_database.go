package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"phishguard/internal/logger"
	"phishguard/migrations"
)

// DB wraps a relational connection together with the dialect-specific
// pieces the user repository needs: a placeholder-aware query builder, a
// driver error classifier, and the goose dialect name.
type DB struct {
	*sql.DB
	builder    sq.StatementBuilderType
	classifier errorClassifier
	dialect    string
	logger     *logger.Logger
}

// Migrate applies the embedded schema migrations for this connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// errorClassifier translates driver-level errors into store semantics.
type errorClassifier interface {
	// IsUniqueViolation reports whether err came from a violated unique
	// constraint (duplicate login).
	IsUniqueViolation(err error) bool
}

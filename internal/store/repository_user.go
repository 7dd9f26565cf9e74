package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"phishguard/internal/logger"
	"phishguard/models"
)

// userRepository is the SQL-backed implementation of [CredentialStore].
// It works against either dialect: the wrapped [DB] carries the matching
// placeholder format and driver error classifier.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [CredentialStore] backed by the provided
// database connection.
func NewUserRepository(db *DB, logger *logger.Logger) CredentialStore {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account.
//
// Error handling:
//   - unique constraint violation → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("login", "password").
		Values(user.Login, user.Password).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")

		if r.db.classifier.IsUniqueViolation(err) {
			return ErrLoginAlreadyExists
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindUserByLogin retrieves the account whose login matches exactly.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("login", "password", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building select query: %w", err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.Login, &found.Password, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-coin-favorites/internal/logger"
	"github.com/MKhiriev/go-coin-favorites/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the SQL implementation of [UserRepository]. It handles
// user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record. The email is normalized again
// before storing, so no caller can bypass normalization.
//
// The INSERT relies on the unique index over email; there is no
// read-before-write, so two concurrent registrations of the same email
// cannot both succeed.
//
// Error handling:
//   - unique violation → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	user.Email = models.NormalizeEmail(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	query, args, err := buildInsertUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		if r.errorClassificator.Violation(err) == UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email is already registered")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Str("user_id", user.ID).Msg("user created")
	return user, nil
}

// FindUserByEmail retrieves the user whose normalized email equals the
// normalized form of email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": models.NormalizeEmail(email)})
}

// FindUserByID retrieves the user with the given identifier.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := buildSelectUserQuery(r.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&foundUser.ID,
		&foundUser.Email,
		&foundUser.PasswordHash,
		&foundUser.PasswordSalt,
		&foundUser.PasswordIterations,
		&foundUser.CreatedAt,
		&foundUser.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", funcName).Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}

// TouchLogin sets updated_at of the user to at.
func (r *userRepository) TouchLogin(ctx context.Context, userID string, at time.Time) error {
	log := logger.FromContext(ctx)

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query, args, err := buildTouchLoginQuery(r.builder, userID, at.UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLogin").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLogin").Str("user_id", userID).Msg("failed to update user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{db: db}
}

// CreateUser persists a new user record and returns it with the
// database-assigned ID.
//
// Error handling:
//   - unique violation (pg 23505, sqlite CONSTRAINT_UNIQUE) → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already taken")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByUsername retrieves the user whose username matches exactly.
// [ErrUserNotFound] is returned when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Username, &found.Password, &found.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsersByUsernameQuery(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByUsername").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByUsername").Msg("error counting users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (r *userRepository) UpdateUserRole(ctx context.Context, userID int64, role string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserRoleQuery(r.db.builder, userID, role)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserRole").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserRole").Msg("error updating role")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

package repos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/yungbote/contacts-backend/internal/db"
	"github.com/yungbote/contacts-backend/internal/hash"
	"github.com/yungbote/contacts-backend/internal/platform/apierr"
	"github.com/yungbote/contacts-backend/internal/platform/logger"
	"github.com/yungbote/contacts-backend/internal/types"
)

const (
	sqlFindUserByEmail = `
		SELECT user_key, first_name, last_name, email, created_at, updated_at
		FROM users
		WHERE email = $1`

	sqlFindUserByKey = `
		SELECT user_key, first_name, last_name, email, created_at, updated_at
		FROM users
		WHERE user_key = $1`

	// A conflict on either the key (hash of email) or the email unique
	// constraint means the same thing: duplicate email. Unlike addresses,
	// that race must fail loudly, so the empty RETURNING becomes a Conflict.
	sqlInsertUser = `
		INSERT INTO users (user_key, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
		RETURNING user_key, first_name, last_name, email, created_at, updated_at`

	sqlUpdateUserNames = `
		UPDATE users
		SET first_name = $1, last_name = $2, updated_at = now()
		WHERE email = $3
		RETURNING user_key, first_name, last_name, email, created_at, updated_at`

	sqlDeleteUserByKey = `DELETE FROM users WHERE user_key = $1`

	sqlListUsers = `
		SELECT user_key, first_name, last_name, email, created_at, updated_at
		FROM users
		ORDER BY created_at DESC, email`
)

type UserRepo interface {
	Create(ctx context.Context, firstName, lastName, email string) (*types.User, db.Outcome, error)
	FindByEmail(ctx context.Context, email string) (*types.User, error)
	FindByKey(ctx context.Context, key string) (*types.User, error)
	UpdateNames(ctx context.Context, email, firstName, lastName string) (*types.User, error)
	DeleteByKey(ctx context.Context, key string) (int64, error)
	List(ctx context.Context) ([]*types.User, error)
}

type userRepo struct {
	exec db.Executor
	log  *logger.Logger
}

func NewUserRepo(exec db.Executor, baseLog *logger.Logger) UserRepo {
	return &userRepo{exec: exec, log: baseLog.With("repo", "UserRepo")}
}

// Emails are stored and looked up in normalized form so that the unique
// constraint agrees with the key derivation.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (ur *userRepo) Create(ctx context.Context, firstName, lastName, email string) (*types.User, db.Outcome, error) {
	normalized := normalizeEmail(email)
	key := hash.UserKey(email)

	existing, err := ur.FindByEmail(ctx, email)
	if err == nil {
		return existing, db.OutcomeAlreadyExists, nil
	}
	if !apierr.Is(err, apierr.CodeNotFound) {
		return nil, 0, err
	}

	user := &types.User{}
	row := ur.exec.QueryRow(ctx, sqlInsertUser, key, firstName, lastName, normalized)
	err = row.Scan(&user.UserKey, &user.FirstName, &user.LastName, &user.Email,
		&user.CreatedAt, &user.UpdatedAt)
	if err == nil {
		ur.log.Debug("User inserted", "user_key", key)
		return user, db.OutcomeInserted, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, 0, apierr.Conflict("duplicate email")
	}
	return nil, 0, fmt.Errorf("insert user: %w", err)
}

func (ur *userRepo) FindByEmail(ctx context.Context, email string) (*types.User, error) {
	user := &types.User{}
	row := ur.exec.QueryRow(ctx, sqlFindUserByEmail, normalizeEmail(email))
	err := row.Scan(&user.UserKey, &user.FirstName, &user.LastName, &user.Email,
		&user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func (ur *userRepo) FindByKey(ctx context.Context, key string) (*types.User, error) {
	user := &types.User{}
	row := ur.exec.QueryRow(ctx, sqlFindUserByKey, key)
	err := row.Scan(&user.UserKey, &user.FirstName, &user.LastName, &user.Email,
		&user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find user by key: %w", err)
	}
	return user, nil
}

// UpdateNames touches only the mutable name fields. Email and key are
// immutable identifiers.
func (ur *userRepo) UpdateNames(ctx context.Context, email, firstName, lastName string) (*types.User, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, apierr.Validation("missing required fields")
	}

	user := &types.User{}
	row := ur.exec.QueryRow(ctx, sqlUpdateUserNames, firstName, lastName, normalizeEmail(email))
	err := row.Scan(&user.UserKey, &user.FirstName, &user.LastName, &user.Email,
		&user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update user names: %w", err)
	}
	return user, nil
}

func (ur *userRepo) List(ctx context.Context) ([]*types.User, error) {
	rows, err := ur.exec.Query(ctx, sqlListUsers)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var results []*types.User
	for rows.Next() {
		user := &types.User{}
		if err := rows.Scan(&user.UserKey, &user.FirstName, &user.LastName, &user.Email,
			&user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		results = append(results, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return results, nil
}

func (ur *userRepo) DeleteByKey(ctx context.Context, key string) (int64, error) {
	deleted, err := ur.exec.Exec(ctx, sqlDeleteUserByKey, key)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return deleted, nil
}

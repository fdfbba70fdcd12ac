package repository

import (
	"context"
	"strings"

	"internhub/internal/database"
	"internhub/internal/domain/user"

	"github.com/google/uuid"
)

const userColumns = `id, email, password_hash, role, full_name, cv_file_id, created_at`

type PostgresUserRepository struct {
	db database.DB
}

var _ user.Repository = (*PostgresUserRepository)(nil)

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	const op = "create user"
	u.Email = normalizeEmail(u.Email)
	if err := validateUser(op, u); err != nil {
		return user.User{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role, full_name, cv_file_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		u.Email, u.PasswordHash, string(u.Role), u.FullName, u.CVFileID,
	)
	created, err := scanUser(row)
	if err != nil {
		return user.User{}, translate(op, err)
	}
	return created, nil
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id uuid.UUID) (user.User, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return findOne("find user", row, scanUser)
}

// FindByEmail matches case-insensitively, the same way the unique index
// on lower(email) compares addresses.
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (user.User, bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return user.User{}, false, nil
	}
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return findOne("find user by email", row, scanUser)
}

func (r *PostgresUserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return existsQuery(ctx, r.db, "user exists", `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}
	return existsQuery(ctx, r.db, "user exists by email", `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`, email)
}

// Update writes the mutable columns: email, password hash, full name and
// CV reference. Role and created_at never change.
func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	const op = "update user"
	u.Email = normalizeEmail(u.Email)
	if err := validateUser(op, u); err != nil {
		return user.User{}, err
	}

	row := r.db.QueryRow(ctx,
		`UPDATE users
		 SET email = $1, password_hash = $2, full_name = $3, cv_file_id = $4
		 WHERE id = $5
		 RETURNING `+userColumns,
		u.Email, u.PasswordHash, u.FullName, u.CVFileID, u.ID,
	)
	return updateOne(op, "user not found", row, scanUser)
}

// SetCVFile points the user's CV reference at fileID, or clears it when
// fileID is nil. Only the file's existence is checked; whether the user
// owns it is left to the caller.
func (r *PostgresUserRepository) SetCVFile(ctx context.Context, userID uuid.UUID, fileID *uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users SET cv_file_id = $1 WHERE id = $2 RETURNING `+userColumns,
		fileID, userID,
	)
	return updateOne("set user cv file", "user not found", row, scanUser)
}

// normalizeEmail trims surrounding space. Case is kept as given; lookups
// and the unique index compare lower(email).
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func validateUser(op string, u user.User) error {
	if strings.TrimSpace(u.Email) == "" {
		return validationError(op, "email is required", nil)
	}
	if u.PasswordHash == "" {
		return validationError(op, "password hash is required", nil)
	}
	if !u.Role.Valid() {
		return validationError(op, "unknown role "+string(u.Role), nil)
	}
	if strings.TrimSpace(u.FullName) == "" {
		return validationError(op, "full name is required", nil)
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.FullName, &u.CVFileID, &u.CreatedAt); err != nil {
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	pgdb "job-bridge/internal/database/postgres"
	"job-bridge/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB

	stmtCreate        *sql.Stmt
	stmtGetByID       *sql.Stmt
	stmtGetByUsername *sql.Stmt
}

// NewUserRepository prepares the hot-path statements on db. Close releases
// them.
func NewUserRepository(ctx context.Context, db *sql.DB) (*UserRepository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	r := &UserRepository{db: db}

	var err error
	r.stmtCreate, err = db.PrepareContext(
		ctx,
		`INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtGetByID, err = db.PrepareContext(
		ctx,
		`SELECT id, username, email, password_hash, role, created_at FROM users WHERE id = $1`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	r.stmtGetByUsername, err = db.PrepareContext(
		ctx,
		`SELECT id, username, email, password_hash, role, created_at FROM users WHERE username = $1 AND role = $2`,
	)
	if err != nil {
		_ = r.Close()
		return nil, err
	}

	return r, nil
}

func (r *UserRepository) Close() error {
	var firstErr error
	closeStmt := func(s *sql.Stmt) {
		if s == nil {
			return
		}
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	closeStmt(r.stmtCreate)
	closeStmt(r.stmtGetByID)
	closeStmt(r.stmtGetByUsername)

	return firstErr
}

func (r *UserRepository) CreateUser(ctx context.Context, u user.User) (user.User, error) {
	err := r.stmtCreate.QueryRowContext(ctx, u.Username, u.Email, u.PasswordHash, string(u.Role)).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if pgdb.IsUniqueViolation(err) {
			return user.User{}, conflictError(err)
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (user.User, error) {
	return scanUser(r.stmtGetByID.QueryRowContext(ctx, id))
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string, role user.Role) (user.User, error) {
	return scanUser(r.stmtGetByUsername.QueryRowContext(ctx, username, string(role)))
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, email, '' AS password_hash, role, created_at FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func conflictError(err error) error {
	switch pgdb.ConstraintName(err) {
	case "users_username_key":
		return &user.ConflictError{Field: "username"}
	case "users_email_key":
		return &user.ConflictError{Field: "email"}
	default:
		return &user.ConflictError{}
	}
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		if pgdb.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	u.Role = user.Role(role)
	return u, nil
}

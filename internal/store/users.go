package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/dispatch/internal/domain"
)

// Tx is one invocation's view of the user table. It must end with exactly one
// effective Commit or Rollback; further calls are no-ops.
type Tx struct {
	tx   *sql.Tx
	done bool
}

// Commit makes the invocation's changes durable.
func (t *Tx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Commit()
}

// Rollback discards the invocation's changes.
func (t *Tx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.tx.Rollback()
}

// CreateUser inserts user, assigning an id and creation time when missing.
func (t *Tx) CreateUser(ctx context.Context, user domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO users (id, name, admin, age, created_at) VALUES (?, ?, ?, ?, ?)`,
		user.ID,
		user.Name,
		boolToInt(user.Admin),
		user.Age,
		user.CreatedAt.Format(time.RFC3339),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrUserExists, user.Name)
	}
	return err
}

// RemoveUser deletes a user by name.
func (t *Tx) RemoveUser(ctx context.Context, name string) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM users WHERE name = ?`, name)
	if err != nil {
		return err
	}
	return requireAffected(res, name)
}

// RenameUser changes a user's name.
func (t *Tx) RenameUser(ctx context.Context, from, to string) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE users SET name = ? WHERE name = ?`, to, from)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrUserExists, to)
	}
	if err != nil {
		return err
	}
	return requireAffected(res, from)
}

// ListUsers returns users matching filter ordered by name.
func (t *Tx) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	query := `SELECT id, name, admin, age, created_at FROM users`

	var (
		clauses []string
		args    []any
	)

	if filter.AdminOnly {
		clauses = append(clauses, "admin = 1")
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY name ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanUser(rows *sql.Rows) (domain.User, error) {
	var (
		u     domain.User
		admin int
		ts    string
	)

	if err := rows.Scan(&u.ID, &u.Name, &admin, &u.Age, &ts); err != nil {
		return domain.User{}, err
	}

	created, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return domain.User{}, fmt.Errorf("parse created_at for %s: %w", u.Name, err)
	}

	u.Admin = admin != 0
	u.CreatedAt = created
	return u, nil
}

func requireAffected(res sql.Result, name string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, name)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Verify Tx implements domain.UserStore
var _ domain.UserStore = (*Tx)(nil)

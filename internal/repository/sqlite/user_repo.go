package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lavrov08/trainers-tinder/internal/domain"
)

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Upsert(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (user_id, username, role) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			username = excluded.username,
			role = CASE WHEN excluded.role = '' THEN users.role ELSE excluded.role END`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, string(user.Role))
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT user_id, username, role FROM users WHERE user_id = ?`
	var user domain.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) UpdateRole(ctx context.Context, id int64, role domain.Role) error {
	query := `UPDATE users SET role = ? WHERE user_id = ?`
	result, err := r.db.ExecContext(ctx, query, string(role), id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lavrov08/trainers-tinder/internal/domain"
)

type clientRepo struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) domain.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *domain.Client) error {
	query := `INSERT OR REPLACE INTO clients (user_id, username, likes_count) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, client.UserID, client.Username, client.LikesCount)
	return err
}

func (r *clientRepo) GetByID(ctx context.Context, userID int64) (*domain.Client, error) {
	query := `SELECT user_id, username, likes_count FROM clients WHERE user_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID))
}

func (r *clientRepo) GetByUsername(ctx context.Context, username string) (*domain.Client, error) {
	query := `SELECT user_id, username, likes_count FROM clients WHERE username = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

// SpendLike is the conditional check-and-subtract: the WHERE clause keeps
// the balance from ever going negative.
func (r *clientRepo) SpendLike(ctx context.Context, userID int64) (bool, error) {
	query := `UPDATE clients SET likes_count = likes_count - 1 WHERE user_id = ? AND likes_count >= 1`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *clientRepo) CreditLikes(ctx context.Context, userID int64, amount int) error {
	query := `INSERT INTO clients (user_id, likes_count) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET likes_count = likes_count + excluded.likes_count`
	_, err := r.db.ExecContext(ctx, query, userID, amount)
	return err
}

func (r *clientRepo) scanOne(row *sql.Row) (*domain.Client, error) {
	var client domain.Client
	err := row.Scan(&client.UserID, &client.Username, &client.LikesCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

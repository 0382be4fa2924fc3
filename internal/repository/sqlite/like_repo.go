package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lavrov08/trainers-tinder/internal/domain"
)

type likeRepo struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) domain.LikeRepository {
	return &likeRepo{db: db}
}

func (r *likeRepo) Create(ctx context.Context, like *domain.Like) error {
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO likes (client_id, client_username, trainer_id, created_at)
		VALUES (?, ?, ?, ?) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		like.ClientID, like.ClientUsername, like.TrainerID, toMillis(like.CreatedAt),
	).Scan(&like.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *likeRepo) Exists(ctx context.Context, clientID, trainerID int64) (bool, error) {
	query := `SELECT 1 FROM likes WHERE client_id = ? AND trainer_id = ?`
	var one int
	err := r.db.QueryRowContext(ctx, query, clientID, trainerID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *likeRepo) ListByTrainer(ctx context.Context, trainerID int64) ([]domain.Like, error) {
	query := `SELECT id, client_id, client_username, trainer_id, created_at
		FROM likes WHERE trainer_id = ? ORDER BY created_at DESC`
	return r.list(ctx, query, trainerID)
}

func (r *likeRepo) ListByClient(ctx context.Context, clientID int64) ([]domain.Like, error) {
	query := `SELECT id, client_id, client_username, trainer_id, created_at
		FROM likes WHERE client_id = ? ORDER BY created_at DESC`
	return r.list(ctx, query, clientID)
}

func (r *likeRepo) CountByTrainer(ctx context.Context, trainerID int64) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM likes WHERE trainer_id = ?`, trainerID).Scan(&total)
	return total, err
}

func (r *likeRepo) list(ctx context.Context, query string, args ...any) ([]domain.Like, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []domain.Like
	for rows.Next() {
		var like domain.Like
		var createdAt int64
		if err := rows.Scan(&like.ID, &like.ClientID, &like.ClientUsername, &like.TrainerID, &createdAt); err != nil {
			return nil, err
		}
		like.CreatedAt = fromMillis(createdAt)
		likes = append(likes, like)
	}
	return likes, rows.Err()
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lavrov08/trainers-tinder/internal/domain"
)

type trainerRepo struct {
	db *sql.DB
}

func NewTrainerRepository(db *sql.DB) domain.TrainerRepository {
	return &trainerRepo{db: db}
}

const trainerColumns = `id, user_id, username, direction, name, age, experience, about, photo_id, status, created_at`

func (r *trainerRepo) Upsert(ctx context.Context, trainer *domain.Trainer) error {
	if trainer.CreatedAt.IsZero() {
		trainer.CreatedAt = time.Now().UTC()
	}
	// On conflict the surrogate id and created_at of the existing row are
	// kept; everything else is overwritten.
	query := `INSERT INTO trainers (user_id, username, direction, name, age, experience, about, photo_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			username = excluded.username,
			direction = excluded.direction,
			name = excluded.name,
			age = excluded.age,
			experience = excluded.experience,
			about = excluded.about,
			photo_id = excluded.photo_id,
			status = excluded.status
		RETURNING id, created_at`
	var createdAt int64
	err := r.db.QueryRowContext(ctx, query,
		trainer.UserID, trainer.Username, trainer.Direction, trainer.Name,
		trainer.Age, trainer.Experience, trainer.About, trainer.PhotoID,
		string(trainer.Status), toMillis(trainer.CreatedAt),
	).Scan(&trainer.ID, &createdAt)
	if err != nil {
		return err
	}
	trainer.CreatedAt = fromMillis(createdAt)
	return nil
}

func (r *trainerRepo) GetByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE id = ?`
	return scanTrainer(r.db.QueryRowContext(ctx, query, id))
}

func (r *trainerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE user_id = ?`
	return scanTrainer(r.db.QueryRowContext(ctx, query, userID))
}

func (r *trainerRepo) ListPending(ctx context.Context) ([]domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE status = 'pending' ORDER BY created_at`
	return r.list(ctx, query)
}

func (r *trainerRepo) ListApprovedByDirection(ctx context.Context, direction string) ([]domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers
		WHERE status = 'approved' AND direction = ? ORDER BY created_at DESC`
	return r.list(ctx, query, direction)
}

func (r *trainerRepo) ListApproved(ctx context.Context) ([]domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers
		WHERE status = 'approved' ORDER BY direction, created_at DESC`
	return r.list(ctx, query)
}

func (r *trainerRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	query := `UPDATE trainers SET status = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, string(status), id)
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

// Delete removes the profile and cascades to its likes inside one
// transaction, so a half-deleted profile is never observable.
func (r *trainerRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE trainer_id = ?`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM trainers WHERE id = ?`, id)
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
	return tx.Commit()
}

func (r *trainerRepo) list(ctx context.Context, query string, args ...any) ([]domain.Trainer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainers []domain.Trainer
	for rows.Next() {
		var t domain.Trainer
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.UserID, &t.Username, &t.Direction, &t.Name,
			&t.Age, &t.Experience, &t.About, &t.PhotoID, &t.Status, &createdAt); err != nil {
			return nil, err
		}
		t.CreatedAt = fromMillis(createdAt)
		trainers = append(trainers, t)
	}
	return trainers, rows.Err()
}

func scanTrainer(row *sql.Row) (*domain.Trainer, error) {
	var t domain.Trainer
	var createdAt int64
	err := row.Scan(&t.ID, &t.UserID, &t.Username, &t.Direction, &t.Name,
		&t.Age, &t.Experience, &t.About, &t.PhotoID, &t.Status, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.CreatedAt = fromMillis(createdAt)
	return &t, nil
}

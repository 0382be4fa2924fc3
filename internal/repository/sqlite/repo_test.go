package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/lavrov08/trainers-tinder/internal/domain"
	"github.com/lavrov08/trainers-tinder/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqlite.InitSchema(context.Background(), db))
	return db
}

func seedTrainer(t *testing.T, repo domain.TrainerRepository, userID int64, direction string, status domain.Status) *domain.Trainer {
	t.Helper()
	trainer := &domain.Trainer{
		UserID:     userID,
		Username:   "trainer",
		Direction:  direction,
		Name:       "Name",
		Age:        30,
		Experience: "5 years",
		About:      "Long enough description of the training approach.",
		Status:     status,
	}
	require.NoError(t, repo.Upsert(context.Background(), trainer))
	return trainer
}

func TestUserRepo(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Should upsert and keep the role across plain upserts", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, &domain.User{ID: 1, Username: "anna", Role: domain.RoleClient}))

		// A later contact without a role must not erase the stored one.
		require.NoError(t, repo.Upsert(ctx, &domain.User{ID: 1, Username: "anna_new"}))

		user, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "anna_new", user.Username)
		assert.Equal(t, domain.RoleClient, user.Role)
	})

	t.Run("Should map a missing user to ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Should switch the role explicitly", func(t *testing.T) {
		require.NoError(t, repo.UpdateRole(ctx, 1, domain.RoleTrainer))
		user, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleTrainer, user.Role)
	})
}

func TestClientRepoBalance(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewClientRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Client{UserID: 1, Username: "masha", LikesCount: 2}))

	t.Run("Should spend down to zero and then refuse", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			ok, err := repo.SpendLike(ctx, 1)
			require.NoError(t, err)
			assert.True(t, ok)
		}
		ok, err := repo.SpendLike(ctx, 1)
		require.NoError(t, err)
		assert.False(t, ok)

		client, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, client.LikesCount)
	})

	t.Run("Should add credits on top of the current balance", func(t *testing.T) {
		require.NoError(t, repo.CreditLikes(ctx, 1, 3))
		require.NoError(t, repo.CreditLikes(ctx, 1, 15))

		client, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 18, client.LikesCount)
	})

	t.Run("Should create the row when crediting an unknown client", func(t *testing.T) {
		require.NoError(t, repo.CreditLikes(ctx, 2, 5))
		client, err := repo.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, client.LikesCount)
	})

	t.Run("Should find a client by username", func(t *testing.T) {
		client, err := repo.GetByUsername(ctx, "masha")
		require.NoError(t, err)
		assert.Equal(t, int64(1), client.UserID)

		_, err = repo.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTrainerRepo(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewTrainerRepository(db)
	ctx := context.Background()

	t.Run("Should assign ids and overwrite on re-registration", func(t *testing.T) {
		first := seedTrainer(t, repo, 10, "Fitness", domain.StatusRejected)
		assert.NotZero(t, first.ID)

		again := &domain.Trainer{
			UserID:     10,
			Username:   "trainer",
			Direction:  "Yoga",
			Name:       "Renamed",
			Age:        31,
			Experience: "6 years",
			About:      "Another long enough description of the approach.",
			Status:     domain.StatusPending,
		}
		require.NoError(t, repo.Upsert(ctx, again))
		assert.Equal(t, first.ID, again.ID)

		stored, err := repo.GetByUserID(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", stored.Name)
		assert.Equal(t, domain.StatusPending, stored.Status)
	})

	t.Run("Should list by status and direction", func(t *testing.T) {
		seedTrainer(t, repo, 11, "Fitness", domain.StatusApproved)
		seedTrainer(t, repo, 12, "Fitness", domain.StatusApproved)
		seedTrainer(t, repo, 13, "Yoga", domain.StatusApproved)

		pending, err := repo.ListPending(ctx)
		require.NoError(t, err)
		assert.Len(t, pending, 1)

		fitness, err := repo.ListApprovedByDirection(ctx, "Fitness")
		require.NoError(t, err)
		assert.Len(t, fitness, 2)

		all, err := repo.ListApproved(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("Should transition status", func(t *testing.T) {
		trainer, err := repo.GetByUserID(ctx, 10)
		require.NoError(t, err)
		require.NoError(t, repo.UpdateStatus(ctx, trainer.ID, domain.StatusApproved))

		updated, err := repo.GetByID(ctx, trainer.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, updated.Status)
	})

	t.Run("Should cascade likes on delete", func(t *testing.T) {
		likeRepo := sqlite.NewLikeRepository(db)
		trainer, err := repo.GetByUserID(ctx, 11)
		require.NoError(t, err)

		require.NoError(t, likeRepo.Create(ctx, &domain.Like{ClientID: 500, TrainerID: trainer.ID}))
		require.NoError(t, repo.Delete(ctx, trainer.ID))

		_, err = repo.GetByID(ctx, trainer.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		count, err := likeRepo.CountByTrainer(ctx, trainer.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Should report deleting a missing trainer", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, 9999), domain.ErrNotFound)
	})
}

func TestLikeRepo(t *testing.T) {
	db := newTestDB(t)
	trainerRepo := sqlite.NewTrainerRepository(db)
	repo := sqlite.NewLikeRepository(db)
	ctx := context.Background()

	trainer := seedTrainer(t, trainerRepo, 20, "Fitness", domain.StatusApproved)
	other := seedTrainer(t, trainerRepo, 21, "Fitness", domain.StatusApproved)

	t.Run("Should record a like exactly once per pair", func(t *testing.T) {
		like := &domain.Like{ClientID: 5, ClientUsername: "masha", TrainerID: trainer.ID}
		require.NoError(t, repo.Create(ctx, like))
		assert.NotZero(t, like.ID)

		err := repo.Create(ctx, &domain.Like{ClientID: 5, TrainerID: trainer.ID})
		assert.ErrorIs(t, err, domain.ErrDuplicate)

		exists, err := repo.Exists(ctx, 5, trainer.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, 5, other.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Should list and count per trainer and per client", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &domain.Like{ClientID: 6, TrainerID: trainer.ID}))
		require.NoError(t, repo.Create(ctx, &domain.Like{ClientID: 5, TrainerID: other.ID}))

		byTrainer, err := repo.ListByTrainer(ctx, trainer.ID)
		require.NoError(t, err)
		assert.Len(t, byTrainer, 2)

		byClient, err := repo.ListByClient(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, byClient, 2)

		count, err := repo.CountByTrainer(ctx, trainer.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

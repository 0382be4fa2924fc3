package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lavrov08/trainers-tinder/internal/domain"
	"github.com/lavrov08/trainers-tinder/internal/session"
	"github.com/lavrov08/trainers-tinder/internal/usecase"
)

func approvedTrainers(n int) []domain.Trainer {
	out := make([]domain.Trainer, n)
	for i := range out {
		out[i] = domain.Trainer{
			ID:        int64(i + 1),
			UserID:    int64(1000 + i),
			Direction: "Fitness",
			Name:      "Trainer",
			Status:    domain.StatusApproved,
		}
	}
	return out
}

func newBrowse(trainers *MockTrainerRepo, likes *MockLikeRepo, clients *MockClientRepo, notifier *MockNotifier) (*usecase.BrowseUsecase, *session.Store) {
	sessions := session.NewStore()
	uc := usecase.NewBrowseUsecase(trainers, likes, clients, sessions, notifier, testConfig())
	return uc, sessions
}

func TestBrowseNavigation(t *testing.T) {
	trainers := new(MockTrainerRepo)
	likes := new(MockLikeRepo)
	uc, _ := newBrowse(trainers, likes, new(MockClientRepo), new(MockNotifier))

	list := approvedTrainers(3)
	trainers.On("ListApprovedByDirection", mock.Anything, "Fitness").Return(list, nil)
	for i := range list {
		tr := list[i]
		trainers.On("GetByID", mock.Anything, tr.ID).Return(&tr, nil)
		likes.On("Exists", mock.Anything, int64(5), tr.ID).Return(false, nil)
	}

	view, err := uc.SelectDirection(context.Background(), 5, "Fitness")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), view.Trainer.ID)
	assert.Equal(t, 0, view.Index)
	assert.Equal(t, 3, view.Total)

	t.Run("Should wrap backwards from the first card", func(t *testing.T) {
		view, err := uc.Prev(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), view.Trainer.ID)
	})

	t.Run("Should return to the start after a full cycle forward", func(t *testing.T) {
		start, err := uc.Current(context.Background(), 5)
		assert.NoError(t, err)
		for i := 0; i < 3; i++ {
			view, err = uc.Next(context.Background(), 5)
			assert.NoError(t, err)
		}
		assert.Equal(t, start.Trainer.ID, view.Trainer.ID)
	})

	t.Run("Should reject an unknown direction", func(t *testing.T) {
		_, err := uc.SelectDirection(context.Background(), 5, "Boxing")
		assert.Error(t, err)
	})

	t.Run("Should report an empty direction", func(t *testing.T) {
		trainers.On("ListApprovedByDirection", mock.Anything, "Yoga").Return([]domain.Trainer{}, nil)
		_, err := uc.SelectDirection(context.Background(), 5, "Yoga")
		assert.Error(t, err)
	})

	t.Run("Should demand a fresh direction after the session is gone", func(t *testing.T) {
		uc.EndBrowse(5)
		_, err := uc.Next(context.Background(), 5)
		assert.Error(t, err)
	})
}

func TestBrowseLike(t *testing.T) {
	target := &domain.Trainer{ID: 9, UserID: 900, Name: "Vera", Status: domain.StatusApproved}

	t.Run("Should spend one like and notify the trainer", func(t *testing.T) {
		trainers := new(MockTrainerRepo)
		likes := new(MockLikeRepo)
		clients := new(MockClientRepo)
		notifier := new(MockNotifier)
		uc, _ := newBrowse(trainers, likes, clients, notifier)

		likes.On("Exists", mock.Anything, int64(5), int64(9)).Return(false, nil)
		clients.On("SpendLike", mock.Anything, int64(5)).Return(true, nil)
		likes.On("Create", mock.Anything, mock.AnythingOfType("*domain.Like")).Return(nil)
		trainers.On("GetByID", mock.Anything, int64(9)).Return(target, nil)
		notifier.On("SendText", mock.Anything, int64(900), mock.MatchedBy(func(text string) bool {
			return len(text) > 0
		})).Return(nil)

		result, err := uc.Like(context.Background(), 5, "client", 9)
		assert.NoError(t, err)
		assert.Equal(t, usecase.LikeOK, result.Outcome)
		notifier.AssertNumberOfCalls(t, "SendText", 1)
	})

	t.Run("Should treat a repeat like as a no-op without spending", func(t *testing.T) {
		likes := new(MockLikeRepo)
		clients := new(MockClientRepo)
		uc, _ := newBrowse(new(MockTrainerRepo), likes, clients, new(MockNotifier))

		likes.On("Exists", mock.Anything, int64(5), int64(9)).Return(true, nil)

		result, err := uc.Like(context.Background(), 5, "client", 9)
		assert.NoError(t, err)
		assert.Equal(t, usecase.LikeDuplicate, result.Outcome)
		clients.AssertNotCalled(t, "SpendLike", mock.Anything, mock.Anything)
	})

	t.Run("Should report an empty balance without recording anything", func(t *testing.T) {
		likes := new(MockLikeRepo)
		clients := new(MockClientRepo)
		uc, _ := newBrowse(new(MockTrainerRepo), likes, clients, new(MockNotifier))

		likes.On("Exists", mock.Anything, int64(5), int64(9)).Return(false, nil)
		clients.On("SpendLike", mock.Anything, int64(5)).Return(false, nil)

		result, err := uc.Like(context.Background(), 5, "client", 9)
		assert.NoError(t, err)
		assert.Equal(t, usecase.LikeNoBalance, result.Outcome)
		likes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should re-credit the spent like when the insert fails", func(t *testing.T) {
		likes := new(MockLikeRepo)
		clients := new(MockClientRepo)
		uc, _ := newBrowse(new(MockTrainerRepo), likes, clients, new(MockNotifier))

		likes.On("Exists", mock.Anything, int64(5), int64(9)).Return(false, nil)
		clients.On("SpendLike", mock.Anything, int64(5)).Return(true, nil)
		likes.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))
		clients.On("CreditLikes", mock.Anything, int64(5), 1).Return(nil)

		_, err := uc.Like(context.Background(), 5, "client", 9)
		assert.Error(t, err)
		clients.AssertCalled(t, "CreditLikes", mock.Anything, int64(5), 1)
	})
}

func TestBrowseBalance(t *testing.T) {
	t.Run("Should read zero for an unknown client", func(t *testing.T) {
		clients := new(MockClientRepo)
		uc, _ := newBrowse(new(MockTrainerRepo), new(MockLikeRepo), clients, new(MockNotifier))

		clients.On("GetByID", mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)
		balance, err := uc.Balance(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 0, balance)
	})
}

func TestBrowseLikedPage(t *testing.T) {
	likesList := []domain.Like{
		{ID: 1, ClientID: 5, TrainerID: 1},
		{ID: 2, ClientID: 5, TrainerID: 2},
		{ID: 3, ClientID: 5, TrainerID: 3},
	}

	t.Run("Should page with the configured size and clamp the index", func(t *testing.T) {
		trainers := new(MockTrainerRepo)
		likes := new(MockLikeRepo)
		uc, _ := newBrowse(trainers, likes, new(MockClientRepo), new(MockNotifier))

		likes.On("ListByClient", mock.Anything, int64(5)).Return(likesList, nil)
		trainers.On("GetByID", mock.Anything, int64(3)).Return(&domain.Trainer{ID: 3}, nil)

		// page size is 2, so page 99 clamps to the last page holding one entry
		page, err := uc.LikedPage(context.Background(), 5, 99)
		assert.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 2, page.TotalPages)
		assert.Len(t, page.Entries, 1)
		assert.Equal(t, 3, page.Total)
	})

	t.Run("Should skip profiles deleted since the like", func(t *testing.T) {
		trainers := new(MockTrainerRepo)
		likes := new(MockLikeRepo)
		uc, _ := newBrowse(trainers, likes, new(MockClientRepo), new(MockNotifier))

		likes.On("ListByClient", mock.Anything, int64(5)).Return(likesList[:2], nil)
		trainers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Trainer{ID: 1}, nil)
		trainers.On("GetByID", mock.Anything, int64(2)).Return(nil, domain.ErrNotFound)

		page, err := uc.LikedPage(context.Background(), 5, 0)
		assert.NoError(t, err)
		assert.Len(t, page.Entries, 1)
	})

	t.Run("Should return an empty list for a client with no likes", func(t *testing.T) {
		likes := new(MockLikeRepo)
		uc, _ := newBrowse(new(MockTrainerRepo), likes, new(MockClientRepo), new(MockNotifier))

		likes.On("ListByClient", mock.Anything, int64(5)).Return([]domain.Like{}, nil)
		page, err := uc.LikedPage(context.Background(), 5, 0)
		assert.NoError(t, err)
		assert.Equal(t, 0, page.Total)
	})
}

func TestBrowseRefill(t *testing.T) {
	t.Run("Should file the request with every admin without crediting", func(t *testing.T) {
		clients := new(MockClientRepo)
		notifier := new(MockNotifier)
		uc, _ := newBrowse(new(MockTrainerRepo), new(MockLikeRepo), clients, notifier)

		notifier.On("SendText", mock.Anything, int64(100), mock.Anything).Return(nil)
		notifier.On("SendText", mock.Anything, int64(200), mock.Anything).Return(nil)

		requestID, tariff, err := uc.RequestRefill(context.Background(), 5, "client", 15)
		assert.NoError(t, err)
		assert.NotEmpty(t, requestID)
		assert.Equal(t, 15, tariff.Likes)
		assert.Equal(t, 1500, tariff.Price)
		notifier.AssertNumberOfCalls(t, "SendText", 2)
		clients.AssertNotCalled(t, "CreditLikes", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject an unknown tariff", func(t *testing.T) {
		uc, _ := newBrowse(new(MockTrainerRepo), new(MockLikeRepo), new(MockClientRepo), new(MockNotifier))
		_, _, err := uc.RequestRefill(context.Background(), 5, "client", 7)
		assert.Error(t, err)
	})
}

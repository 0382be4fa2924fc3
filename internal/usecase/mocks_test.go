package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lavrov08/trainers-tinder/internal/domain"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Upsert(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdateRole(ctx context.Context, id int64, role domain.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepo) GetByID(ctx context.Context, userID int64) (*domain.Client, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) GetByUsername(ctx context.Context, username string) (*domain.Client, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepo) SpendLike(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepo) CreditLikes(ctx context.Context, userID int64, amount int) error {
	return m.Called(ctx, userID, amount).Error(0)
}

type MockTrainerRepo struct {
	mock.Mock
}

func (m *MockTrainerRepo) Upsert(ctx context.Context, trainer *domain.Trainer) error {
	return m.Called(ctx, trainer).Error(0)
}

func (m *MockTrainerRepo) GetByID(ctx context.Context, id int64) (*domain.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Trainer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) ListPending(ctx context.Context) ([]domain.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) ListApprovedByDirection(ctx context.Context, direction string) ([]domain.Trainer, error) {
	args := m.Called(ctx, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) ListApproved(ctx context.Context) ([]domain.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockTrainerRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockLikeRepo struct {
	mock.Mock
}

func (m *MockLikeRepo) Create(ctx context.Context, like *domain.Like) error {
	return m.Called(ctx, like).Error(0)
}

func (m *MockLikeRepo) Exists(ctx context.Context, clientID, trainerID int64) (bool, error) {
	args := m.Called(ctx, clientID, trainerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepo) ListByTrainer(ctx context.Context, trainerID int64) ([]domain.Like, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Like), args.Error(1)
}

func (m *MockLikeRepo) ListByClient(ctx context.Context, clientID int64) ([]domain.Like, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Like), args.Error(1)
}

func (m *MockLikeRepo) CountByTrainer(ctx context.Context, trainerID int64) (int, error) {
	args := m.Called(ctx, trainerID)
	return args.Int(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendText(ctx context.Context, recipient int64, text string) error {
	return m.Called(ctx, recipient, text).Error(0)
}

func (m *MockNotifier) SendModerationCard(ctx context.Context, admin int64, trainer *domain.Trainer) error {
	return m.Called(ctx, admin, trainer).Error(0)
}

package holidays

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/app/services/shared/session"
	"clinicbook-service/internal/pkg/constvars"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *MockLocker) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

type MockHolidayUsecase struct {
	mock.Mock
}

func (m *MockHolidayUsecase) List(ctx context.Context, token string) ([]models.Holiday, error) {
	args := m.Called(ctx, token)
	holidays, _ := args.Get(0).([]models.Holiday)
	return holidays, args.Error(1)
}

func (m *MockHolidayUsecase) Refresh(ctx context.Context, token string) ([]models.Holiday, error) {
	args := m.Called(ctx, token)
	holidays, _ := args.Get(0).([]models.Holiday)
	return holidays, args.Error(1)
}

func TestWorker_RunOnce(t *testing.T) {
	t.Run("leader refreshes and releases the lock", func(t *testing.T) {
		locker := new(MockLocker)
		usecase := new(MockHolidayUsecase)
		locker.On("TryLock", mock.Anything, constvars.RedisKeyHolidayLeader, leaderLockTTL).Return(true, "owner-1", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisKeyHolidayLeader, "owner-1").Return(nil)
		usecase.On("Refresh", mock.Anything, "service-token").Return(independenceDay, nil)

		NewWorker(zap.NewNop(), "", session.StaticTokenSource("service-token"), locker, usecase).RunOnce(context.Background())

		locker.AssertExpectations(t)
		usecase.AssertExpectations(t)
	})

	t.Run("follower does nothing", func(t *testing.T) {
		locker := new(MockLocker)
		usecase := new(MockHolidayUsecase)
		locker.On("TryLock", mock.Anything, constvars.RedisKeyHolidayLeader, leaderLockTTL).Return(false, "", nil)

		NewWorker(zap.NewNop(), "", session.StaticTokenSource("service-token"), locker, usecase).RunOnce(context.Background())

		usecase.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lock error skips the tick", func(t *testing.T) {
		locker := new(MockLocker)
		usecase := new(MockHolidayUsecase)
		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", errors.New("redis down"))

		NewWorker(zap.NewNop(), "", session.StaticTokenSource("service-token"), locker, usecase).RunOnce(context.Background())

		usecase.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
	})

	t.Run("failed refresh still releases the lock", func(t *testing.T) {
		locker := new(MockLocker)
		usecase := new(MockHolidayUsecase)
		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "owner-2", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisKeyHolidayLeader, "owner-2").Return(nil)
		usecase.On("Refresh", mock.Anything, "service-token").Return(nil, errors.New("api down"))

		NewWorker(zap.NewNop(), "", session.StaticTokenSource("service-token"), locker, usecase).RunOnce(context.Background())

		locker.AssertExpectations(t)
	})
}

func TestWorker_StartStop(t *testing.T) {
	worker := NewWorker(zap.NewNop(), "not a cron spec", session.StaticTokenSource("t"), new(MockLocker), new(MockHolidayUsecase))
	worker.Start(context.Background())
	worker.Stop()
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/usecase"
)

func TestLifecycleUseCase_RunDaily(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	uc := usecase.NewLifecycleUseCase(eventRepo, userRepo, nil, logger)

	ctx := context.Background()
	now := time.Date(2026, 6, 10, 3, 0, 0, 0, time.UTC)

	eventRepo.On("DeactivatePast", ctx, now).Return(int64(4), nil)
	userRepo.On("DeleteUnconfirmedBefore", ctx, now.Add(-domain.ConfirmationGracePeriod)).
		Return(int64(2), nil)

	report, err := uc.RunDaily(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), report.DeactivatedEvents)
	assert.Equal(t, int64(2), report.DeletedAccounts)
	eventRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestLifecycleUseCase_SecondRunIsNoop(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	uc := usecase.NewLifecycleUseCase(eventRepo, userRepo, nil, logger)

	ctx := context.Background()
	now := time.Date(2026, 6, 10, 3, 0, 0, 0, time.UTC)

	eventRepo.On("DeactivatePast", ctx, now).Return(int64(0), nil)
	userRepo.On("DeleteUnconfirmedBefore", ctx, now.Add(-domain.ConfirmationGracePeriod)).
		Return(int64(0), nil)

	report, err := uc.RunDaily(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, report.DeactivatedEvents)
	assert.Zero(t, report.DeletedAccounts)
}

func TestLifecycleUseCase_EventStageFailureDoesNotSkipAccounts(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	eventRepo := new(MockEventRepository)
	userRepo := new(MockUserRepository)
	uc := usecase.NewLifecycleUseCase(eventRepo, userRepo, nil, logger)

	ctx := context.Background()
	now := time.Date(2026, 6, 10, 3, 0, 0, 0, time.UTC)

	eventRepo.On("DeactivatePast", ctx, now).Return(int64(0), errors.ErrDatabaseError)
	userRepo.On("DeleteUnconfirmedBefore", ctx, now.Add(-domain.ConfirmationGracePeriod)).
		Return(int64(1), nil)

	report, err := uc.RunDaily(ctx, now)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeDatabase))
	// второй этап всё равно отработал
	assert.Equal(t, int64(1), report.DeletedAccounts)
	userRepo.AssertExpectations(t)
}

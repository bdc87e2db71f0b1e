package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
)

// LifecycleReport - итог ежедневного прохода планировщика
type LifecycleReport struct {
	DeactivatedEvents int64
	DeletedAccounts   int64
}

// LifecycleUseCase выполняет ежедневное обслуживание данных: снимает
// активность с прошедших событий и удаляет неподтверждённые аккаунты.
// Обе операции идемпотентны, повторный запуск ничего не меняет.
type LifecycleUseCase struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	cache     repository.CacheRepository
	logger    *zap.Logger
}

func NewLifecycleUseCase(
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		cache:     cache,
		logger:    logger,
	}
}

// RunDaily выполняет оба этапа обслуживания. Этапы независимы, ошибка
// первого не останавливает второй.
func (uc *LifecycleUseCase) RunDaily(ctx context.Context, now time.Time) (*LifecycleReport, error) {
	report := &LifecycleReport{}
	var firstErr error

	deactivated, err := uc.eventRepo.DeactivatePast(ctx, now)
	if err != nil {
		uc.logger.Error("Failed to deactivate past events", zap.Error(err))
		firstErr = err
	} else {
		report.DeactivatedEvents = deactivated
		if deactivated > 0 {
			uc.invalidate(ctx, "events:")
		}
	}

	cutoff := now.Add(-domain.ConfirmationGracePeriod)
	deleted, err := uc.userRepo.DeleteUnconfirmedBefore(ctx, cutoff)
	if err != nil {
		uc.logger.Error("Failed to delete unconfirmed accounts", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	} else {
		report.DeletedAccounts = deleted
	}

	if firstErr != nil {
		return report, firstErr
	}

	uc.logger.Info("Daily lifecycle pass finished",
		zap.Int64("deactivated_events", report.DeactivatedEvents),
		zap.Int64("deleted_accounts", report.DeletedAccounts))

	return report, nil
}

func (uc *LifecycleUseCase) invalidate(ctx context.Context, prefix string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteByPrefix(ctx, prefix); err != nil {
		uc.logger.Warn("Cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
	}
}

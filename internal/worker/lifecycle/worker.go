package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/worker"
)

// DailyWorker запускает ежедневное обслуживание данных по cron-расписанию
// в местной таймзоне афиши. Обе операции идемпотентны, поэтому при старте
// выполняется догоняющий проход на случай пропущенной полуночи.
type DailyWorker struct {
	*worker.BaseWorker
	lifecycleUC *usecase.LifecycleUseCase
	spec        string
	loc         *time.Location
}

// NewDailyWorker создает новый DailyWorker
func NewDailyWorker(
	lifecycleUC *usecase.LifecycleUseCase,
	spec string,
	loc *time.Location,
	logger *zap.Logger,
) *DailyWorker {
	return &DailyWorker{
		BaseWorker:  worker.NewBaseWorker("daily-lifecycle", logger),
		lifecycleUC: lifecycleUC,
		spec:        spec,
		loc:         loc,
	}
}

// Start запускает воркер
func (w *DailyWorker) Start(ctx context.Context) error {
	logger := w.Logger()

	c := cron.New(cron.WithLocation(w.loc))
	if _, err := c.AddFunc(w.spec, func() { w.runOnce(ctx) }); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", w.spec, err)
	}

	// Догоняющий проход при старте
	w.runOnce(ctx)

	c.Start()
	logger.Info("Daily lifecycle worker started",
		zap.String("spec", w.spec),
		zap.String("timezone", w.loc.String()))

	select {
	case <-ctx.Done():
	case <-w.Done():
	}

	// Ждём завершения текущего прохода
	<-c.Stop().Done()
	logger.Info("Daily lifecycle worker stopped")
	return nil
}

func (w *DailyWorker) runOnce(ctx context.Context) {
	logger := w.Logger()

	start := time.Now()
	report, err := w.lifecycleUC.RunDaily(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("Daily lifecycle pass failed", zap.Error(err))
		return
	}

	logger.Info("Daily lifecycle pass completed",
		zap.Int64("deactivated_events", report.DeactivatedEvents),
		zap.Int64("deleted_accounts", report.DeletedAccounts),
		zap.Duration("duration", time.Since(start)))
}

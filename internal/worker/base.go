package worker

import (
	"sync"

	"go.uber.org/zap"
)

// BaseWorker реализует общую часть Worker: имя, логгер и канал остановки.
// Конкретные воркеры встраивают его и слушают Done в своём Start.
type BaseWorker struct {
	name   string
	logger *zap.Logger
	done   chan struct{}
	once   sync.Once
}

func NewBaseWorker(name string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:   name,
		logger: logger.With(zap.String("worker", name)),
		done:   make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

// Stop закрывает канал остановки. Повторные вызовы безопасны.
func (w *BaseWorker) Stop() error {
	w.once.Do(func() {
		w.logger.Info("Worker stop requested")
		close(w.done)
	})
	return nil
}

// Done закрывается при вызове Stop
func (w *BaseWorker) Done() <-chan struct{} {
	return w.done
}

func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}

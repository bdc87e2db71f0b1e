package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// defaultStopTimeout - сколько Stop ждёт завершения воркеров
const defaultStopTimeout = 30 * time.Second

// Manager запускает зарегистрированные воркеры и останавливает их
// с ограничением по времени.
type Manager struct {
	mu          sync.Mutex
	workers     []Worker
	logger      *zap.Logger
	wg          sync.WaitGroup
	stopTimeout time.Duration
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		logger:      logger,
		stopTimeout: defaultStopTimeout,
	}
}

// Register добавляет воркер. Регистрировать после Start нельзя.
func (m *Manager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает каждый воркер в своей горутине и сразу возвращается.
// Ошибка Start одного воркера логируется и не трогает остальных.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	workers := append([]Worker(nil), m.workers...)
	m.mu.Unlock()

	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))
	for _, w := range workers {
		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()
			if err := w.Start(ctx); err != nil {
				m.logger.Error("Worker exited with error",
					zap.String("name", w.Name()),
					zap.Error(err))
			}
		}(w)
	}
	return nil
}

// Stop сигнализирует всем воркерам и ждёт их завершения не дольше
// stopTimeout.
func (m *Manager) Stop() error {
	m.mu.Lock()
	workers := append([]Worker(nil), m.workers...)
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))
	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", w.Name()),
				zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped")
		return nil
	case <-time.After(m.stopTimeout):
		return fmt.Errorf("workers did not stop within %v", m.stopTimeout)
	}
}

package worker

import (
	"context"
)

// Worker - фоновая задача с собственным жизненным циклом.
// Start блокирует до отмены ctx или вызова Stop.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}

package cli

import (
	"time"

	"go.uber.org/zap"
)

func timed[T any](logger *zap.Logger, name string, fn func() (T, error)) (T, error) {
	start := time.Now()
	result, err := fn()
	elapsed := time.Since(start)

	fields := []zap.Field{
		zap.String("step", name),
		zap.Duration("elapsed", elapsed),
		zap.Bool("ok", err == nil),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Info("step finished", fields...)

	return result, err
}

package logger

import (
	"go.uber.org/zap"
)

// LoggerAdapter implements ports.LoggerPort on top of zap.
type LoggerAdapter struct {
	logger *zap.Logger
}

func NewLoggerAdapter(env string) *LoggerAdapter {
	var logger *zap.Logger
	if env == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	return &LoggerAdapter{logger: logger}
}

func (l *LoggerAdapter) Info(message string, fields map[string]interface{}) {
	l.logger.Info(message, toZapFields(fields)...)
}

func (l *LoggerAdapter) Warn(message string, fields map[string]interface{}) {
	l.logger.Warn(message, toZapFields(fields)...)
}

func (l *LoggerAdapter) Error(message string, fields map[string]interface{}) {
	l.logger.Error(message, toZapFields(fields)...)
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldMode is the structured log field key for the matching mode (job or internship).
	FieldMode = "mode"
	// FieldMethod is the structured log field key for the ranking method.
	FieldMethod = "method"
	// FieldRequestID is the structured log field key for the per-call request id.
	FieldRequestID = "request_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields returns the fields describing what kind of ranking is being produced.
// Empty values are ignored.
func CommonFields(mode, method string) []zap.Field {
	return StringFields(
		StringField{Key: FieldMode, Value: mode},
		StringField{Key: FieldMethod, Value: method},
	)
}

// WithCommonFields attaches the common ranking fields to the provided logger.
func WithCommonFields(logger *zap.Logger, mode, method string) *zap.Logger {
	return WithFields(logger, CommonFields(mode, method)...)
}

package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured field keys stamped on every enrichment log entry so that
// runs against different providers or models stay distinguishable.
const (
	FieldProvider = "ai_provider"
	FieldModel    = "ai_model"
)

// CommonFields returns the provider and model fields for enrichment
// logging. Blank values are skipped so sparse configurations do not
// produce empty fields.
func CommonFields(provider, model string) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	if v := strings.TrimSpace(provider); v != "" {
		fields = append(fields, zap.String(FieldProvider, v))
	}
	if v := strings.TrimSpace(model); v != "" {
		fields = append(fields, zap.String(FieldModel, v))
	}
	return fields
}

// WithCommonFields returns a child logger annotated with the provider
// and model. A nil logger falls back to a no-op one so enrichment code
// can log without guarding.
func WithCommonFields(logger *zap.Logger, provider, model string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	fields := CommonFields(provider, model)
	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

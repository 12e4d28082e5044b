package adapters

import (
	"context"

	"github.com/rs/zerolog/log"

	"propmeta/internal/types"
)

// LogSinkAdapter renders each diagnostic to the structured log at warn
// level. Label is the domain label used in the not-annotated message.
type LogSinkAdapter struct {
	Label string
}

func NewLogSinkAdapter(label string) LogSinkAdapter {
	return LogSinkAdapter{Label: label}
}

func (a LogSinkAdapter) Collect(ctx context.Context, typeName string, diagnostic types.Diagnostic) error {
	log.Ctx(ctx).Warn().
		Str("type", typeName).
		Str("property", diagnostic.Property).
		Str("kind", string(diagnostic.Kind)).
		Msg(diagnostic.Message(a.Label))
	return nil
}

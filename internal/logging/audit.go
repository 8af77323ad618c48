package logging

import "github.com/rs/zerolog"

// AuditSink records bulk viewed/unviewed actions as structured log events.
// It satisfies viewstate.AuditSink.
type AuditSink struct {
	logger zerolog.Logger
}

// NewAuditSink tags every event with component=audit.
func NewAuditSink(logger zerolog.Logger) *AuditSink {
	return &AuditSink{logger: logger.With().Str("component", "audit").Logger()}
}

// MarkViewed writes one event listing the affected ids.
func (a *AuditSink) MarkViewed(viewed bool, ids []string) {
	action, msg := "mark_unviewed", "Marking unviewed"
	if viewed {
		action, msg = "mark_viewed", "Marking viewed"
	}
	a.logger.Info().
		Str("action", action).
		Int("count", len(ids)).
		Strs("ids", ids).
		Msg(msg)
}

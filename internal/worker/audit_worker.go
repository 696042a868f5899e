package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/opskit/teamdesk/internal/events"
)

// StartAuditWorker subscribes a logging handler to every entity event,
// producing an audit trail of committed mutations.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	handler := func(_ context.Context, event events.Event) error {
		logger.Info("entity mutation",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Int("entity_id", event.EntityID),
			zap.Time("at", event.Timestamp),
		)
		return nil
	}
	for _, eventType := range events.AllTypes() {
		dispatcher.Subscribe(eventType, handler)
	}
}

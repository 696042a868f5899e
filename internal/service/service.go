// Package service orchestrates validators and the generic repository per
// entity kind. Every operation runs its full load-validate-mutate-save cycle
// under the store's document lock, so no mutation is persisted on failure.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opskit/teamdesk/internal/events"
)

func publish(ctx context.Context, dispatcher events.Dispatcher, eventType events.EventType, entityID int) {
	if dispatcher == nil {
		return
	}
	_ = dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now(),
	})
}

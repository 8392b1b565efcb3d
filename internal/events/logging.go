package events

import (
	"context"

	"go.uber.org/zap"
)

// EventLogger writes each published ticket event to the structured log. It is
// the only subscriber; no external delivery happens.
type EventLogger struct {
	logger *zap.Logger
}

// NewEventLogger creates the subscriber.
func NewEventLogger(logger *zap.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// Register subscribes the logger to all ticket events.
func (l *EventLogger) Register(d Dispatcher) {
	if d == nil {
		return
	}
	d.Subscribe(EventTicketCreated, l.handle)
	d.Subscribe(EventTicketUpdated, l.handle)
}

func (l *EventLogger) handle(_ context.Context, event Event) error {
	l.logger.Info("ticket event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("ticket_id", event.TicketID),
		zap.String("actor_id", event.Actor.UserID),
		zap.String("actor_role", string(event.Actor.Role)),
		zap.Any("payload", event.Payload),
	)
	return nil
}

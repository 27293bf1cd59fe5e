package event

import (
	"context"

	"github.com/shoppy/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AuditLogHandler records every published domain event to the application log.
// It subscribes as a wildcard handler and never fails the publish path.
type AuditLogHandler struct {
	logger *zap.Logger
}

// NewAuditLogHandler creates an audit handler backed by the given logger
func NewAuditLogHandler(logger *zap.Logger) *AuditLogHandler {
	return &AuditLogHandler{logger: logger.Named("audit")}
}

// Handle implements shared.EventHandler
func (h *AuditLogHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.logger.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes returns an empty list so the handler receives all events
func (h *AuditLogHandler) EventTypes() []string {
	return nil
}

var _ shared.EventHandler = (*AuditLogHandler)(nil)

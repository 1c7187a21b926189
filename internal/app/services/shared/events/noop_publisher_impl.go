package events

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

type noopPublisher struct {
	log *zap.Logger
}

// NewNoopPublisher is wired when APP_EVENTS_ENABLED is false.
func NewNoopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{log: logger}
}

func (p *noopPublisher) PublishScheduleChanged(ctx context.Context, event models.ScheduleChanged) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.log.Debug("noopPublisher.PublishScheduleChanged skipped",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingKindKey, string(event.Kind)),
		zap.String(constvars.LoggingActionKey, string(event.Action)),
	)
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

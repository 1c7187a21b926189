package contracts

import (
	"clinicbook-service/internal/app/models"
	"context"
)

type EventPublisher interface {
	PublishScheduleChanged(ctx context.Context, event models.ScheduleChanged) error
	Close() error
}

package events

import (
	"clinicbook-service/internal/app/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(zap.NewNop())

	err := publisher.PublishScheduleChanged(context.Background(), models.ScheduleChanged{
		Kind:       models.ChangeKindAppointment,
		Action:     models.ChangeActionCreate,
		ID:         "1",
		OccurredAt: time.Now(),
	})
	assert.NoError(t, err)
	assert.NoError(t, publisher.Close())
}

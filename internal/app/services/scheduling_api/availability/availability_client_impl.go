package availability

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/app/services/scheduling_api/transport"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"context"

	"go.uber.org/zap"
)

type availabilityClient struct {
	Transport *transport.Client
	Log       *zap.Logger
}

// NewAvailabilityClient lists every entry. Narrowing to one doctor happens
// after the fetch, see schedule.FilterByDoctor.
func NewAvailabilityClient(client *transport.Client, logger *zap.Logger) contracts.AvailabilityAPIClient {
	return &availabilityClient{
		Transport: client,
		Log:       logger,
	}
}

func (c *availabilityClient) FindAll(ctx context.Context, token string) ([]models.AvailabilityEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("availabilityClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	entries, err := transport.List[models.AvailabilityEntry](ctx, c.Transport, transport.Request{
		Method:   constvars.MethodGet,
		Resource: constvars.ResourceAvailability,
		Token:    token,
	})
	if err != nil {
		c.Log.Error("availabilityClient.FindAll error fetching availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("availabilityClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(entries)),
	)
	return entries, nil
}

func (c *availabilityClient) Create(ctx context.Context, token string, request *requests.Availability) (*models.AvailabilityEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("availabilityClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.StartTime),
	)

	var created models.AvailabilityEntry
	err := c.Transport.Do(ctx, transport.Request{
		Method:   constvars.MethodPost,
		Resource: constvars.ResourceAvailability,
		Token:    token,
		Body:     request,
	}, &created)
	if err != nil {
		c.Log.Error("availabilityClient.Create error creating availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("availabilityClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, created.GetID()),
	)
	return &created, nil
}

func (c *availabilityClient) Update(ctx context.Context, token, entryID string, request *requests.Availability) (*models.AvailabilityEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("availabilityClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, entryID),
	)

	var updated models.AvailabilityEntry
	err := c.Transport.Do(ctx, transport.Request{
		Method:   constvars.MethodPut,
		Resource: constvars.ResourceAvailability,
		ID:       entryID,
		Token:    token,
		Body:     request,
	}, &updated)
	if err != nil {
		c.Log.Error("availabilityClient.Update error updating availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, entryID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("availabilityClient.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, updated.GetID()),
	)
	return &updated, nil
}

func (c *availabilityClient) Delete(ctx context.Context, token, entryID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("availabilityClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, entryID),
	)

	err := c.Transport.Do(ctx, transport.Request{
		Method:   constvars.MethodDelete,
		Resource: constvars.ResourceAvailability,
		ID:       entryID,
		Token:    token,
	}, nil)
	if err != nil {
		c.Log.Error("availabilityClient.Delete error deleting availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, entryID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("availabilityClient.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, entryID),
	)
	return nil
}

package blocked_dates

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/app/services/scheduling_api/transport"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"context"

	"go.uber.org/zap"
)

type blockedDateClient struct {
	Transport *transport.Client
	Log       *zap.Logger
}

func NewBlockedDateClient(client *transport.Client, logger *zap.Logger) contracts.BlockedDateAPIClient {
	return &blockedDateClient{
		Transport: client,
		Log:       logger,
	}
}

func (c *blockedDateClient) FindAll(ctx context.Context, token string) ([]models.BlockedDate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("blockedDateClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	blockedDates, err := transport.List[models.BlockedDate](ctx, c.Transport, transport.Request{
		Method:   constvars.MethodGet,
		Resource: constvars.ResourceBlockedDates,
		Token:    token,
	})
	if err != nil {
		c.Log.Error("blockedDateClient.FindAll error fetching blocked dates",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("blockedDateClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(blockedDates)),
	)
	return blockedDates, nil
}

func (c *blockedDateClient) Create(ctx context.Context, token string, request *requests.Availability) (*models.BlockedDate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("blockedDateClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.StartTime),
	)

	var created models.BlockedDate
	err := c.Transport.Do(ctx, transport.Request{
		Method:   constvars.MethodPost,
		Resource: constvars.ResourceBlockedDates,
		Token:    token,
		Body:     request,
	}, &created)
	if err != nil {
		c.Log.Error("blockedDateClient.Create error creating blocked date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("blockedDateClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, created.GetID()),
	)
	return &created, nil
}

func (c *blockedDateClient) Update(ctx context.Context, token, blockedDateID string, request *requests.Availability) (*models.BlockedDate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("blockedDateClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, blockedDateID),
	)

	var updated models.BlockedDate
	err := c.Transport.Do(ctx, transport.Request{
		Method:   constvars.MethodPut,
		Resource: constvars.ResourceBlockedDates,
		ID:       blockedDateID,
		Token:    token,
		Body:     request,
	}, &updated)
	if err != nil {
		c.Log.Error("blockedDateClient.Update error updating blocked date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, blockedDateID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("blockedDateClient.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, updated.GetID()),
	)
	return &updated, nil
}

func (c *blockedDateClient) Delete(ctx context.Context, token, blockedDateID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("blockedDateClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, blockedDateID),
	)

	err := c.Transport.Do(ctx, transport.Request{
		Method:   constvars.MethodDelete,
		Resource: constvars.ResourceBlockedDates,
		ID:       blockedDateID,
		Token:    token,
	}, nil)
	if err != nil {
		c.Log.Error("blockedDateClient.Delete error deleting blocked date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, blockedDateID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("blockedDateClient.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, blockedDateID),
	)
	return nil
}

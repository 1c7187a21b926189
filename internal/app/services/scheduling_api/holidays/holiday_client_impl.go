package holidays

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/app/services/scheduling_api/transport"
	"clinicbook-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

type holidayClient struct {
	Transport *transport.Client
	Log       *zap.Logger
}

func NewHolidayClient(client *transport.Client, logger *zap.Logger) contracts.HolidayAPIClient {
	return &holidayClient{
		Transport: client,
		Log:       logger,
	}
}

func (c *holidayClient) FindAll(ctx context.Context, token string) ([]models.Holiday, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("holidayClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	holidays, err := transport.List[models.Holiday](ctx, c.Transport, transport.Request{
		Method:   constvars.MethodGet,
		Resource: constvars.ResourceHolidays,
		Token:    token,
	})
	if err != nil {
		c.Log.Error("holidayClient.FindAll error fetching holidays",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("holidayClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(holidays)),
	)
	return holidays, nil
}

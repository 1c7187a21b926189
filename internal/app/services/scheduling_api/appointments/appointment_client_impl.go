package appointments

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/app/services/scheduling_api/transport"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"context"
	"net/url"

	"go.uber.org/zap"
)

type appointmentClient struct {
	Transport *transport.Client
	Log       *zap.Logger
}

func NewAppointmentClient(client *transport.Client, logger *zap.Logger) contracts.AppointmentAPIClient {
	return &appointmentClient{
		Transport: client,
		Log:       logger,
	}
}

func (c *appointmentClient) FindAll(ctx context.Context, token string, filter requests.AppointmentFilter) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, filter.Date),
	)

	query := url.Values{}
	if filter.Date != "" {
		query.Set(constvars.URLQueryParamDate, filter.Date)
	}

	appointments, err := transport.List[models.Appointment](ctx, c.Transport, transport.Request{
		Method:   constvars.MethodGet,
		Resource: constvars.ResourceAppointments,
		Query:    query,
		Token:    token,
	})
	if err != nil {
		c.Log.Error("appointmentClient.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}

func (c *appointmentClient) Create(ctx context.Context, token string, request *requests.Appointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	var created models.Appointment
	err := c.Transport.Do(ctx, transport.Request{
		Method:   constvars.MethodPost,
		Resource: constvars.ResourceAppointments,
		Token:    token,
		Body:     request,
	}, &created)
	if err != nil {
		c.Log.Error("appointmentClient.Create error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, created.GetID()),
	)
	return &created, nil
}

func (c *appointmentClient) Update(ctx context.Context, token, appointmentID string, request *requests.Appointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointmentID),
	)

	var updated models.Appointment
	err := c.Transport.Do(ctx, transport.Request{
		Method:   constvars.MethodPut,
		Resource: constvars.ResourceAppointments,
		ID:       appointmentID,
		Token:    token,
		Body:     request,
	}, &updated)
	if err != nil {
		c.Log.Error("appointmentClient.Update error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentClient.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, updated.GetID()),
	)
	return &updated, nil
}

func (c *appointmentClient) Delete(ctx context.Context, token, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointmentID),
	)

	err := c.Transport.Do(ctx, transport.Request{
		Method:   constvars.MethodDelete,
		Resource: constvars.ResourceAppointments,
		ID:       appointmentID,
		Token:    token,
	}, nil)
	if err != nil {
		c.Log.Error("appointmentClient.Delete error deleting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRecordIDKey, appointmentID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("appointmentClient.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointmentID),
	)
	return nil
}

package auth

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/services/scheduling_api/transport"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.uber.org/zap"
)

var errEmptyAccessToken = errors.New("login response carried no access token")

type authClient struct {
	Transport *transport.Client
	Log       *zap.Logger
}

func NewAuthClient(client *transport.Client, logger *zap.Logger) contracts.AuthAPIClient {
	return &authClient{
		Transport: client,
		Log:       logger,
	}
}

// Login exchanges credentials for an access/refresh pair. Credentials and
// tokens are never logged.
func (c *authClient) Login(ctx context.Context, request *requests.Login) (*responses.LoginTokens, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var tokens responses.LoginTokens
	err := c.Transport.Do(ctx, transport.Request{
		Method:   constvars.MethodPost,
		Resource: constvars.ResourceAuthLogin,
		Body:     request,
	}, &tokens)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
			c.Log.Warn("authClient.Login credentials rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, exceptions.ErrInvalidUsernameOrPassword(err)
		}
		c.Log.Error("authClient.Login error calling scheduling api",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if tokens.Access == "" {
		c.Log.Error("authClient.Login empty access token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrDecodeResponse(errEmptyAccessToken, constvars.ResourceAuthLogin)
	}

	c.Log.Info("authClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &tokens, nil
}

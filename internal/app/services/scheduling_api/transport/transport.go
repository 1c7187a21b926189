package transport

import (
	"bytes"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

var errMissingResults = errors.New("object response without a results list")

// Client performs JSON calls against the scheduling api. Every resource
// client shares one of these so auth headers and error mapping stay uniform.
type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewClient(baseUrl string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

// Request describes one call. Path segments are joined with a trailing slash
// because the scheduling api redirects slashless urls.
type Request struct {
	Method   string
	Resource string
	ID       string
	Query    url.Values
	Token    string
	Body     interface{}
}

func (c *Client) URL(resource, id string, query url.Values) string {
	endpoint := fmt.Sprintf("%s/%s/", c.BaseUrl, strings.Trim(resource, "/"))
	if id != "" {
		endpoint = fmt.Sprintf("%s%s/", endpoint, url.PathEscape(id))
	}
	if len(query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, query.Encode())
	}
	return endpoint
}

// Do sends the request and decodes a 2xx body into out when out is not nil.
// Transport failures map to ErrSendHTTPRequest, non-2xx answers to
// ErrRemoteRejected and undecodable 2xx bodies to ErrDecodeResponse.
func (c *Client) Do(ctx context.Context, request Request, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := c.URL(request.Resource, request.ID, request.Query)

	var body io.Reader
	if request.Body != nil {
		payload, err := json.Marshal(request.Body)
		if err != nil {
			c.Log.Error("transport.Client.Do error marshaling request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, request.Resource),
				zap.Error(err),
			)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, endpoint, body)
	if err != nil {
		c.Log.Error("transport.Client.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if request.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+request.Token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("transport.Client.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, request.Method),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("transport.Client.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}

	c.Log.Debug("transport.Client.Do received response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.Method),
		zap.String(constvars.LoggingURLKey, endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.Log.Warn("transport.Client.Do scheduling api rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, request.Method),
			zap.String(constvars.LoggingURLKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrRemoteRejected(resp.StatusCode, request.Method, request.Resource, respBody)
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return exceptions.ErrDecodeResponse(io.ErrUnexpectedEOF, request.Resource)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		c.Log.Error("transport.Client.Do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, request.Resource),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, request.Resource)
	}
	return nil
}

// List decodes either a bare JSON array or a paginated {"results": [...]} envelope.
func List[T any](ctx context.Context, c *Client, request Request) ([]T, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, request, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var page struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, request.Resource)
		}
		if len(page.Results) == 0 {
			return nil, exceptions.ErrDecodeResponse(errMissingResults, request.Resource)
		}
		trimmed = bytes.TrimSpace(page.Results)
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, request.Resource)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

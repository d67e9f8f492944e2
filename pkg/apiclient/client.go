package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/client/domain"
	appLogger "github.com/taskdeck/client/pkg/logger"
)

// ExpiredFunc is invoked when the API answers 401, once per failing
// response. The triggering call still returns its error; this is a
// side channel, not a retry.
type ExpiredFunc func()

// Config carries the transport settings for a client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	MaxConns  int
	UserAgent string
}

// Client issues JSON requests against the task API bound to a fixed
// base endpoint, attaching the bearer credential when one is set.
type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	http      *fasthttp.Client
	onExpired ExpiredFunc
	logger    *zap.Logger

	mu    sync.RWMutex
	token string
}

// New builds a client. onExpired may be nil for clients serving
// unauthenticated endpoints.
func New(cfg Config, onExpired ExpiredFunc, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
		http: &fasthttp.Client{
			Name:            cfg.UserAgent,
			MaxConnsPerHost: cfg.MaxConns,
			ReadTimeout:     cfg.Timeout,
			WriteTimeout:    cfg.Timeout,
		},
		onExpired: onExpired,
		logger:    logger,
	}
}

// SetToken binds the bearer credential used on subsequent requests.
// An empty token removes the Authorization header entirely.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Get issues a GET request; query may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, fasthttp.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, fasthttp.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, fasthttp.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request, ignoring any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, fasthttp.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return domain.WrapError(domain.ErrCodeTransport, "request aborted", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	uri := c.baseURL + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if token := c.currentToken(); token != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, "Bearer "+token)
	}

	reqID := appLogger.RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", reqID)

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "encode request body", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}

	log := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
	)

	start := time.Now()
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		log.Warn("request failed", zap.Error(err))
		return domain.WrapError(domain.ErrCodeTransport, "request failed", err)
	}

	status := resp.StatusCode()
	log.Debug("request completed",
		zap.Int("status", status),
		zap.Duration("elapsed", time.Since(start)),
	)

	if status == http.StatusUnauthorized {
		if c.onExpired != nil {
			c.onExpired()
		}
		return domain.WrapError(domain.ErrCodeUnauthorized, serverMessage(resp.Body(), "session expired"), nil)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return statusError(status, resp.Body())
	}

	if out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return domain.WrapError(domain.ErrCodeTransport, "decode response body", err)
		}
	}
	return nil
}

// statusError maps a non-2xx response to a typed error, preferring the
// server-provided message over a generic fallback.
func statusError(status int, body []byte) *domain.Error {
	switch status {
	case http.StatusNotFound:
		return domain.NewError(domain.ErrCodeNotFound, serverMessage(body, "resource not found"))
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewError(domain.ErrCodeInvalid, serverMessage(body, "request rejected"))
	default:
		return domain.NewError(domain.ErrCodeTransport, serverMessage(body, "server error"))
	}
}

func serverMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fallback
}

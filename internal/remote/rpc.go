package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperr "github.com/darrkasamna/catalog/pkg/errors"
	"github.com/darrkasamna/catalog/pkg/telemetry"
)

// RPCRequest is a JSON-RPC 2.0 request
type RPCRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      uint64      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// RPCResponse is a JSON-RPC 2.0 response
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is an error returned by the server. Its text carries the
// server's message so callers can classify it.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	var detail string
	if len(e.Data) > 0 && json.Unmarshal(e.Data, &detail) == nil && detail != "" && detail != e.Message {
		return fmt.Sprintf("%s: %s", e.Message, detail)
	}
	return e.Message
}

// codeNotFound is returned by the server for missing stories
const codeNotFound = -32004

// classify tags not-found errors; everything else is left to the
// message-based classification of the caller
func (e *RPCError) classify() error {
	if e.Code == codeNotFound {
		return apperr.Wrap(e, apperr.KindNotFound, "")
	}
	return e
}

// RetryConfig controls retries of idempotent calls
type RetryConfig struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryConfig returns the retry policy used for reads
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
	}
}

// RPCClient posts JSON-RPC requests to one endpoint
type RPCClient struct {
	url     string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	retry   RetryConfig
	logger  *zap.Logger
	nextID  atomic.Uint64
}

// NewRPCClient creates a client for url. A nil limiter disables pacing.
func NewRPCClient(url, token string, httpClient *http.Client, limiter *rate.Limiter, retry RetryConfig, logger *zap.Logger) *RPCClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &RPCClient{
		url:     url,
		token:   token,
		http:    httpClient,
		limiter: limiter,
		retry:   retry,
		logger:  logger,
	}
}

// Call invokes method and decodes its result into result, which may be nil.
// Idempotent calls are retried on transport failures; errors returned by
// the server are never retried.
func (c *RPCClient) Call(ctx context.Context, method string, params, result interface{}, idempotent bool) error {
	ctx, span := telemetry.StartSpan(ctx, "remote."+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("rpc.method", method)))
	defer span.End()

	attempt := func() error {
		return c.do(ctx, method, params, result)
	}

	var err error
	if idempotent && c.retry.MaxRetries > 0 {
		bo := backoff.NewExponentialBackOff()
		bo.InitialInterval = c.retry.InitialInterval
		bo.MaxInterval = c.retry.MaxInterval
		bo.Reset()

		notify := func(err error, next time.Duration) {
			c.logger.Warn("RPC call failed, retrying",
				zap.String("method", method),
				zap.Error(err),
				zap.Duration("next_attempt_in", next.Round(time.Millisecond)))
		}
		err = backoff.RetryNotify(attempt, backoff.WithContext(backoff.WithMaxRetries(bo, c.retry.MaxRetries), ctx), notify)
	} else {
		err = attempt()
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			err = perm.Err
		}
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *RPCClient) do(ctx context.Context, method string, params, result interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
	}

	body, err := json.Marshal(RPCRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("server returned %s", resp.Status)
	case resp.StatusCode == http.StatusUnauthorized:
		return backoff.Permanent(errors.New("Unauthorized: invalid or expired token"))
	case resp.StatusCode != http.StatusOK:
		return backoff.Permanent(fmt.Errorf("server returned %s", resp.Status))
	}

	var rpcResp RPCResponse
	if err := json.Unmarshal(data, &rpcResp); err != nil {
		return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
	}
	if rpcResp.Error != nil {
		return backoff.Permanent(rpcResp.Error.classify())
	}
	if result == nil || len(rpcResp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return backoff.Permanent(fmt.Errorf("failed to decode %s result: %w", method, err))
	}
	return nil
}

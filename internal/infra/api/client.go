package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"app/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// リモートAPIへのリクエストタイムアウト（固定）
const requestTimeout = 10 * time.Second

const genericErrorMessage = "API request failed"

// リモートAPI呼び出しの失敗。トランスポート障害も非2xxも全てこの形に潰す
type RemoteError struct {
	Status  int // トランスポート障害のときは0
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// 404はErrNotFoundとしても判定できるようにする
func (e *RemoteError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return repository.ErrNotFound
	}
	return nil
}

// リモートカタログAPIのHTTPクライアント
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// DI
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("remote api request",
		zap.String("method", method),
		zap.String("url", u),
		zap.String("request_id", requestID),
	)

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("remote api transport failure",
			zap.String("method", method),
			zap.String("url", u),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return &RemoteError{Message: genericErrorMessage}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return &RemoteError{Message: genericErrorMessage}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		// サーバーのmessageがあればそれを出す。無ければ汎用文言
		msg := genericErrorMessage
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
			msg = payload.Message
		}

		c.logger.Warn("remote api error response",
			zap.String("method", method),
			zap.String("url", u),
			zap.String("request_id", requestID),
			zap.Int("status", res.StatusCode),
		)
		return &RemoteError{Status: res.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

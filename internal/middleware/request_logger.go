package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const CtxRequestIDKey = "request_id" // string

// 受信リクエストにUUIDを振ってzapで1行ログを出す
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := uuid.NewString()
			c.Set(CtxRequestIDKey, requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			start := time.Now()
			err := next(c)

			logger.Info("request",
				zap.String("request_id", requestID),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("took", time.Since(start)),
			)
			return err
		}
	}
}

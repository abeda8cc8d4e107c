package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/ledgerwise/internal/metrics"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// and records its duration. Each call gets a request id, echoed back in the
// X-Request-Id response header.
func LoggingInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			requestID := uuid.NewString()
			ctx = context.WithValue(ctx, RequestIDKey, requestID)

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.ObserveRPC(procedure, code, elapsed)

			duration := elapsed.Milliseconds()
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					connectErr.Meta().Set("X-Request-Id", requestID)
					slog.Warn("RPC error",
						"procedure", procedure,
						"request_id", requestID,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"duration_ms", duration,
					)
				} else {
					slog.Error("RPC error",
						"procedure", procedure,
						"request_id", requestID,
						"error", err,
						"duration_ms", duration,
					)
				}
				return resp, err
			}

			resp.Header().Set("X-Request-Id", requestID)
			slog.Info("RPC ok",
				"procedure", procedure,
				"request_id", requestID,
				"duration_ms", duration,
			)
			return resp, nil
		}
	}
}

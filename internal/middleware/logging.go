package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/roommates/internal/metrics"
)

// RequestIDHeader carries the request ID on responses. A valid UUID sent by
// the client is reused.
const RequestIDHeader = "X-Request-Id"

func requestID(req connect.AnyRequest) string {
	if id := req.Header().Get(RequestIDHeader); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	return uuid.NewString()
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the procedure name, request ID, person ID, duration, and any error
// codes/messages. It must run inside RequireAuth to see the person ID.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure
			personID := GetPersonID(ctx) // 0 if pre-auth
			reqID := requestID(req)

			resp, err := next(ctx, req)

			duration := time.Since(start).Milliseconds()
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					connectErr.Meta().Set(RequestIDHeader, reqID)
					slog.Warn("RPC error",
						"procedure", procedure,
						"request_id", reqID,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"person_id", personID,
						"duration_ms", duration,
					)
				} else {
					slog.Error("RPC error",
						"procedure", procedure,
						"request_id", reqID,
						"error", err,
						"person_id", personID,
						"duration_ms", duration,
					)
				}
			} else {
				resp.Header().Set(RequestIDHeader, reqID)
				slog.Info("RPC ok",
					"procedure", procedure,
					"request_id", reqID,
					"person_id", personID,
					"duration_ms", duration,
				)
			}

			return resp, err
		}
	}
}

// MetricsInterceptor records the latency and result code of every RPC.
func MetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.ObserveRPC(req.Spec().Procedure, code, time.Since(start))
			return resp, err
		}
	}
}

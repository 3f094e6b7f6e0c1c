package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/pasajeros/internal/metrics"
)

// LoggingInterceptor returns a Connect interceptor that logs every unary call
// and every server stream, and records them on m (which may be nil). It logs
// the procedure name, request ID, duration, and any error codes/messages.
// A stream is logged once, when it ends.
func LoggingInterceptor(m *metrics.Metrics) connect.Interceptor {
	return &loggingInterceptor{metrics: m}
}

type loggingInterceptor struct {
	metrics *metrics.Metrics
}

func (i *loggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		requestID := requestIDFrom(req.Header())
		ctx = WithRequestID(ctx, requestID)

		resp, err := next(ctx, req)
		if resp != nil {
			resp.Header().Set(RequestIDHeader, requestID)
		}

		i.finish(req.Spec().Procedure, requestID, start, err)
		return resp, err
	}
}

func (i *loggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *loggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		requestID := requestIDFrom(conn.RequestHeader())
		ctx = WithRequestID(ctx, requestID)
		conn.ResponseHeader().Set(RequestIDHeader, requestID)

		slog.Debug("RPC stream opened", "procedure", conn.Spec().Procedure, "request_id", requestID)
		err := next(ctx, conn)

		i.finish(conn.Spec().Procedure, requestID, start, err)
		return err
	}
}

func (i *loggingInterceptor) finish(procedure, requestID string, start time.Time, err error) {
	duration := time.Since(start)
	code := "ok"
	if err != nil {
		code = connect.CodeOf(err).String()
		var connectErr *connect.Error
		if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal {
			slog.Warn("RPC error",
				"procedure", procedure,
				"code", connectErr.Code(),
				"error", connectErr.Message(),
				"request_id", requestID,
				"duration_ms", duration.Milliseconds(),
			)
		} else {
			slog.Error("RPC error",
				"procedure", procedure,
				"error", err,
				"request_id", requestID,
				"duration_ms", duration.Milliseconds(),
			)
		}
	} else {
		slog.Info("RPC ok",
			"procedure", procedure,
			"request_id", requestID,
			"duration_ms", duration.Milliseconds(),
		)
	}

	if i.metrics != nil {
		i.metrics.RPCRequests.WithLabelValues(procedure, code).Inc()
		i.metrics.RPCDuration.WithLabelValues(procedure).Observe(duration.Seconds())
	}
}

// requestIDFrom returns the caller's request ID, or a fresh one.
func requestIDFrom(h http.Header) string {
	if id := h.Get(RequestIDHeader); id != "" {
		return id
	}
	return uuid.NewString()
}

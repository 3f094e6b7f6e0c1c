package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/pasajeros/internal/metrics"
)

type empty struct{}

// streamConn is a server stream with no messages.
type streamConn struct {
	procedure       string
	requestHeader   http.Header
	responseHeader  http.Header
	responseTrailer http.Header
}

func newStreamConn(procedure string) *streamConn {
	return &streamConn{
		procedure:       procedure,
		requestHeader:   http.Header{},
		responseHeader:  http.Header{},
		responseTrailer: http.Header{},
	}
}

func (c *streamConn) Spec() connect.Spec {
	return connect.Spec{Procedure: c.procedure, StreamType: connect.StreamTypeServer}
}

func (c *streamConn) Peer() connect.Peer { return connect.Peer{} }

func (c *streamConn) Receive(any) error { return nil }

func (c *streamConn) RequestHeader() http.Header { return c.requestHeader }

func (c *streamConn) Send(any) error { return nil }

func (c *streamConn) ResponseHeader() http.Header { return c.responseHeader }

func (c *streamConn) ResponseTrailer() http.Header { return c.responseTrailer }

func TestLoggingInterceptor(t *testing.T) {
	m := metrics.New()
	interceptor := LoggingInterceptor(m)

	t.Run("generates request id", func(t *testing.T) {
		var seen string
		call := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			seen = GetRequestID(ctx)
			return connect.NewResponse(&empty{}), nil
		})

		resp, err := call(context.Background(), connect.NewRequest(&empty{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen == "" {
			t.Fatal("expected request id in context")
		}
		if got := resp.Header().Get(RequestIDHeader); got != seen {
			t.Errorf("expected response header %q, got %q", seen, got)
		}
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		var seen string
		call := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			seen = GetRequestID(ctx)
			return connect.NewResponse(&empty{}), nil
		})

		req := connect.NewRequest(&empty{})
		req.Header().Set(RequestIDHeader, "abc-123")
		if _, err := call(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen != "abc-123" {
			t.Errorf("expected abc-123, got %q", seen)
		}
	})

	t.Run("counts errors by code", func(t *testing.T) {
		call := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			return nil, connect.NewError(connect.CodeNotFound, errors.New("passenger 7 not found"))
		})

		_, err := call(context.Background(), connect.NewRequest(&empty{}))
		if connect.CodeOf(err) != connect.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
		if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues("", "not_found")); got != 1 {
			t.Errorf("expected 1 not_found request, got %v", got)
		}
		if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues("", "ok")); got != 2 {
			t.Errorf("expected 2 ok requests, got %v", got)
		}
	})
}

func TestLoggingInterceptor_Streams(t *testing.T) {
	m := metrics.New()
	interceptor := LoggingInterceptor(m)
	const procedure = "/pasajeros.v1.PassengerService/WatchChanges"

	var seen string
	handler := interceptor.WrapStreamingHandler(func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		seen = GetRequestID(ctx)
		return nil
	})

	conn := newStreamConn(procedure)
	if err := handler(context.Background(), conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen == "" {
		t.Fatal("expected request id in context")
	}
	if got := conn.responseHeader.Get(RequestIDHeader); got != seen {
		t.Errorf("expected response header %q, got %q", seen, got)
	}

	failing := interceptor.WrapStreamingHandler(func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		return connect.NewError(connect.CodeUnavailable, errors.New("shutting down"))
	})
	if err := failing(context.Background(), newStreamConn(procedure)); connect.CodeOf(err) != connect.CodeUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}

	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues(procedure, "ok")); got != 1 {
		t.Errorf("expected 1 ok stream, got %v", got)
	}
	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues(procedure, "unavailable")); got != 1 {
		t.Errorf("expected 1 unavailable stream, got %v", got)
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

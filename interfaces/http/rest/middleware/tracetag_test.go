package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"orders-backend/pkg/auth"
)

func newRecordingRequest(t *testing.T, recorder *tracetest.SpanRecorder) *http.Request {
	t.Helper()

	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	ctx, _ := provider.Tracer("test").Start(context.Background(), "POST /api/orders")

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	return req.WithContext(ctx)
}

func recordedAttrs(recorder *tracetest.SpanRecorder) map[attribute.Key]string {
	attrs := make(map[attribute.Key]string)
	for _, span := range recorder.Started() {
		for _, kv := range span.Attributes() {
			attrs[kv.Key] = kv.Value.AsString()
		}
	}
	return attrs
}

func TestTraceTagging_MasksPrincipalOntoSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	req := newRecordingRequest(t, recorder)
	req = req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{
		Subject: "user1234567",
		Name:    "John Smith",
	}))

	var called bool
	handler := TraceTagging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, called)
	attrs := recordedAttrs(recorder)
	assert.Equal(t, "user****", attrs[AttrUserID])
	assert.Equal(t, "Jo****", attrs[AttrUserName])
}

func TestTraceTagging_NoSpanPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{
		Subject: "user1234567",
		Name:    "John Smith",
	}))

	var called bool
	handler := TraceTagging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, called)
}

func TestTraceTagging_AnonymousRequestLeavesSpanUntouched(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	req := newRecordingRequest(t, recorder)

	handler := TraceTagging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	attrs := recordedAttrs(recorder)
	assert.NotContains(t, attrs, attribute.Key(AttrUserID))
	assert.NotContains(t, attrs, attribute.Key(AttrUserName))
}

func TestTraceTagging_EmptyNameSkipsNameAttribute(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	req := newRecordingRequest(t, recorder)
	req = req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{
		Subject: "abcd9999",
	}))

	handler := TraceTagging()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	attrs := recordedAttrs(recorder)
	assert.Equal(t, "abcd****", attrs[AttrUserID])
	assert.NotContains(t, attrs, attribute.Key(AttrUserName))
}

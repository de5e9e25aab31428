package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/blogem/table-admin/userctx"
)

func TestActor(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "no header", header: "", want: ""},
		{name: "header set", header: "jane", want: "jane"},
		{name: "whitespace only", header: "   ", want: ""},
		{name: "trimmed", header: "  bob ", want: "bob"},
		{name: "truncated", header: strings.Repeat("a", 100), want: strings.Repeat("a", 64)},
		{name: "multi-byte kept whole", header: strings.Repeat("€", 30), want: strings.Repeat("€", 30)},
		{name: "multi-byte truncated by character", header: strings.Repeat("é", 70), want: strings.Repeat("é", 64)},
		{name: "invalid bytes dropped", header: "jo\xffe", want: "joe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			handler := Actor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = userctx.GetActor(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/table/users", nil)
			if tt.header != "" {
				req.Header.Set(ActorHeader, tt.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestRequestID(t *testing.T) {
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = userctx.GetRequestID(r.Context())
	}))

	// Generated when missing
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tables", nil))
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
	assert.Equal(t, got, rec.Header().Get(RequestIDHeader))

	// Reused when valid
	supplied := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/tables", nil)
	req.Header.Set(RequestIDHeader, supplied)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, supplied, got)
	assert.Equal(t, supplied, rec.Header().Get(RequestIDHeader))

	// Replaced when not a UUID
	req = httptest.NewRequest(http.MethodGet, "/api/tables", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.NotEqual(t, "<script>", got)
	assert.Equal(t, got, rec.Header().Get(RequestIDHeader))
}

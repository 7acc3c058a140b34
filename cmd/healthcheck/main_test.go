package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddr(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty uses default", raw: "", want: "127.0.0.1:8080"},
		{name: "bind all ipv4", raw: "0.0.0.0:9000", want: "127.0.0.1:9000"},
		{name: "port only", raw: ":9000", want: "127.0.0.1:9000"},
		{name: "bind all ipv6", raw: "[::]:9000", want: "[::1]:9000"},
		{name: "explicit host kept", raw: "10.0.0.5:8080", want: "10.0.0.5:8080"},
		{name: "garbage uses default", raw: "not-an-addr", want: "127.0.0.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeAddr(tt.raw))
		})
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   int
	}{
		{name: "healthy", status: http.StatusOK, body: `{"status":"ok","pots":0}`, want: 0},
		{name: "bad status code", status: http.StatusServiceUnavailable, body: `{"status":"ok"}`, want: 1},
		{name: "unhealthy body", status: http.StatusOK, body: `{"status":"degraded"}`, want: 1},
		{name: "not json", status: http.StatusOK, body: `ok`, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/v1/health" {
					http.NotFound(w, r)
					return
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			addr := strings.TrimPrefix(srv.URL, "http://")
			assert.Equal(t, tt.want, check(addr, srv.Client()))
		})
	}
}

func TestCheck_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	assert.Equal(t, 1, check(addr, srv.Client()))
}

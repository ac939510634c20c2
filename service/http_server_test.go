package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/empdash/internal/events"
	"github.com/ludo-technologies/empdash/internal/version"
)

func TestHandler_Routes(t *testing.T) {
	h := testHandler(t, "")

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"index shows employee 1", "/", http.StatusOK, "<title>Employee Report</title>"},
		{"employee", "/employee/2", http.StatusOK, "<h1>employee</h1>"},
		{"team", "/team/1", http.StatusOK, "<title>Team Report</title>"},
		{"non-integer employee", "/employee/abc", http.StatusBadRequest, "Invalid employee ID: must be an integer"},
		{"non-integer team", "/team/x1", http.StatusBadRequest, "Invalid team ID: must be an integer"},
		{"unknown employee", "/employee/99", http.StatusNotFound, "employee"},
		{"unknown route", "/department/1", http.StatusNotFound, ""},
		{"dropdown for teams", "/update_dropdown?profile_type=Team", http.StatusOK, "Team Selection"},
		{"dropdown for employees", "/update_dropdown?profile_type=Employee", http.StatusOK, "Alice Smith"},
		{"dropdown bad profile", "/update_dropdown?profile_type=Dept", http.StatusBadRequest, "unknown profile type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		})
	}
}

func TestHandler_UpdateDropdownIsFragment(t *testing.T) {
	h := testHandler(t, "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/update_dropdown?profile_type=Team", nil))

	body := rec.Body.String()
	assert.NotContains(t, body, "<html")
	assert.True(t, strings.HasPrefix(body, "<div"))
}

func TestHandler_UpdateData(t *testing.T) {
	tests := []struct {
		name         string
		prefix       string
		form         url.Values
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "employee",
			form:         url.Values{"profile_type": {"Employee"}, "user-selection": {"2"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/employee/2",
		},
		{
			name:         "team behind proxy",
			prefix:       "/proxy/5001",
			form:         url.Values{"profile_type": {"Team"}, "user-selection": {"1"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/proxy/5001/team/1",
		},
		{
			name:       "missing selection",
			form:       url.Values{"profile_type": {"Team"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown profile",
			form:       url.Values{"profile_type": {"Dept"}, "user-selection": {"1"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHandler(t, tt.prefix)
			req := httptest.NewRequest(http.MethodPost, "/update_data", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
		})
	}
}

func TestHandler_UpdateDataRejectsGet(t *testing.T) {
	rec := httptest.NewRecorder()
	testHandler(t, "").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/update_data", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_RequestIDPropagates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()

	testHandler(t, "").ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, version.ServerHeader(), rec.Header().Get("Server"))

	var info version.BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, version.Name, info.Name)
}

func TestHandler_UnmatchedRequestsGetRequestID(t *testing.T) {
	h := testHandler(t, "")

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/department/1", nil),
		httptest.NewRequest(http.MethodDelete, "/employee/1", nil),
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader), req.URL.Path)
	}
}

func TestHandler_LogsRouteAndStatus(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(HandlerOptions{
		Reports:  testReportService(t, ""),
		Adapters: events.NewProvider(testSource(t)),
		Logger:   zerolog.New(&buf),
	})

	req := httptest.NewRequest(http.MethodGet, "/employee/abc", nil)
	req.Header.Set(RequestIDHeader, "req-log")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var served map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["message"] == "request served" {
			served = entry
		}
	}
	require.NotNil(t, served)
	assert.Equal(t, "employee", served["route"])
	assert.Equal(t, float64(http.StatusBadRequest), served["status"])
	assert.Equal(t, "req-log", served["request_id"])
}

func TestRecoverPanics(t *testing.T) {
	handler := recoverPanics(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(ln.Addr().String(), testHandler(t, ""), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

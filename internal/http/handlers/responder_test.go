package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/app/gateway"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"requestId":"abc123"`)) {
		t.Fatalf("expected requestId in body, got %s", rr.Body.String())
	}
}

func TestWriteErrorOmitsMissingRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusBadRequest, "bad", nil)
	if bytes.Contains(rr.Body.Bytes(), []byte("requestId")) {
		t.Fatalf("expected no requestId, got %s", rr.Body.String())
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if !bytes.Contains(buf.Bytes(), []byte("failed to encode response")) {
		t.Fatalf("expected logger to record encode error, got %s", buf.String())
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", &gateway.ValidationError{Field: "name", Message: "name is required"}, http.StatusBadRequest, "name is required"},
		{"not found", gateway.ErrNotFound, http.StatusNotFound, "Player not found"},
		{"wrapped not found", fmt.Errorf("resolve: %w", gateway.ErrNotFound), http.StatusNotFound, "Player not found"},
		{"upstream", &gateway.UpstreamError{Op: "player_game_log", Err: errors.New("read timed out")}, http.StatusInternalServerError, "read timed out"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal error"},
	}
	for _, tc := range cases {
		status, msg := statusFor(tc.err)
		if status != tc.status || msg != tc.msg {
			t.Fatalf("%s: got %d %q want %d %q", tc.name, status, msg, tc.status, tc.msg)
		}
	}
}

func TestParseNumGames(t *testing.T) {
	if n, err := parseNumGames("", 5); err != nil || n != 5 {
		t.Fatalf("expected fallback 5, got %d %v", n, err)
	}
	if n, err := parseNumGames(" 12 ", 5); err != nil || n != 12 {
		t.Fatalf("expected 12, got %d %v", n, err)
	}
	for _, raw := range []string{"0", "-1", "1.5", "ten"} {
		if _, err := parseNumGames(raw, 5); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/logging"
	"github.com/thoreinstein/namecheck/internal/lookup"
	"github.com/thoreinstein/namecheck/internal/platform"
)

const testToken = "tok123"

type fakeSites struct {
	mux            *http.ServeMux
	noCSRF         bool
	instagramCalls atomic.Int32
}

func newFakeSites(t *testing.T) *fakeSites {
	t.Helper()
	f := &fakeSites{mux: http.NewServeMux()}

	f.mux.HandleFunc("GET /i/users/username_available.json", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("username") {
		case "free":
			_ = json.NewEncoder(w).Encode(twitterResponse{Valid: true, Reason: "available"})
		case "owned":
			_ = json.NewEncoder(w).Encode(twitterResponse{Reason: "taken", Msg: "Username has already been taken"})
		case "limited":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			_ = json.NewEncoder(w).Encode(twitterResponse{Reason: "invalid_username", Msg: "Invalid username"})
		}
	})

	f.mux.HandleFunc("GET /api/username_available.json", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("user") {
		case "free":
			_, _ = w.Write([]byte("true"))
		case "owned":
			_, _ = w.Write([]byte("false"))
		case "limited":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			_, _ = w.Write([]byte(`{"json": {"errors": []}}`))
		}
	})

	f.mux.HandleFunc("GET "+instagramSignupPath, func(w http.ResponseWriter, r *http.Request) {
		if !f.noCSRF {
			http.SetCookie(w, &http.Cookie{Name: instagramCSRFCookie, Value: testToken, Path: "/"})
		}
		_, _ = w.Write([]byte("<html></html>"))
	})

	f.mux.HandleFunc("POST "+instagramAttemptPath, func(w http.ResponseWriter, r *http.Request) {
		f.instagramCalls.Add(1)
		if r.Header.Get("X-CSRFToken") != testToken {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if ck, err := r.Cookie(instagramCSRFCookie); err != nil || ck.Value != testToken {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.PostForm.Get("username") {
		case "free":
			_, _ = w.Write([]byte(`{"account_created": false, "errors": {"email": [{"message": "required", "code": "email_required"}]}}`))
		case "owned":
			_, _ = w.Write([]byte(`{"errors": {"username": [{"message": "This username isn't available.", "code": "username_is_taken"}]}}`))
		case "limited":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			_, _ = w.Write([]byte(`{"errors": {"username": [{"message": "Usernames can only use letters.", "code": "username_invalid_chars"}]}}`))
		}
	})

	return f
}

func newTestClient(t *testing.T, h http.Handler, timeout time.Duration) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Options{
		Timeout:     timeout,
		Concurrency: 2,
		Endpoints: map[platform.ID]string{
			platform.Twitter:   srv.URL,
			platform.Instagram: srv.URL,
			platform.Reddit:    srv.URL,
		},
	}, logging.ForTest(t))
}

func describe(r lookup.Record) string {
	if r.Available == nil {
		return "unknown:" + r.Message
	}
	if *r.Available {
		return "available"
	}
	return "taken"
}

func TestQuery(t *testing.T) {
	f := newFakeSites(t)
	c := newTestClient(t, f.mux, time.Second)

	usernames := []string{"free", "owned", "limited", "weird!"}
	platforms := platform.Delegated()

	records, err := c.Query(t.Context(), usernames, platforms)
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(records) != len(usernames)*len(platforms) {
		t.Fatalf("len(records) = %d, want %d", len(records), len(usernames)*len(platforms))
	}

	got := make(map[string]string)
	for _, r := range records {
		got[string(r.Platform)+"/"+r.Query] = describe(r)
	}

	want := map[string]string{
		"twitter/free":      "available",
		"twitter/owned":     "taken",
		"twitter/limited":   "unknown:status:429",
		"twitter/weird!":    "unknown:Invalid username",
		"reddit/free":       "available",
		"reddit/owned":      "taken",
		"reddit/limited":    "unknown:status:429",
		"reddit/weird!":     "unknown:unexpected response",
		"instagram/free":    "available",
		"instagram/owned":   "taken",
		"instagram/limited": "unknown:status:429",
		"instagram/weird!":  "unknown:Usernames can only use letters.",
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("%s = %q, want %q", k, got[k], w)
		}
	}
	if n := f.instagramCalls.Load(); n != int32(len(usernames)) {
		t.Errorf("instagram attempts = %d, want %d", n, len(usernames))
	}
}

func TestQuery_InstagramBootstrapFails(t *testing.T) {
	f := newFakeSites(t)
	f.noCSRF = true
	c := newTestClient(t, f.mux, time.Second)

	_, err := c.Query(t.Context(), []string{"free"}, []platform.ID{platform.Instagram, platform.Reddit})
	if err == nil {
		t.Fatal("Query() expected error when no csrf token is issued")
	}
	if !strings.Contains(err.Error(), "csrf") {
		t.Errorf("error = %v, want mention of csrf", err)
	}
	if f.instagramCalls.Load() != 0 {
		t.Error("attempt endpoint called without a token")
	}
}

func TestQuery_SkipsBootstrapWithoutInstagram(t *testing.T) {
	f := newFakeSites(t)
	f.noCSRF = true
	c := newTestClient(t, f.mux, time.Second)

	records, err := c.Query(t.Context(), []string{"free"}, []platform.ID{platform.Reddit})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(records) != 1 || describe(records[0]) != "available" {
		t.Errorf("records = %+v", records)
	}
}

func TestQuery_UnsupportedPlatform(t *testing.T) {
	c := New(Options{}, nil)
	_, err := c.Query(t.Context(), []string{"free"}, []platform.ID{platform.GitHub})
	if !errors.Is(err, errors.ErrUnknownPlatform) {
		t.Errorf("Query() error = %v, want ErrUnknownPlatform", err)
	}
}

func TestQuery_Timeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c := newTestClient(t, slow, 50*time.Millisecond)

	records, err := c.Query(t.Context(), []string{"free"}, []platform.ID{platform.Reddit})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if got := describe(records[0]); got != "unknown:timeout" {
		t.Errorf("record = %q, want unknown:timeout", got)
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{}, nil)
	if c.opts.Concurrency != DefaultConcurrency {
		t.Errorf("Concurrency = %d", c.opts.Concurrency)
	}
	if c.endpoint(platform.Twitter) != "https://api.twitter.com" {
		t.Errorf("endpoint(twitter) = %q", c.endpoint(platform.Twitter))
	}
}

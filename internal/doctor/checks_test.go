package doctor

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/thoreinstein/namecheck/internal/config"
	"github.com/thoreinstein/namecheck/internal/errors"
	"github.com/thoreinstein/namecheck/internal/platform"
)

func TestConfigCheck(t *testing.T) {
	valid := &config.Config{Timeout: time.Second, Delegated: config.Delegated{Enabled: true, Concurrency: 2}}

	tests := []struct {
		name string
		cfg  *config.Config
		file string
		err  error
		want Severity
	}{
		{"defaults", valid, "", nil, SeverityInfo},
		{"file", valid, "/etc/namecheck.yaml", nil, SeverityPass},
		{"invalid", &config.Config{Platforms: []string{"myspace"}}, "/x.yaml", nil, SeverityError},
		{"load error", nil, "/x.yaml", errors.New("reading config file: bad yaml"), SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewConfigCheck(tt.cfg, tt.file, tt.err).Run(t.Context())
			if res.Status != tt.want {
				t.Errorf("Status = %v, want %v (%s)", res.Status, tt.want, res.Message)
			}
			if res.Category != "config" {
				t.Errorf("Category = %q", res.Category)
			}
		})
	}
}

func TestReachabilityCheck(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Severity
	}{
		{"ok", http.StatusOK, SeverityPass},
		{"not found is still reachable", http.StatusNotFound, SeverityPass},
		{"server error", http.StatusServiceUnavailable, SeverityWarning},
		{"rate limited", http.StatusTooManyRequests, SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodHead {
					t.Errorf("method = %s, want HEAD", r.Method)
				}
				w.WriteHeader(tt.code)
			}))
			defer srv.Close()

			res := NewReachabilityCheck(srv.Client(), platform.GitHub, srv.URL, time.Second).Run(t.Context())
			if res.Status != tt.want {
				t.Errorf("Status = %v, want %v (%s)", res.Status, tt.want, res.Message)
			}
			if res.Name != "github" || res.Category != "network" {
				t.Errorf("Name/Category = %q/%q", res.Name, res.Category)
			}
		})
	}
}

func TestReachabilityCheck_Unreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	res := NewReachabilityCheck(http.DefaultClient, platform.Telegram, "http://"+addr, time.Second).Run(t.Context())
	if res.Status != SeverityWarning {
		t.Errorf("Status = %v, want warning", res.Status)
	}
	if !strings.Contains(res.Message, "network:refused") {
		t.Errorf("Message = %q", res.Message)
	}
}

func TestNewReachabilityCheck_DefaultBase(t *testing.T) {
	c := NewReachabilityCheck(http.DefaultClient, platform.Snapchat, "", time.Second)
	if c.base != "https://www.snapchat.com" {
		t.Errorf("base = %q", c.base)
	}
}

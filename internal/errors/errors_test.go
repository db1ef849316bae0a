package errors

import (
	"bytes"
	"fmt"
	"testing"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExitError
		wantMsg  string
		wantCode int
		target   error
	}{
		{"user", NewUserError(ErrUnknownPlatform, "Run: namecheck platforms"), "unknown platform", ExitUser, ErrUnknownPlatform},
		{"system", NewSystemError(Wrap(ErrNotFound, "reading"), ""), "reading: resource not found", ExitSystem, ErrNotFound},
		{"config", NewConfigError(ErrInvalidConfig), "invalid configuration", ExitUser, ErrInvalidConfig},
		{"interrupted", NewExitError(New("cancelled by user"), ExitInterrupted), "cancelled by user", ExitInterrupted, nil},
		{"nil cause", NewExitError(nil, ExitSystem), "exit code 2", ExitSystem, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.target != nil && !Is(tt.err, tt.target) {
				t.Errorf("Is(%v) = false through ExitError", tt.target)
			}
		})
	}
}

func TestNewConfigError_Suggestion(t *testing.T) {
	if got := NewConfigError(ErrInvalidConfig).Suggestion; got != "Run: namecheck doctor" {
		t.Errorf("Suggestion = %q", got)
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
		code int
	}{
		{"nil", nil, "", ExitSuccess},
		{"plain", New("boom"), "error: boom\n", ExitUser},
		{"with suggestion", NewUserError(New("no platforms selected"), "Run: namecheck platforms"),
			"error: no platforms selected\n  Run: namecheck platforms\n", ExitUser},
		{"wrapped exit error", fmt.Errorf("running: %w", NewSystemError(New("dial failed"), "")),
			"error: dial failed\n", ExitSystem},
		{"silent", NewExitError(nil, ExitUser), "", ExitUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if code := Report(&buf, tt.err); code != tt.code {
				t.Errorf("Report() = %d, want %d", code, tt.code)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	err := Wrapf(ErrNotFound, "looking up %s", "github")
	if got, want := err.Error(), "looking up github: resource not found"; got != want {
		t.Errorf("Wrapf() = %q, want %q", got, want)
	}
	if !Is(err, ErrNotFound) {
		t.Error("Is() should find sentinel through Wrapf")
	}
}

func TestMark(t *testing.T) {
	err := Mark(Wrap(New("timeout must be > 0"), "validating config"), ErrInvalidConfig)
	if !Is(err, ErrInvalidConfig) {
		t.Error("marked error should match ErrInvalidConfig")
	}
	if got := err.Error(); got != "validating config: timeout must be > 0" {
		t.Errorf("Error() = %q, message should be unchanged", got)
	}
}

func TestJoin(t *testing.T) {
	err := Join(ErrNotFound, ErrUnknownPlatform)
	if !Is(err, ErrNotFound) || !Is(err, ErrUnknownPlatform) {
		t.Error("joined error should match both members")
	}
	if Join() != nil {
		t.Error("Join() of nothing should be nil")
	}
}

func TestAssertionFailedf(t *testing.T) {
	err := AssertionFailedf("missing cell %s/%s", "alice", "github")
	if !IsAssertionFailure(err) {
		t.Error("IsAssertionFailure() = false, want true")
	}
	if IsAssertionFailure(ErrNotFound) {
		t.Error("IsAssertionFailure(sentinel) = true, want false")
	}
}

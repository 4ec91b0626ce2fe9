package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "runtime error",
			code:    "E101",
			wantMsg: "View projection panicked",
			wantCat: CategoryRuntime,
		},
		{
			name:    "render error",
			code:    "E201",
			wantMsg: "Reconciliation pass failed",
			wantCat: CategoryRender,
		},
		{
			name:    "usage warning",
			code:    "W001",
			wantMsg: "Invalid attempt to change value of a Var after calling SetFinal",
			wantCat: CategoryUsage,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestRippleError_Error(t *testing.T) {
	err := New("E102").Wrap(fmt.Errorf("boom"))
	if got, want := err.Error(), "E102: Scheduled task panicked: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	plain := Newf(CategoryRuntime, "file %q not found", "a.toml")
	if got, want := plain.Error(), `file "a.toml" not found`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRippleError_IsAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("cause")
	err := fmt.Errorf("outer: %w", New("E201").Wrap(cause))

	if !stderrors.Is(err, New("E201")) {
		t.Error("errors.Is should match by code")
	}
	if stderrors.Is(err, New("E101")) {
		t.Error("errors.Is should not match a different code")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if got := Code(err); got != "E201" {
		t.Errorf("Code() = %q, want E201", got)
	}
	if got := Code(cause); got != "" {
		t.Errorf("Code() = %q, want empty", got)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E101") != nil {
		t.Error("FromError(nil) should be nil")
	}

	re := New("E301")
	if got := FromError(re, "E101"); got != re {
		t.Error("FromError should return an existing RippleError unchanged")
	}

	plain := fmt.Errorf("plain")
	got := FromError(plain, "E103")
	if got.Code != "E103" || got.Wrapped != plain {
		t.Errorf("FromError = %+v, want code E103 wrapping plain", got)
	}
}

func TestFromPanic(t *testing.T) {
	err := FromPanic("E101", "bad index")
	if err.Code != "E101" {
		t.Errorf("Code = %q, want E101", err.Code)
	}
	if !strings.Contains(err.Error(), "bad index") {
		t.Errorf("Error() = %q, want it to mention the panic value", err.Error())
	}

	cause := fmt.Errorf("typed")
	if got := FromPanic("E101", cause); got.Wrapped != cause {
		t.Error("FromPanic should wrap error values directly")
	}
}

func TestFormat(t *testing.T) {
	err := New("E301").WithSuggestion("check ripple.toml").Wrap(fmt.Errorf("line 3"))
	out := err.Format()
	for _, want := range []string{"E301", "Invalid configuration", "check ripple.toml", "line 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if got := err.FormatCompact(); got != "E301: Invalid configuration" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) == 0 {
		t.Fatal("expected registered codes")
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWarner_RateLimitsPerCode(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	var seen []string
	w := NewWarner(logger, WarnerConfig{
		Rate:   0.0001,
		Burst:  2,
		OnWarn: func(code string) { seen = append(seen, code) },
	})

	for i := 0; i < 5; i++ {
		w.Warn("W001", "attempt", i)
	}
	w.Warn("W002", "hole", "title")

	if got := strings.Count(buf.String(), "code=W001"); got != 2 {
		t.Errorf("logged W001 %d times, want 2\n%s", got, buf.String())
	}
	if !strings.Contains(buf.String(), "code=W002") {
		t.Error("W002 should have its own budget")
	}
	if got := w.Suppressed("W001"); got != 3 {
		t.Errorf("Suppressed(W001) = %d, want 3", got)
	}
	if len(seen) != 6 {
		t.Errorf("OnWarn called %d times, want 6", len(seen))
	}
}

func TestWarner_Unlimited(t *testing.T) {
	var buf bytes.Buffer
	w := NewWarner(slog.New(slog.NewTextHandler(&buf, nil)), WarnerConfig{})
	for i := 0; i < 10; i++ {
		w.Warn("W003", "hole", "x")
	}
	if got := strings.Count(buf.String(), "code=W003"); got != 10 {
		t.Errorf("logged %d times, want 10", got)
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Error("warnings should be logged at WARN level")
	}
}

func TestWarner_NilIsSafe(t *testing.T) {
	var w *Warner
	w.Warn("W001")
	if w.Suppressed("W001") != 0 {
		t.Error("nil Warner never suppresses")
	}
}

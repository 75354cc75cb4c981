package aggregates

import (
	"errors"
	"fmt"
	"testing"
)

type codedErr struct{}

func (codedErr) Error() string   { return "coded" }
func (codedErr) Code() ErrorCode { return CodeValidation }

func TestErrorMessageFormats(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{NewError(CodeNotFound, "Restaurant.Update", "missing", nil), "Restaurant.Update: missing (not_found)"},
		{NewError(CodeInternal, "Restaurant.Create", "", nil), "Restaurant.Create (internal)"},
		{NewError(CodeConflict, "", "stale", nil), "stale (conflict)"},
		{NewError(CodeRetryable, "", "", nil), "retryable"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("Error(): want=%q got=%q", c.want, got)
		}
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("Restaurant.Delete", "Restaurant", 999)
	if !IsNotFound(err) {
		t.Fatalf("expected not_found, got %q", CodeOf(err))
	}
	if got := err.Error(); got != "Restaurant.Delete: Restaurant with ID 999 not found (not_found)" {
		t.Fatalf("message: got=%q", got)
	}
}

func TestCodeOfThroughWrapping(t *testing.T) {
	base := errors.New("connection refused")
	err := fmt.Errorf("list restaurants: %w", Wrap(CodeRetryable, "Restaurant.ListAll", base))
	if CodeOf(err) != CodeRetryable {
		t.Fatalf("CodeOf: want=retryable got=%q", CodeOf(err))
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected cause to be preserved")
	}
	if Wrap(CodeInternal, "op", nil) != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
}

func TestCodeOfHonoursCoder(t *testing.T) {
	if !IsCode(fmt.Errorf("wrapped: %w", codedErr{}), CodeValidation) {
		t.Fatalf("expected validation code from Code() method")
	}
	if IsCode(nil, CodeInternal) {
		t.Fatalf("nil error has no code")
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Fatalf("plain errors carry no code")
	}
}

package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAsHTTPErrorUnwrapsWrappedError(t *testing.T) {
	base := &HTTPError{Provider: "sportsdata", StatusCode: 404, Reason: "Not Found"}
	wrapped := fmt.Errorf("fetch failed: %w", base)

	httpErr, ok := AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected HTTPError to unwrap")
	}
	if httpErr.StatusCode != 404 {
		t.Fatalf("expected status preserved, got %d", httpErr.StatusCode)
	}
	if !strings.Contains(httpErr.Error(), "Not Found") {
		t.Fatalf("expected reason in message, got %s", httpErr.Error())
	}
}

func TestAsHTTPErrorRejectsOtherErrors(t *testing.T) {
	if _, ok := AsHTTPError(errors.New("boom")); ok {
		t.Fatal("expected plain error to not match")
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Provider: "sportsdata", Err: cause}

	if !errors.Is(err, cause) {
		t.Fatal("expected cause to unwrap")
	}
	if _, ok := AsTransportError(fmt.Errorf("wrap: %w", err)); !ok {
		t.Fatal("expected TransportError to unwrap")
	}
}

func TestDecodeErrorUnwraps(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &DecodeError{Provider: "sportsdata", Err: cause}

	if !errors.Is(err, cause) {
		t.Fatal("expected cause to unwrap")
	}
	if _, ok := AsDecodeError(fmt.Errorf("wrap: %w", err)); !ok {
		t.Fatal("expected DecodeError to unwrap")
	}
	if _, ok := AsDecodeError(errors.New("other")); ok {
		t.Fatal("expected plain error to not match")
	}
}

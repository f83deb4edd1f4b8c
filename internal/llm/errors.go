package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Kind classifies a provider failure.
type Kind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable Kind = iota
	KindRateLimited
	// KindRejected is a 4xx other than 429: bad key, unknown model, bad request.
	KindRejected
	// KindInvalidOutput means the output did not match the schema.
	KindInvalidOutput
	// KindTruncated means generation stopped at MaxTokens.
	KindTruncated
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindRejected:
		return "request rejected"
	case KindInvalidOutput:
		return "invalid output"
	case KindTruncated:
		return "output truncated at max tokens"
	default:
		return "unavailable"
	}
}

// Error is returned by every Provider for vendor-side failures.
type Error struct {
	Kind       Kind
	Vendor     string
	RetryAfter time.Duration

	// Output is the raw model output for InvalidOutput and Truncated.
	Output json.RawMessage
	Err    error
}

func (e *Error) Error() string {
	msg := e.Vendor + ": " + e.Kind.String()
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether sending the same prompt again may succeed.
func (e *Error) Retryable() bool {
	return e.Kind != KindRejected && e.Kind != KindTruncated
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// classify turns an SDK error into an *Error using the HTTP status the SDK
// reported. status 0 means no response was received. Context errors pass
// through untouched.
func classify(vendor string, status int, header http.Header, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	e := &Error{Kind: KindUnavailable, Vendor: vendor, Err: err}
	switch {
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimited
		e.RetryAfter = retryAfter(header)
	case status >= 400 && status < 500:
		e.Kind = KindRejected
	}
	return e
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

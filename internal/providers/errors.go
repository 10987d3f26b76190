package providers

import (
	"errors"
	"fmt"
)

// Kind classifies why a provider call failed.
type Kind string

const (
	KindTransport   Kind = "transport"
	KindStatus      Kind = "status"
	KindDecode      Kind = "decode"
	KindRateLimited Kind = "rate_limited"
	KindUnavailable Kind = "unavailable"
)

// ErrProviderUnavailable is returned when no provider is configured.
var ErrProviderUnavailable = &ProviderError{Kind: KindUnavailable, Message: "provider unavailable"}

// ProviderError is the classified failure every provider returns. Message
// carries the provider's own text so callers can surface it unchanged.
type ProviderError struct {
	Provider   string
	Op         string
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s failed (status=%d)", e.Provider, e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s %s failed (%s)", e.Provider, e.Op, e.Kind)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError attempts to unwrap an error into a ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

// IsRateLimited reports whether err is a provider quota rejection.
func IsRateLimited(err error) bool {
	pErr, ok := AsProviderError(err)
	return ok && pErr.Kind == KindRateLimited
}

// Classify wraps an arbitrary error as a ProviderError of the given kind,
// leaving errors that are already classified untouched.
func Classify(provider, op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	if pErr, ok := AsProviderError(err); ok {
		if pErr.Provider != "" && pErr.Op != "" {
			return err
		}
		filled := *pErr
		if filled.Provider == "" {
			filled.Provider = provider
		}
		if filled.Op == "" {
			filled.Op = op
		}
		return &filled
	}
	return &ProviderError{Provider: provider, Op: op, Kind: kind, Message: err.Error(), Err: err}
}

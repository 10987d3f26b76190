package gateway

import "errors"

// ErrNotFound is returned when a name fragment matches no player.
var ErrNotFound = errors.New("player not found")

// UpstreamError wraps any failure raised while talking to the stats
// provider or the player index. Error returns the underlying message
// unchanged.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ValidationError reports a malformed request parameter.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

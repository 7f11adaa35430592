package domain

import (
	"errors"
	"fmt"
	"strings"
)

// TransportError means the review API could not be reached at all.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("endpoint %s is unreachable: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteStatusError is any non-200 answer of the review API.
type RemoteStatusError struct {
	URL        string
	StatusCode int
}

func (e *RemoteStatusError) Error() string {
	return fmt.Sprintf("endpoint %s answered with status %d", e.URL, e.StatusCode)
}

type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "unexpected response shape: " + e.Reason
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("homework record has no %q field", e.Field)
}

type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("undocumented homework status %q", e.Status)
}

// SendError wraps a messaging failure for an ordinary status message.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return "message delivery failed: " + e.Err.Error()
}

func (e *SendError) Unwrap() error { return e.Err }

type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "missing required configuration: " + strings.Join(e.Missing, ", ")
}

type Disposition int

const (
	// NotifyOperator errors are logged and relayed to the chat.
	NotifyOperator Disposition = iota
	// LogOnly errors are logged; the chat is not bothered.
	LogOnly
	// Fatal errors stop the process before polling starts.
	Fatal
)

func (d Disposition) String() string {
	switch d {
	case NotifyOperator:
		return "notify"
	case LogOnly:
		return "log"
	case Fatal:
		return "fatal"
	default:
		return fmt.Sprintf("disposition(%d)", int(d))
	}
}

// Classify decides what the poll loop does with err.
func Classify(err error) Disposition {
	var (
		cfgErr  *ConfigError
		sendErr *SendError
	)
	switch {
	case errors.As(err, &cfgErr):
		return Fatal
	case errors.As(err, &sendErr):
		return LogOnly
	default:
		return NotifyOperator
	}
}

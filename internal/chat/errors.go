package chat

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Code is a stable machine-readable error class carried to API clients.
type Code string

const (
	// CodeInvalidInput marks a request the client can fix.
	CodeInvalidInput Code = "invalid_input"
	// CodeNotFound marks an absent topic or message.
	CodeNotFound Code = "not_found"
	// CodeUnauthorized marks a resource owned by a different account.
	CodeUnauthorized Code = "unauthorized"
	// CodeQuotaExceeded marks a topic, message or file limit being reached.
	CodeQuotaExceeded Code = "quota_exceeded"
	// CodeQuotaRace marks a precondition invalidated by a concurrent request
	// between check and write.
	CodeQuotaRace Code = "quota_race"
	// CodeUpstreamFailure marks a failed retrieval, storage or model call.
	CodeUpstreamFailure Code = "upstream_failure"
)

// Error is a classified service error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the error class, defaulting to upstream failure for
// unclassified errors.
func CodeOf(err error) Code {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Code
	}
	return CodeUpstreamFailure
}

func invalidInput(msg string) error {
	return &Error{Code: CodeInvalidInput, Message: msg}
}

func notFound(msg string) error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func unauthorized(msg string) error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

func quotaExceeded(msg string) error {
	return &Error{Code: CodeQuotaExceeded, Message: msg}
}

func upstream(msg string, err error) error {
	return &Error{Code: CodeUpstreamFailure, Message: msg, Err: err}
}

// classifyWriteError maps constraint violations to the quota-race class.
// Quotas are checked inside the write transaction, but a concurrent request
// can still land between check and commit; the schema constraints are the
// backstop.
func classifyWriteError(msg string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return &Error{Code: CodeQuotaRace, Message: msg, Err: err}
	}
	return upstream(msg, err)
}

package api

import (
	"errors"
	"fmt"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

// ErrorKind classifies a failed remote call.
type ErrorKind int

const (
	// KindUnknown is a failure that fits no other class.
	KindUnknown ErrorKind = iota
	// KindUnauthorized means the token was missing, expired or revoked.
	// It is the trigger for session eviction; the gateway itself only
	// classifies and returns.
	KindUnauthorized
	// KindNotFound means the entity does not exist. Load operations treat
	// it as an empty state, not an error banner.
	KindNotFound
	// KindValidation means the service rejected the request fields.
	KindValidation
	// KindNetwork means the request never completed (transport failure or
	// timeout).
	KindNetwork
	// KindServerError means the service failed internally.
	KindServerError
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindServerError:
		return "server error"
	default:
		return "unknown"
	}
}

// Error is a classified failure from the remote service.
type Error struct {
	// Kind is the failure class.
	Kind ErrorKind

	// Status is the HTTP status code, 0 for transport failures.
	Status int

	// Message is the service-provided detail, when present.
	Message string

	// Err is the underlying transport error, when present.
	Err error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("api: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("api: %s (%d)", e.Kind, e.Status)
}

// Unwrap returns the underlying transport error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match classified failures against the domain
// sentinels core services branch on.
func (e *Error) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.Kind == KindNotFound
	case domain.ErrNotAuthenticated:
		return e.Kind == KindUnauthorized
	default:
		return false
	}
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindUnauthorized
}

// IsNotFound checks if the error indicates a missing entity.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// IsValidation checks if the error indicates rejected request fields.
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindValidation
}

// IsNetwork checks if the error indicates the request never completed.
func IsNetwork(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}

// classifyStatus maps an HTTP status code to an error kind.
func classifyStatus(status int) ErrorKind {
	switch {
	case status == 401:
		return KindUnauthorized
	case status == 404:
		return KindNotFound
	case status == 400 || status == 422:
		return KindValidation
	case status >= 500:
		return KindServerError
	default:
		return KindUnknown
	}
}

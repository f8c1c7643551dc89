package entity

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound means a search succeeded with zero results. A non-2xx answer is never ErrNotFound.
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("duplicate record")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// CategoryConflict is the CRM error category reported when a create collides with an existing record.
const CategoryConflict = "CONFLICT"

// RemoteError is a non-2xx answer of the CRM API. Body holds the raw upstream payload.
type RemoteError struct {
	StatusCode int
	Category   string
	Message    string
	Body       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, body: %s", e.StatusCode, e.Body)
}

func (e *RemoteError) Is(target error) bool {
	switch target { //nolint:errorlint
	case ErrDuplicate:
		return e.StatusCode == http.StatusConflict || e.Category == CategoryConflict
	case ErrUnauthenticated:
		return e.StatusCode == http.StatusUnauthorized
	}

	return false
}

package services

import (
	"errors"
	"fmt"
)

// PlaceholderTitle stands in for the job title when the referenced job row
// cannot be found. The application is still accepted.
const PlaceholderTitle = "the position"

// FieldError is one failing field of a validation pass.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every failing input field. It is caller error,
// never logged as a system fault.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// DatabaseError carries the store's error code where the driver exposes one.
type DatabaseError struct {
	Code string
	Err  error
}

func (e *DatabaseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("database error (code %s): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("database error: %v", e.Err)
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// sqlStater matches pgconn.PgError without importing the driver here.
type sqlStater interface {
	SQLState() string
}

func wrapDBError(err error) *DatabaseError {
	var st sqlStater
	if errors.As(err, &st) {
		return &DatabaseError{Code: st.SQLState(), Err: err}
	}
	return &DatabaseError{Err: err}
}

// NotificationError marks a failure of the email collaborator. Best-effort
// call sites log it; user-requested sends surface it to the caller.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification failed: %v", e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

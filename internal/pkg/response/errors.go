package response

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// APIError is the application exception every handler may raise with
// c.Error. The APIErrors middleware renders it as its payload plus a
// "message" key, using StatusCode.
type APIError struct {
	Message    string
	StatusCode int
	Payload    map[string]any
	Err        error
}

func NewAPIError(message string, statusCode int, payload map[string]any) *APIError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &APIError{Message: message, StatusCode: statusCode, Payload: payload}
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// ToMap never mutates Payload.
func (e *APIError) ToMap() map[string]any {
	out := make(map[string]any, len(e.Payload)+1)
	for k, v := range e.Payload {
		out[k] = v
	}
	out["message"] = e.Message
	return out
}

// PostgreSQL SQLSTATE codes we classify.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// FromStoreError wraps a persistence failure into an APIError.
// Constraint violations reported by PostgreSQL become 409; everything else is 500.
func FromStoreError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgNotNullViolation:
			return &APIError{
				Message:    "Conflict with existing data",
				StatusCode: http.StatusConflict,
				Payload:    map[string]any{"constraint": pgErr.ConstraintName},
				Err:        err,
			}
		}
	}

	return &APIError{
		Message:    "Internal server error",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

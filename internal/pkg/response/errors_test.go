package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_ToMap(t *testing.T) {
	payload := map[string]any{"field": "user_id"}
	e := NewAPIError("bad header", http.StatusBadRequest, payload)

	assert.Equal(t, map[string]any{"field": "user_id", "message": "bad header"}, e.ToMap())
	assert.NotContains(t, payload, "message")
}

func TestNewAPIError_DefaultStatus(t *testing.T) {
	e := NewAPIError("oops", 0, nil)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	assert.Equal(t, map[string]any{"message": "oops"}, e.ToMap())
}

func TestFromStoreError(t *testing.T) {
	t.Run("generic", func(t *testing.T) {
		cause := errors.New("connection reset")
		e := FromStoreError(cause)
		assert.Equal(t, http.StatusInternalServerError, e.StatusCode)
		assert.ErrorIs(t, e, cause)
	})

	t.Run("unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
		e := FromStoreError(fmt.Errorf("insert: %w", pgErr))
		assert.Equal(t, http.StatusConflict, e.StatusCode)
		assert.Equal(t, "idx_users_email", e.ToMap()["constraint"])
	})

	t.Run("already an api error", func(t *testing.T) {
		orig := NewAPIError("teapot", http.StatusTeapot, nil)
		assert.Same(t, orig, FromStoreError(fmt.Errorf("wrapped: %w", orig)))
	})
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	err := NotFound("category", "cat-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "cat-1")
}

func TestDeleteBlocked(t *testing.T) {
	err := DeleteBlocked("category", "1 child category, 5 products still reference it")
	assert.ErrorIs(t, err, ErrDeleteBlocked)
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
	assert.Contains(t, err.Error(), "5 products")
}

func TestForeignKeyViolation(t *testing.T) {
	err := ForeignKeyViolation("categoryId", "missing-id")
	assert.ErrorIs(t, err, ErrForeignKey)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_Sentinels(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrAlreadyExists, http.StatusConflict},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrDeleteBlocked, http.StatusConflict},
		{ErrForeignKey, http.StatusBadRequest},
		{ErrServiceUnavail, http.StatusServiceUnavailable},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err), tt.err.Error())
	}
}

func TestHTTPStatus_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("get category: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestStorageUnavailable(t *testing.T) {
	err := StorageUnavailable(errors.New("dial tcp: connection refused"))
	assert.ErrorIs(t, err, ErrServiceUnavail)
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
}

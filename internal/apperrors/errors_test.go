package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusCodeAndPublicMessage(t *testing.T) {
	cause := errors.New("connection reset")
	tests := []struct {
		name     string
		err      error
		sentinel error
		status   int
		message  string
	}{
		{name: "not found", err: apperrors.NewNotFoundError("Company not found."), sentinel: apperrors.ErrNotFound, status: http.StatusNotFound, message: "Company not found."},
		{name: "validation", err: apperrors.NewValidationFailedError("Tax is a fixed account and cannot be removed."), sentinel: apperrors.ErrValidation, status: http.StatusUnprocessableEntity, message: "Tax is a fixed account and cannot be removed."},
		{name: "range", err: apperrors.NewRangeError("position must be between 1 and 10"), sentinel: apperrors.ErrRange, status: http.StatusUnprocessableEntity, message: "position must be between 1 and 10"},
		{name: "lookup keeps cause", err: apperrors.NewLookupError("Unable to load company memberships.", cause), sentinel: cause, status: http.StatusBadGateway, message: "Unable to load company memberships."},
		{name: "wrapped sentinel", err: fmt.Errorf("saving: %w", apperrors.ErrConflict), sentinel: apperrors.ErrConflict, status: http.StatusConflict, message: "saving: resource conflict"},
		{name: "bad request", err: apperrors.NewBadRequestError("bad body"), sentinel: apperrors.ErrValidation, status: http.StatusBadRequest, message: "bad body"},
		{name: "plain error", err: errors.New("db down"), status: http.StatusInternalServerError, message: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sentinel != nil {
				assert.ErrorIs(t, tt.err, tt.sentinel)
			}
			assert.Equal(t, tt.status, apperrors.StatusCode(tt.err))
			assert.Equal(t, tt.message, apperrors.PublicMessage(tt.err))
		})
	}
}

func TestNewLookupError_WithoutCause(t *testing.T) {
	err := apperrors.NewLookupError("Unable to load demo workspaces.", nil)

	assert.ErrorIs(t, err, apperrors.ErrLookup)
	assert.Equal(t, "Unable to load demo workspaces.: lookup failure", err.Error())
}

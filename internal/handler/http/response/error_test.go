package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrace/worktrace-backend-go/internal/domain/auth"
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/validator"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation errors", validator.ValidationErrors{{Field: "date", Message: "required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"revoked token", auth.ErrTokenRevoked, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"work update not found", worklog.ErrWorkUpdateNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"image not found", worklog.ErrImageNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"invalid image url", worklog.ErrInvalidImageURL, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"orphaned image metadata", worklog.ErrImageMetadataOrphaned, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var envelope Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.False(t, envelope.Success)
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestHandleError_UnwrapsWrappedSentinels(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("failed to look up entry: %w", worklog.ErrWorkUpdateNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleError_ValidationDetailsCarryFieldMap(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "start", Message: "start must be formatted yyyy-MM"},
		{Field: "end", Message: "end must be formatted yyyy-MM"},
	})

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "start must be formatted yyyy-MM", envelope.Error.Details["start"])
	assert.Equal(t, "end must be formatted yyyy-MM", envelope.Error.Details["end"])
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{NewValidationError("bad"), http.StatusBadRequest},
		{NewNotFoundError("thing"), http.StatusNotFound},
		{NewConflictError("clash"), http.StatusConflict},
		{NewUnauthorizedError(""), http.StatusUnauthorized},
		{NewEmptyDatasetError(), http.StatusUnprocessableEntity},
		{NewEmptyGroupingError(), http.StatusUnprocessableEntity},
		{NewFetchFailedError(nil), http.StatusBadGateway},
		{NewNoQuestionError("20240101"), http.StatusNotFound},
		{NewInsufficientQuestionsError(7, 10), http.StatusConflict},
		{NewNoArticleError(), http.StatusNotFound},
		{NewInternalError("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.HTTPStatus, string(tt.err.Type))
	}
}

func TestWrapPreservesAppError(t *testing.T) {
	base := NewNotFoundError("dataset")
	wrapped := Wrap(base, "loading day")

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)
	assert.Contains(t, appErr.Message, "loading day")
	assert.True(t, IsNotFound(wrapped))
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("disk on fire"), "saving")
	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.True(t, errors.Is(wrapped, appErr.Cause))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "whatever"))
}

func TestIsTypeHelpers(t *testing.T) {
	err := NewInsufficientQuestionsError(3, 10)
	assert.True(t, IsType(err, ErrorTypeInsufficientQuestions))
	assert.False(t, IsType(err, ErrorTypeNoQuestion))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeNoQuestion))
}

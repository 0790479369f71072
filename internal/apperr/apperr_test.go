package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cause := errors.New("connection reset")

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", Validation("text is required"), http.StatusBadRequest},
		{"not found", NotFound("task %s", "abc"), http.StatusNotFound},
		{"clock skew", ErrClockSkew, http.StatusConflict},
		{"storage", Storage("list tasks", cause), http.StatusInternalServerError},
		{"external", External("generate", cause), http.StatusInternalServerError},
		{"unknown", cause, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestWrappersKeepCause(t *testing.T) {
	cause := errors.New("boom")

	err := Storage("get book", cause)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get book")

	assert.NoError(t, Storage("noop", nil))
	assert.NoError(t, External("noop", nil))
}

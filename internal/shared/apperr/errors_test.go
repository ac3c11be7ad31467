package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidation_WrapsKindAndCause(t *testing.T) {
	cause := validation.Errors{"title": errors.New("cannot be blank")}

	err := Validation(cause)

	assert.ErrorIs(t, err, ErrValidation)

	var verrs validation.Errors
	assert.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs, "title")
}

func TestValidation_Nil(t *testing.T) {
	assert.NoError(t, Validation(nil))
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not found", fmt.Errorf("show not found: %w", ErrNotFound), ErrNotFound},
		{"conflict", fmt.Errorf("title taken: %w", ErrConflict), ErrConflict},
		{"credentials", ErrInvalidCredentials, ErrInvalidCredentials},
		{"validation", Validation(errors.New("bad")), ErrValidation},
		{"unknown", errors.New("boom"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(fmt.Errorf("show not found: %w", ErrNotFound)))
	assert.Equal(t, http.StatusConflict, HTTPStatus(fmt.Errorf("dup: %w", ErrConflict)))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation(errors.New("bad"))))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrInvalidCredentials))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestNew(t *testing.T) {
	err := New(ErrConflict, "a show with this title already exists")

	assert.Equal(t, "a show with this title already exists", err.Error())
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, fmt.Errorf("create: %w", err), err)
}

package api

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    *int   `json:"id" validate:"required"`
	Title string `json:"titulo" validate:"required"`
}

func TestValidatorReportsJSONFieldNames(t *testing.T) {
	err := NewValidator().Validate(&sample{})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Len(t, validationErrs, 2)
	assert.Equal(t, "id", validationErrs[0].Field())
	assert.Equal(t, "titulo", validationErrs[1].Field())
}

func TestValidatorAcceptsZeroID(t *testing.T) {
	zero := 0
	assert.NoError(t, NewValidator().Validate(&sample{ID: &zero, Title: "Hades"}))
}

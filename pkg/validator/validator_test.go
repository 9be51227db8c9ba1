package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string `validate:"required"`
	Level string `validate:"required,oneof='High School' 'Undergraduate'"`
	Age   int    `validate:"gte=16,lte=65"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleForm{Name: "Ada", Level: "High School", Age: 21})

	assert.NoError(t, err)
}

func TestValidateRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleForm{Level: "Undergraduate", Age: 21})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Name is required", formatted["Name"])
}

func TestValidateOneOfWithSpaces(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleForm{Name: "Ada", Level: "Kindergarten", Age: 21})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Contains(t, formatted["Level"], "must be one of")
}

func TestValidateNumericRange(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleForm{Name: "Ada", Level: "Undergraduate", Age: 12})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Age must be greater than or equal to 16", formatted["Age"])
}

package errors

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := New("error")
	withHint := WithHint(err, "try this fix")

	hints := GetAllHints(withHint)
	require.Len(t, hints, 1)
	assert.Equal(t, "try this fix", hints[0])
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsDateFormatError(nil))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("paternal_surname", "", "empty after removing particles")

	assert.Equal(t, "invalid paternal_surname: empty after removing particles", err.Error())
	assert.True(t, IsValidationError(err))
	assert.False(t, IsDateFormatError(err))
	assert.True(t, Is(err, ErrValidation))

	var ve *ValidationError
	require.True(t, As(err, &ve))
	assert.Equal(t, "paternal_surname", ve.Field)
}

func TestValidationError_WithValue(t *testing.T) {
	err := &ValidationError{Field: "blocklist[0]", Value: "ABC", Reason: "must be 4 letters"}
	assert.Equal(t, `invalid blocklist[0] "ABC": must be 4 letters`, err.Error())
}

func TestValidationError_SurvivesWrapping(t *testing.T) {
	err := Wrap(NewValidationError("given_name", "", "required"), "generate")

	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "generate")
	assert.Contains(t, err.Error(), "given_name")
}

func TestDateFormatError_CarriesCause(t *testing.T) {
	_, cause := time.Parse("2-1-2006", "31-02-2001")
	require.Error(t, cause)

	err := NewDateFormatError("31-02-2001", "DD-MM-YYYY", cause)

	assert.True(t, IsDateFormatError(err))
	assert.False(t, IsValidationError(err))
	assert.True(t, Is(err, ErrDateFormat))

	var dfe *DateFormatError
	require.True(t, As(err, &dfe))
	assert.Equal(t, "31-02-2001", dfe.Input)
	assert.Equal(t, "DD-MM-YYYY", dfe.Layout)
	assert.Same(t, cause, dfe.Cause)
	assert.Contains(t, err.Error(), cause.Error())
}

func TestDateFormatError_Hint(t *testing.T) {
	err := NewDateFormatError("yesterday", "DD-MM-YYYY", nil)

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "DD-MM-YYYY")
	assert.Equal(t, `invalid birth date "yesterday": expected DD-MM-YYYY`, err.Error())
}

func TestDateFormatError_UnwrapsToNumError(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := NewDateFormatError("x-1-2000", "DD-MM-YYYY", cause)

	var numErr *strconv.NumError
	assert.True(t, As(err, &numErr))
}

func ExampleNewValidationError() {
	err := NewValidationError("given_name", "", "required")
	fmt.Println(err)
	// Output: invalid given_name: required
}

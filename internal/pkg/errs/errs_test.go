package errs_test

import (
	"errors"
	"testing"

	"burgerpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("menuItem", "Classic Double Smash")

		assert.Equal(t, "menuItem", err.ParamName)
		assert.Equal(t, "Classic Double Smash", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: Classic Double Smash", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is not on the active board")
		err := errs.NewObjectNotFoundErrorWithCause("orderID", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderID, ID is: 42 (cause: order is not on the active board)",
			err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("name", "Bacon Blue Smash")

	assert.Equal(t, "object already exists: param is: name, ID is: Bacon Blue Smash", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("price")

		assert.Equal(t, "value is invalid: price", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("price", errors.New("-1 is negative"))

		assert.Equal(t, "value is invalid: price (cause: -1 is negative)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("slots", 40, 1, 24)

		assert.Equal(t, "value is invalid: 40 is slots, min value is 1, max value is 24", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("keeps values on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredErrorWithCause("ingredient", errors.New("blank name"))

	assert.Equal(t, "value is required: ingredient (cause: blank name)", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestModificationIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewModificationIsInvalidError("ingredient", "bacon")

		assert.Equal(t, "modification is invalid: ingredient bacon", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("ingredient already present")
		err := errs.NewModificationIsInvalidErrorWithCause("ingredient", "bacon", cause)

		assert.Equal(t, "modification is invalid: ingredient bacon (cause: ingredient already present)", err.Error())
		require.ErrorIs(t, err, errs.ErrModificationIsInvalid)

		var target *errs.ModificationIsInvalidError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, cause, target.Cause)
	})
}

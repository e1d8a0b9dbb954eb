package guard_test

import (
	"errors"
	"testing"

	"burgerpos/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errTicketNotConstructed := errors.New("Ticket must be created via NewTicket")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errTicketNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_supplied_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(errTicketNotConstructed)

		// Then
		require.Error(t, err)
		assert.Equal(t, errTicketNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type ticket struct {
		table int
		guard guard.ConstructorGuard
	}
	errTicketNotConstructed := errors.New("ticket must be created via newTicket")

	newTicket := func(table int) (ticket, error) {
		if table <= 0 {
			return ticket{}, errors.New("table must be positive")
		}
		return ticket{table: table, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("built_through_constructor", func(t *testing.T) {
		tk, err := newTicket(4)

		require.NoError(t, err)
		require.NoError(t, tk.guard.Validate(errTicketNotConstructed))
		assert.Equal(t, 4, tk.table)
	})

	t.Run("literal_value_is_rejected", func(t *testing.T) {
		tk := ticket{table: 4}

		assert.ErrorIs(t, tk.guard.Validate(errTicketNotConstructed), errTicketNotConstructed)
	})
}

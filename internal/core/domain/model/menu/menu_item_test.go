package menu_test

import (
	"testing"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/menu"
	"burgerpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	price := kernel.MustMoney("9.99")

	t.Run("should sort and de-duplicate ingredients", func(t *testing.T) {
		item, err := menu.NewMenuItem(" Classic Smash ", "Smashed", price,
			[]string{"patty", "cheese", "lettuce", "onion", "cheese"})

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Classic Smash", item.Name())
		assert.Equal(t, []string{"cheese", "lettuce", "onion", "patty"}, item.Ingredients())
		assert.True(t, item.Price().IsEqual(price))
	})

	t.Run("should fail without a name", func(t *testing.T) {
		_, err := menu.NewMenuItem("  ", "", price, []string{"patty"})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail on blank ingredient", func(t *testing.T) {
		_, err := menu.NewMenuItem("Classic Smash", "", price, []string{"patty", ""})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "ingredient")
	})

	t.Run("should reject control characters in names", func(t *testing.T) {
		_, err := menu.NewMenuItem("Classic", "", price, []string{"patty", "bacon\x1fcheese"})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), menu.ErrNameHasControlChars.Error())

		_, err = menu.NewMenuItem("Clas\x00sic", "", price, []string{"patty"})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := menu.NewMenuItem("", "", price, []string{" "})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "ingredient")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var item menu.MenuItem

		require.ErrorIs(t, item.Validate(), menu.ErrMenuItemIsNotConstructed)
	})
}

func TestMenuItem_IsImmutable(t *testing.T) {
	item, err := menu.NewMenuItem("Classic Smash", "", kernel.MustMoney("9.99"), []string{"patty", "cheese"})
	require.NoError(t, err)

	ingredients := item.Ingredients()
	ingredients[0] = "tofu"

	assert.Equal(t, []string{"cheese", "patty"}, item.Ingredients())
	assert.True(t, item.HasIngredient("cheese"))
	assert.False(t, item.HasIngredient("tofu"))
}

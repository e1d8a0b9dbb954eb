package services_test

import (
	"testing"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/menu"
	"burgerpos/internal/core/domain/model/order"
	"burgerpos/internal/core/domain/services"
	"burgerpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *menu.Catalog {
	t.Helper()
	c := menu.NewCatalog()
	classic, err := menu.NewMenuItem("Classic Smash", "Two patties and the works",
		kernel.MustMoney("9.99"), []string{"patty", "cheese", "lettuce", "onion"})
	require.NoError(t, err)
	require.NoError(t, c.Add(classic))
	return c
}

func cloneFrom(t *testing.T, c *menu.Catalog, name string) *order.Item {
	t.Helper()
	template, err := c.Find(name)
	require.NoError(t, err)
	item, err := order.Clone(template)
	require.NoError(t, err)
	return item
}

func TestOrderSummarizer_Summarize(t *testing.T) {
	t.Run("should mark removed and added ingredients per group", func(t *testing.T) {
		// Given
		catalog := newCatalog(t)
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)

		custom := cloneFrom(t, catalog, "Classic Smash")
		require.NoError(t, custom.RemoveIngredient("lettuce"))
		require.NoError(t, custom.AddIngredient("bacon"))
		require.NoError(t, o.AddItem(custom))
		require.NoError(t, o.AddItem(cloneFrom(t, catalog, "Classic Smash")))
		require.NoError(t, o.AddItem(cloneFrom(t, catalog, "Classic Smash")))

		// When
		summary, err := services.NewOrderSummarizer(catalog).Summarize(o)

		// Then
		require.NoError(t, err)
		assert.True(t, summary.ID.IsEqual(o.ID()))
		assert.Equal(t, "29.97", summary.Total.String())
		require.Len(t, summary.Groups, 2)

		first := summary.Groups[0]
		assert.Equal(t, "Classic Smash", first.Name)
		assert.Equal(t, "Two patties and the works", first.Description)
		assert.Equal(t, 1, first.Count)
		assert.Equal(t, []services.IngredientLine{
			{Name: "cheese"},
			{Name: "lettuce", Mark: services.Removed},
			{Name: "onion"},
			{Name: "patty"},
			{Name: "bacon", Mark: services.Added},
		}, first.Ingredients)

		second := summary.Groups[1]
		assert.Equal(t, 2, second.Count)
		assert.Equal(t, "19.98", second.Subtotal.String())
		for _, line := range second.Ingredients {
			assert.Equal(t, services.Unmarked, line.Mark)
		}
	})

	t.Run("should mark removals inherited from a modified item", func(t *testing.T) {
		// Given
		catalog := newCatalog(t)
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)

		base := cloneFrom(t, catalog, "Classic Smash")
		require.NoError(t, base.RemoveIngredient("onion"))
		copied, err := order.Clone(base)
		require.NoError(t, err)
		require.NoError(t, copied.AddIngredient("bacon"))
		require.NoError(t, o.AddItem(copied))

		// When
		summary, err := services.NewOrderSummarizer(catalog).Summarize(o)

		// Then
		require.NoError(t, err)
		require.Len(t, summary.Groups, 1)
		assert.Equal(t, []services.IngredientLine{
			{Name: "cheese"},
			{Name: "lettuce"},
			{Name: "onion", Mark: services.Removed},
			{Name: "patty"},
			{Name: "bacon", Mark: services.Added},
		}, summary.Groups[0].Ingredients)
	})

	t.Run("should fail when the template left the catalog", func(t *testing.T) {
		catalog := newCatalog(t)
		o, err := order.NewOrder(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, o.AddItem(cloneFrom(t, catalog, "Classic Smash")))
		catalog.Remove("Classic Smash")

		_, err = services.NewOrderSummarizer(catalog).Summarize(o)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an unconstructed order", func(t *testing.T) {
		_, err := services.NewOrderSummarizer(newCatalog(t)).Summarize(nil)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestMark_String(t *testing.T) {
	assert.Equal(t, "", services.Unmarked.String())
	assert.Equal(t, "removed", services.Removed.String())
	assert.Equal(t, "added", services.Added.String())
}

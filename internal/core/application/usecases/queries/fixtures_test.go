package queries_test

import (
	"io"
	"log/slog"
	"testing"

	"burgerpos/internal/adapters/out/memory"
	"burgerpos/internal/adapters/out/memory/orderregistry"
	"burgerpos/internal/core/application/lifecycle"
	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/menu"
	"burgerpos/internal/core/domain/model/order"
	"burgerpos/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	catalog    *menu.Catalog
	registry   *orderregistry.Registry
	controller *lifecycle.Controller
	uowFactory *memory.UnitOfWorkFactory
	summarizer services.OrderSummarizer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	catalog := menu.NewCatalog()
	for _, item := range []struct {
		name, description, price string
		ingredients              []string
	}{
		{"Classic Double Smash", "Two patties, cheese, pickles, onion", "9.99", []string{"patty", "cheese", "pickles", "onion"}},
		{"Bacon Blue Smash", "Blue cheese and bacon", "11.50", []string{"patty", "blue cheese", "bacon"}},
	} {
		menuItem, err := menu.NewMenuItem(item.name, item.description, kernel.MustMoney(item.price), item.ingredients)
		require.NoError(t, err)
		require.NoError(t, catalog.Add(menuItem))
	}

	registry := orderregistry.New()
	return fixture{
		catalog:    catalog,
		registry:   registry,
		controller: lifecycle.NewController(registry, slog.New(slog.NewTextHandler(io.Discard, nil))),
		uowFactory: memory.NewUnitOfWorkFactory(),
		summarizer: services.NewOrderSummarizer(catalog),
	}
}

func (f fixture) addItem(t *testing.T, name string, add ...string) {
	t.Helper()
	template, err := f.catalog.Find(name)
	require.NoError(t, err)
	item, err := order.Clone(template)
	require.NoError(t, err)
	for _, ingredient := range add {
		require.NoError(t, item.AddIngredient(ingredient))
	}
	_, err = f.controller.AddItemToCurrent(item)
	require.NoError(t, err)
}

func (f fixture) confirm(t *testing.T, customerName string) *order.Order {
	t.Helper()
	confirmed, err := f.controller.Confirm(customerName)
	require.NoError(t, err)
	return confirmed
}

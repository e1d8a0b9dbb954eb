package commands_test

import (
	"errors"
	"testing"

	"burgerpos/internal/core/application/usecases/commands"
	"burgerpos/internal/core/domain/model/order"
	"burgerpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustAddItemCommand(t *testing.T, configuration commands.ItemConfiguration) commands.AddItemToOrderCommand {
	t.Helper()
	cmd, err := commands.NewAddItemToOrderCommand(configuration)
	require.NoError(t, err)
	return cmd
}

func TestAddItemToOrderCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	controller := newController()
	factory, uow := committingUoW(ctx)
	cmd := mustAddItemCommand(t, commands.ItemConfiguration{
		MenuItemName: "Classic Double Smash",
		Add:          []string{"bacon"},
		Remove:       []string{"onion"},
	})

	// When
	h := commands.NewAddItemToOrderCommandHandler(factory, controller, newCatalog(t))
	groups, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	current, ok := controller.CurrentOrder()
	require.True(t, ok)
	require.Equal(t, 1, current.Len())
	item := current.Items()[0]
	assert.True(t, item.IsSealed())
	assert.Equal(t, "cheese, patty, pickles, ADD bacon", item.DisplayIngredients())
	require.Len(t, groups, 1)
	assert.Same(t, item, groups[0].Item)
	assert.Equal(t, 1, groups[0].Count)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddItemToOrderCommandHandler_Handle_GroupsIdenticalItems(t *testing.T) {
	ctx := t.Context()
	controller := newController()
	catalog := newCatalog(t)
	cmd := mustAddItemCommand(t, commands.ItemConfiguration{MenuItemName: "Classic Double Smash"})

	var groups []order.Group
	for range 2 {
		factory, _ := committingUoW(ctx)
		h := commands.NewAddItemToOrderCommandHandler(factory, controller, catalog)
		var err error
		groups, err = h.Handle(ctx, cmd)
		require.NoError(t, err)
	}

	current, _ := controller.CurrentOrder()
	assert.Equal(t, current.GroupByConfiguration(), groups)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "19.98", groups[0].Subtotal().String())
}

func TestAddItemToOrderCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewAddItemToOrderCommandHandler(factory, newController(), newCatalog(t))

	_, err := h.Handle(t.Context(), mustAddItemCommand(t, commands.ItemConfiguration{MenuItemName: "Veggie"}))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestAddItemToOrderCommandHandler_Handle_InvalidModification(t *testing.T) {
	tests := []struct {
		name          string
		configuration commands.ItemConfiguration
		cause         error
	}{
		{
			name:          "adding an ingredient already on the burger",
			configuration: commands.ItemConfiguration{MenuItemName: "Classic Double Smash", Add: []string{"cheese"}},
			cause:         order.ErrIngredientAlreadyPresent,
		},
		{
			name:          "removing an ingredient the burger does not have",
			configuration: commands.ItemConfiguration{MenuItemName: "Classic Double Smash", Remove: []string{"bacon"}},
			cause:         order.ErrIngredientNotPresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := newController()
			factory := new(MockUoWFactory)
			h := commands.NewAddItemToOrderCommandHandler(factory, controller, newCatalog(t))

			_, err := h.Handle(t.Context(), mustAddItemCommand(t, tt.configuration))

			require.ErrorIs(t, err, errs.ErrModificationIsInvalid)
			assert.Contains(t, err.Error(), tt.cause.Error())
			_, ok := controller.CurrentOrder()
			assert.False(t, ok)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestAddItemToOrderCommandHandler_Handle_RemoveThenAddKeepsBoth(t *testing.T) {
	ctx := t.Context()
	controller := newController()
	factory, _ := committingUoW(ctx)
	cmd := mustAddItemCommand(t, commands.ItemConfiguration{
		MenuItemName: "Classic Double Smash",
		Add:          []string{"onion"},
		Remove:       []string{"onion"},
	})

	h := commands.NewAddItemToOrderCommandHandler(factory, controller, newCatalog(t))
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	current, _ := controller.CurrentOrder()
	added, removed := current.Items()[0].Modifications()
	assert.Equal(t, []string{"onion"}, added)
	assert.Equal(t, []string{"onion"}, removed)
}

func TestAddItemToOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewAddItemToOrderCommandHandler(factory, newController(), newCatalog(t))
	groups, err := h.Handle(ctx, mustAddItemCommand(t, commands.ItemConfiguration{MenuItemName: "Classic Double Smash"}))

	require.Error(t, err)
	assert.Nil(t, groups)
	uow.AssertExpectations(t)
}

func TestAddItemToOrderCommandHandler_Handle_CommitError(t *testing.T) {
	// Given
	ctx := t.Context()
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// When
	h := commands.NewAddItemToOrderCommandHandler(factory, newController(), newCatalog(t))
	groups, err := h.Handle(ctx, mustAddItemCommand(t, commands.ItemConfiguration{MenuItemName: "Classic Double Smash"}))

	// Then
	require.EqualError(t, err, "commit error")
	assert.Nil(t, groups)
	uow.AssertExpectations(t)
}

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"burgerpos/internal/adapters/out/memory/orderregistry"
	"burgerpos/internal/core/application/lifecycle"
	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/menu"
	"burgerpos/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

// committingUoW expects one successful Begin/Commit/Rollback cycle.
func committingUoW(ctx context.Context) (*MockUoWFactory, *MockUoW) {
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}

// rollingBackUoW expects a unit of work that is begun and rolled back without a commit.
func rollingBackUoW(ctx context.Context) (*MockUoWFactory, *MockUoW) {
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}

func newController() *lifecycle.Controller {
	return lifecycle.NewController(orderregistry.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newCatalog(t *testing.T) *menu.Catalog {
	t.Helper()
	catalog := menu.NewCatalog()
	item, err := menu.NewMenuItem("Classic Double Smash", "Two smashed patties",
		kernel.MustMoney("9.99"), []string{"patty", "cheese", "pickles", "onion"})
	require.NoError(t, err)
	require.NoError(t, catalog.Add(item))
	return catalog
}

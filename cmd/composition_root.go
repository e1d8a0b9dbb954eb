package cmd

import (
	"log/slog"

	httpin "burgerpos/internal/adapters/in/http"
	"burgerpos/internal/adapters/out/memory"
	"burgerpos/internal/adapters/out/memory/orderregistry"
	"burgerpos/internal/adapters/out/menufile"
	"burgerpos/internal/core/application/lifecycle"
	"burgerpos/internal/core/application/usecases/commands"
	"burgerpos/internal/core/application/usecases/queries"
	"burgerpos/internal/core/domain/model/menu"
	"burgerpos/internal/core/domain/services"
	"burgerpos/internal/jobs"
)

// CompositionRoot owns the process-wide state: the menu, the order registry and
// the lifecycle controller, all guarded by one unit-of-work factory.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	catalog    *menu.Catalog
	registry   *orderregistry.Registry
	controller *lifecycle.Controller
	uowFactory *memory.UnitOfWorkFactory
	summarizer services.OrderSummarizer
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	catalog, err := menufile.New().Load(config.MenuFile)
	if err != nil {
		return nil, err
	}

	registry := orderregistry.New()
	return &CompositionRoot{
		config:     config,
		logger:     logger,
		catalog:    catalog,
		registry:   registry,
		controller: lifecycle.NewController(registry, logger),
		uowFactory: memory.NewUnitOfWorkFactory(),
		summarizer: services.NewOrderSummarizer(catalog),
	}, nil
}

func (c *CompositionRoot) Catalog() *menu.Catalog {
	return c.catalog
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	return commands.NewStartOrderCommandHandler(c.uowFactory, c.controller)
}

func (c *CompositionRoot) CreateAddItemToOrderCommandHandler() commands.AddItemToOrderCommandHandler {
	return commands.NewAddItemToOrderCommandHandler(c.uowFactory, c.controller, c.catalog)
}

func (c *CompositionRoot) CreateRemoveItemFromOrderCommandHandler() commands.RemoveItemFromOrderCommandHandler {
	return commands.NewRemoveItemFromOrderCommandHandler(c.uowFactory, c.controller, c.catalog)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.uowFactory, c.controller)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.uowFactory, c.controller)
}

func (c *CompositionRoot) CreateDiscardCurrentOrderCommandHandler() commands.DiscardCurrentOrderCommandHandler {
	return commands.NewDiscardCurrentOrderCommandHandler(c.uowFactory, c.controller)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetCurrentOrderQueryHandler() queries.GetCurrentOrderQueryHandler {
	return queries.NewGetCurrentOrderQueryHandler(c.uowFactory, c.controller, c.summarizer)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.uowFactory, c.controller, c.summarizer, c.config.ActiveBoardSlots)
}

func (c *CompositionRoot) CreateGetOrderReceiptQueryHandler() queries.GetOrderReceiptQueryHandler {
	return queries.NewGetOrderReceiptQueryHandler(c.uowFactory, c.registry)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		StartOrder:          c.CreateStartOrderCommandHandler(),
		AddItem:             c.CreateAddItemToOrderCommandHandler(),
		RemoveItem:          c.CreateRemoveItemFromOrderCommandHandler(),
		ConfirmOrder:        c.CreateConfirmOrderCommandHandler(),
		CompleteOrder:       c.CreateCompleteOrderCommandHandler(),
		DiscardCurrentOrder: c.CreateDiscardCurrentOrderCommandHandler(),
		GetMenu:             c.CreateGetMenuQueryHandler(),
		GetCurrentOrder:     c.CreateGetCurrentOrderQueryHandler(),
		GetActiveOrders:     c.CreateGetActiveOrdersQueryHandler(),
		GetOrderReceipt:     c.CreateGetOrderReceiptQueryHandler(),
		Summarizer:          c.summarizer,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetActiveOrdersQueryHandler(), jobs.StaleOrderSettings{
		After:    c.config.StaleOrderAfter,
		Schedule: c.config.StaleOrderSchedule,
	}, c.logger)
}

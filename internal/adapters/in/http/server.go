// Package http exposes the point-of-sale core as a JSON API for the touchscreen
// front end.
package http

import (
	"net/http"

	"burgerpos/internal/core/application/usecases/commands"
	"burgerpos/internal/core/application/usecases/queries"
	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/order"
	"burgerpos/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startOrderHandler          commands.StartOrderCommandHandler
	addItemHandler             commands.AddItemToOrderCommandHandler
	removeItemHandler          commands.RemoveItemFromOrderCommandHandler
	confirmOrderHandler        commands.ConfirmOrderCommandHandler
	completeOrderHandler       commands.CompleteOrderCommandHandler
	discardCurrentOrderHandler commands.DiscardCurrentOrderCommandHandler

	// Query handlers
	getMenuHandler         queries.GetMenuQueryHandler
	getCurrentOrderHandler queries.GetCurrentOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getOrderReceiptHandler queries.GetOrderReceiptQueryHandler

	summarizer services.OrderSummarizer
}

// Handlers groups the use cases the server needs.
type Handlers struct {
	StartOrder          commands.StartOrderCommandHandler
	AddItem             commands.AddItemToOrderCommandHandler
	RemoveItem          commands.RemoveItemFromOrderCommandHandler
	ConfirmOrder        commands.ConfirmOrderCommandHandler
	CompleteOrder       commands.CompleteOrderCommandHandler
	DiscardCurrentOrder commands.DiscardCurrentOrderCommandHandler

	GetMenu         queries.GetMenuQueryHandler
	GetCurrentOrder queries.GetCurrentOrderQueryHandler
	GetActiveOrders queries.GetActiveOrdersQueryHandler
	GetOrderReceipt queries.GetOrderReceiptQueryHandler

	// Summarizer renders the groups returned by item commands.
	Summarizer services.OrderSummarizer
}

func NewServer(h Handlers) *Server {
	return &Server{
		startOrderHandler:          h.StartOrder,
		addItemHandler:             h.AddItem,
		removeItemHandler:          h.RemoveItem,
		confirmOrderHandler:        h.ConfirmOrder,
		completeOrderHandler:       h.CompleteOrder,
		discardCurrentOrderHandler: h.DiscardCurrentOrder,
		getMenuHandler:             h.GetMenu,
		getCurrentOrderHandler:     h.GetCurrentOrder,
		getActiveOrdersHandler:     h.GetActiveOrders,
		getOrderReceiptHandler:     h.GetOrderReceipt,
		summarizer:                 h.Summarizer,
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	api.GET("/menu", s.GetMenu)

	api.GET("/orders/current", s.GetCurrentOrder)
	api.POST("/orders/current", s.StartOrder)
	api.DELETE("/orders/current", s.DiscardCurrentOrder)
	api.POST("/orders/current/items", s.AddItem)
	api.DELETE("/orders/current/items", s.RemoveItem)
	api.POST("/orders/current/confirm", s.ConfirmOrder)

	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.GET("/orders/:id/receipt", s.GetOrderReceipt)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{Status: "healthy"})
}

// GetMenu handles GET /api/v1/menu - lists the burgers on sale.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, items)
}

// GetCurrentOrder handles GET /api/v1/orders/current - the building panel.
func (s *Server) GetCurrentOrder(ctx echo.Context) error {
	return s.respondWithCurrentOrder(ctx, http.StatusOK)
}

// StartOrder handles POST /api/v1/orders/current.
func (s *Server) StartOrder(ctx echo.Context) error {
	id, err := s.startOrderHandler.Handle(ctx.Request().Context(), commands.NewStartOrderCommand())
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, OrderCreated{ID: id.String()})
}

// DiscardCurrentOrder handles DELETE /api/v1/orders/current.
func (s *Server) DiscardCurrentOrder(ctx echo.Context) error {
	cmd := commands.NewDiscardCurrentOrderCommand()
	if err := s.discardCurrentOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddItem handles POST /api/v1/orders/current/items and answers with the
// regrouped current order as committed by the same command.
func (s *Server) AddItem(ctx echo.Context) error {
	var req ItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddItemToOrderCommand(req.configuration())
	if err != nil {
		return errorResponse(ctx, err)
	}

	groups, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return s.respondWithGroups(ctx, http.StatusCreated, groups)
}

// RemoveItem handles DELETE /api/v1/orders/current/items.
func (s *Server) RemoveItem(ctx echo.Context) error {
	var req ItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRemoveItemFromOrderCommand(req.configuration())
	if err != nil {
		return errorResponse(ctx, err)
	}

	groups, err := s.removeItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return s.respondWithGroups(ctx, http.StatusOK, groups)
}

// ConfirmOrder handles POST /api/v1/orders/current/confirm. The body is optional.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	var req ConfirmRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), commands.NewConfirmOrderCommand(req.CustomerName))
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, OrderCreated{ID: id.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active - the kitchen board.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	board, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, board)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderReceipt handles GET /api/v1/orders/:id/receipt.
func (s *Server) GetOrderReceipt(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderReceiptQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	receipt, err := s.getOrderReceiptHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, receipt)
}

func (s *Server) respondWithCurrentOrder(ctx echo.Context, code int) error {
	summary, err := s.getCurrentOrderHandler.Handle(ctx.Request().Context(), queries.NewGetCurrentOrderQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(code, summary)
}

func (s *Server) respondWithGroups(ctx echo.Context, code int, groups []order.Group) error {
	summaries, err := s.summarizer.SummarizeGroups(groups)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var total kernel.Money
	for _, g := range groups {
		total = total.Add(g.Subtotal())
	}
	return ctx.JSON(code, CurrentItems{Total: total, Groups: summaries})
}

func (r ItemRequest) configuration() commands.ItemConfiguration {
	return commands.ItemConfiguration{
		MenuItemName: r.MenuItem,
		Add:          r.Add,
		Remove:       r.Remove,
	}
}

// Package http exposes the order lifecycle over REST. Handlers translate
// wire requests into commands and queries and map domain errors onto
// status codes: unrecognized statuses are 422, illegal transitions 409,
// missing orders 404.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderStatusHandler   queries.GetOrderStatusQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderStatusHandler:    getOrderStatusHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getStatusHistoryHandler:  getStatusHistoryHandler,
	}
}

// RegisterRoutes binds all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetActiveOrders)
	api.GET("/orders/:number/status", s.GetOrderStatus)
	api.POST("/orders/:number/status", s.ChangeOrderStatus)
	api.POST("/orders/:number/cancel", s.CancelOrder)
	api.GET("/orders/:number/history", s.GetStatusHistory)
}

// CreateOrder handles POST /api/v1/orders - registers a new order in pending status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, newOrder.OrderNumber, newOrder.Address)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return createError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, StatusChangeResponse{
		OrderNumber: newOrder.OrderNumber,
		Status:      order.Pending.String(),
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/:number/status - moves an
// order along one edge of the lifecycle graph.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	var req StatusChangeRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderNumber, req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	newStatus, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return transitionError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusChangeResponse{
		OrderNumber: orderNumber,
		Status:      newStatus.String(),
	})
}

// CancelOrder handles POST /api/v1/orders/:number/cancel - cancels an order
// if its current status still allows it.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation: " + err.Error(),
		})
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return transitionError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusChangeResponse{
		OrderNumber: orderNumber,
		Status:      order.Cancelled.String(),
	})
}

// GetOrderStatus handles GET /api/v1/orders/:number/status - the tracking read.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	query, err := queries.NewGetOrderStatusQuery(orderNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status query: " + err.Error(),
		})
	}

	resp, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order status",
		})
	}

	nextStatuses := make([]string, len(resp.NextStatuses))
	for i, status := range resp.NextStatuses {
		nextStatuses[i] = status.String()
	}

	return ctx.JSON(http.StatusOK, OrderStatus{
		OrderNumber:   resp.OrderNumber,
		Status:        resp.Status.String(),
		NextStatuses:  nextStatuses,
		IsTerminal:    resp.IsTerminal,
		IsCancellable: resp.IsCancellable,
	})
}

// GetActiveOrders handles GET /api/v1/orders - lists all non-terminal orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve active orders",
		})
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			Address:     o.Address,
			Status:      o.Status.String(),
			UpdatedAt:   o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatusHistory handles GET /api/v1/orders/:number/history - the audit trail.
func (s *Server) GetStatusHistory(ctx echo.Context) error {
	orderNumber, err := orderNumberParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number",
		})
	}

	query, err := queries.NewGetStatusHistoryQuery(orderNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid history query: " + err.Error(),
		})
	}

	history, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve status history",
		})
	}

	response := make([]HistoryEntry, len(history))
	for i, entry := range history {
		response[i] = HistoryEntry{
			From:       entry.From.String(),
			To:         entry.To.String(),
			OccurredAt: entry.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderNumberParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("number"), 10, 64)
}

// createError maps order-creation failures onto status codes: 409 only for
// a colliding order number, anything else is a server fault.
func createError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Order already exists",
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Failed to create order",
	})
}

// transitionError maps transition failures onto status codes. The split
// matters to callers: 422 means the status string itself is unrecognized,
// 409 means the status is fine but the current state forbids the move.
func transitionError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, order.ErrInvalidStatus):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrIllegalTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to change order status",
		})
	}
}

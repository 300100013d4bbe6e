// Package http adapts the generated OpenAPI server interface to the
// application's command and query handlers.
package http

import (
	"errors"
	"net/http"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/ingredient"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/generated/servers"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	defaultReportWindow = 30 * 24 * time.Hour
	defaultReportLimit  = 5
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler  commands.PlaceOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getActiveOrdersHandler      queries.GetActiveOrdersQueryHandler
	getMenuHandler              queries.GetMenuQueryHandler
	getAllCustomersHandler      queries.GetAllCustomersQueryHandler
	topIngredientsHandler       queries.TopIngredientsQueryHandler
	categoryAveragePriceHandler queries.CategoryAveragePriceQueryHandler
	topCategoryHandler          queries.TopCategoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
	topIngredientsHandler queries.TopIngredientsQueryHandler,
	categoryAveragePriceHandler queries.CategoryAveragePriceQueryHandler,
	topCategoryHandler queries.TopCategoryQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
		getMenuHandler:              getMenuHandler,
		getAllCustomersHandler:      getAllCustomersHandler,
		topIngredientsHandler:       topIngredientsHandler,
		categoryAveragePriceHandler: categoryAveragePriceHandler,
		topCategoryHandler:          topCategoryHandler,
	}
}

// PlaceOrder handles POST /api/v1/orders - atomically places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer id")
	}

	pizzaIDs := make([]kernel.UUID, 0, len(newOrder.PizzaIds))
	for _, id := range newOrder.PizzaIds {
		pizzaID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid pizza id")
		}
		pizzaIDs = append(pizzaIDs, pizzaID)
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID, pizzaIDs)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(
		placed.ID(), placed.CustomerID(), placed.Total(), placed.Courier(), placed.Status().String(), placed.CreatedAt(),
	))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - reverts a placed order.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders - retrieves all pending orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o.ID, o.CustomerID, o.Total, o.CourierID, order.Pending.String(), o.CreatedAt)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenu handles GET /api/v1/menu - retrieves the pizza catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	query := queries.NewGetMenuQuery()

	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve menu")
	}

	response := make([]servers.Pizza, len(menu))
	for i, item := range menu {
		response[i] = servers.Pizza{
			Id:       item.ID.Bytes(),
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomers handles GET /api/v1/customers - retrieves all customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve customers")
	}

	response := make([]servers.Customer, len(customers))
	for i, customer := range customers {
		response[i] = servers.Customer{
			Id:      customer.ID.Bytes(),
			Name:    customer.Name,
			Phone:   customer.Phone,
			Address: customer.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTopIngredientsReport handles GET /api/v1/reports/top-ingredients.
func (s *Server) GetTopIngredientsReport(ctx echo.Context, params servers.GetTopIngredientsReportParams) error {
	since := time.Now().Add(-defaultReportWindow)
	if params.Since != nil {
		since = *params.Since
	}

	limit := defaultReportLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewTopIngredientsQuery(since, limit)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid report parameters: "+err.Error())
	}

	top, err := s.topIngredientsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to compute ingredient report")
	}

	response := make([]servers.IngredientUsage, len(top))
	for i, entry := range top {
		response[i] = servers.IngredientUsage{
			Id:   entry.ID.Bytes(),
			Name: entry.Name,
			Uses: entry.Uses,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCategoryPricesReport handles GET /api/v1/reports/category-prices.
func (s *Server) GetCategoryPricesReport(ctx echo.Context) error {
	query := queries.NewCategoryAveragePriceQuery()

	prices, err := s.categoryAveragePriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to compute price report")
	}

	response := make([]servers.CategoryPrice, len(prices))
	for i, entry := range prices {
		response[i] = servers.CategoryPrice{
			Category:     entry.Category,
			AveragePrice: entry.AveragePrice,
			PizzaCount:   entry.PizzaCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTopCategoryReport handles GET /api/v1/reports/top-category.
func (s *Server) GetTopCategoryReport(ctx echo.Context) error {
	query := queries.NewTopCategoryQuery()

	top, err := s.topCategoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to compute category report")
	}

	if top == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, servers.TopCategory{
		Category:  top.Category,
		UnitsSold: top.UnitsSold,
	})
}

func toOrderResponse(
	id kernel.UUID,
	customerID kernel.UUID,
	total float64,
	courierID *kernel.UUID,
	status string,
	createdAt time.Time,
) servers.Order {
	response := servers.Order{
		Id:         id.Bytes(),
		CustomerId: customerID.Bytes(),
		Total:      total,
		Status:     status,
		CreatedAt:  createdAt,
	}

	if courierID != nil {
		assigned := courierID.Bytes()
		response.CourierId = &assigned
	}

	return response
}

// commandErrorResponse maps fulfillment failures onto the HTTP status taxonomy:
// business rejections are 409, missing aggregates 404 and exhausted retries 503.
func commandErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, ingredient.ErrInsufficientStock):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNoCourierAvailable):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrAlreadyCancelled):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return errorResponse(ctx, http.StatusServiceUnavailable, "Temporary contention, retry the request")
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Order operation failed")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

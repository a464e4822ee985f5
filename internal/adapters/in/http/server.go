// Package http exposes the quotation and order lifecycle operations over a
// REST API. It translates transport concerns into commands and queries and
// maps domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/history"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	_ "shipping/docs/swagger"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const defaultStatsWindowDays = 30

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	requestQuotesHandler       commands.RequestQuotesCommandHandler
	bindQuoteHandler           commands.BindQuoteCommandHandler
	advanceOrderHandler        commands.AdvanceOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	recordDeliveryEventHandler commands.RecordDeliveryEventCommandHandler

	// Query handlers
	getOrderQuotesHandler queries.GetOrderQuotesQueryHandler
	getStatsHandler       queries.GetStatsQueryHandler

	openapiDoc *openapi3.T
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	requestQuotesHandler commands.RequestQuotesCommandHandler,
	bindQuoteHandler commands.BindQuoteCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordDeliveryEventHandler commands.RecordDeliveryEventCommandHandler,
	getOrderQuotesHandler queries.GetOrderQuotesQueryHandler,
	getStatsHandler queries.GetStatsQueryHandler,
	openapiDoc *openapi3.T,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		requestQuotesHandler:       requestQuotesHandler,
		bindQuoteHandler:           bindQuoteHandler,
		advanceOrderHandler:        advanceOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		recordDeliveryEventHandler: recordDeliveryEventHandler,
		getOrderQuotesHandler:      getOrderQuotesHandler,
		getStatsHandler:            getStatsHandler,
		openapiDoc:                 openapiDoc,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/api/v1/openapi.json", s.GetOpenAPISpec)

	g := e.Group("/api/v1", IdentityMiddleware())
	g.POST("/orders", s.CreateOrder)
	g.POST("/orders/:orderId/quotes", s.RequestQuotes)
	g.GET("/orders/:orderId/quotes", s.GetOrderQuotes)
	g.POST("/orders/:orderId/quotes/bind", s.BindQuote)
	g.POST("/orders/:orderId/advance", s.AdvanceOrder)
	g.POST("/orders/:orderId/cancel", s.CancelOrder)
	g.POST("/orders/:orderId/events", s.RecordDeliveryEvent)
	g.GET("/stats", s.GetStats)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetOpenAPISpec handles GET /api/v1/openapi.json - serves the API contract.
func (s *Server) GetOpenAPISpec(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.openapiDoc)
}

// CreateOrder handles POST /api/v1/orders - registers a new shipment order.
//
//	@Summary	Register a new shipment order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		NewOrderRequest	true	"order to create"
//	@Success	201		{object}	OrderCreatedResponse
//	@Router		/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	identity := callerIdentity(ctx)
	if !identity.Role.CanMutate() {
		return forbidden(ctx)
	}

	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	warehouseID, err := kernel.UUIDFromString(request.WarehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse ID: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, identity.UserID, warehouseID,
		request.RecipientName, request.TotalWeightKg)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{ID: orderID.String()})
}

// RequestQuotes handles POST /api/v1/orders/{orderId}/quotes - fans a rate
// request out to every vendor and returns the ranked surviving quotes.
//
//	@Summary	Request quotes from all vendors
//	@Tags		quotes
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string			true	"order ID"
//	@Param		request	body		QuoteRequest	true	"shipment distance"
//	@Success	200		{array}		QuoteResponse
//	@Router		/api/v1/orders/{orderId}/quotes [post]
func (s *Server) RequestQuotes(ctx echo.Context) error {
	identity := callerIdentity(ctx)
	if !identity.Role.CanMutate() {
		return forbidden(ctx)
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var request QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRequestQuotesCommand(orderID, request.DistanceKm)
	if err != nil {
		return badRequest(ctx, "Invalid quote request: "+err.Error())
	}

	issued, err := s.requestQuotesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]QuoteResponse, len(issued))
	for i, q := range issued {
		response[i] = QuoteResponse{
			ID:            q.ID().String(),
			VendorID:      q.VendorID().String(),
			Price:         q.Price(),
			EstimatedDays: q.EstimatedDays(),
			ValidUntil:    q.ValidUntil(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderQuotes handles GET /api/v1/orders/{orderId}/quotes - lists the
// currently valid quotes of an order.
//
//	@Summary	List valid quotes of an order
//	@Tags		quotes
//	@Produce	json
//	@Param		orderId	path	string	true	"order ID"
//	@Success	200		{array}	QuoteResponse
//	@Router		/api/v1/orders/{orderId}/quotes [get]
func (s *Server) GetOrderQuotes(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuotesQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	listing, err := s.getOrderQuotesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]QuoteResponse, len(listing))
	for i, q := range listing {
		response[i] = QuoteResponse{
			ID:            q.ID.String(),
			VendorID:      q.VendorID.String(),
			Price:         q.Price,
			EstimatedDays: q.EstimatedDays,
			ValidUntil:    q.ValidUntil,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// BindQuote handles POST /api/v1/orders/{orderId}/quotes/bind - binds one
// quote to the order, fixing its shipping price.
//
//	@Summary	Bind a quote to an order
//	@Tags		quotes
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string		true	"order ID"
//	@Param		request	body		BindRequest	true	"quote to bind"
//	@Success	200		{object}	BindResultResponse
//	@Router		/api/v1/orders/{orderId}/quotes/bind [post]
func (s *Server) BindQuote(ctx echo.Context) error {
	identity := callerIdentity(ctx)
	if !identity.Role.CanMutate() {
		return forbidden(ctx)
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var request BindRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quoteID, err := kernel.UUIDFromString(request.QuoteID)
	if err != nil {
		return badRequest(ctx, "Invalid quote ID: "+err.Error())
	}

	cmd, err := commands.NewBindQuoteCommand(orderID, quoteID)
	if err != nil {
		return badRequest(ctx, "Invalid bind request: "+err.Error())
	}

	price, err := s.bindQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BindResultResponse{Price: price})
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance - moves the
// order along its lifecycle.
//
//	@Summary	Advance an order's lifecycle status
//	@Tags		orders
//	@Accept		json
//	@Param		orderId	path	string			true	"order ID"
//	@Param		request	body	AdvanceRequest	true	"target status"
//	@Success	204
//	@Router		/api/v1/orders/{orderId}/advance [post]
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	identity := callerIdentity(ctx)
	if !identity.Role.CanMutate() {
		return forbidden(ctx)
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var request AdvanceRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid advance request: "+err.Error())
	}

	if handleErr := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
//
//	@Summary	Cancel an order
//	@Tags		orders
//	@Param		orderId	path	string	true	"order ID"
//	@Success	204
//	@Router		/api/v1/orders/{orderId}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	identity := callerIdentity(ctx)
	if !identity.Role.CanMutate() {
		return forbidden(ctx)
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid cancel request: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDeliveryEvent handles POST /api/v1/orders/{orderId}/events - appends
// a carrier event to the order's delivery history.
//
//	@Summary	Record a carrier delivery event
//	@Tags		history
//	@Accept		json
//	@Param		orderId	path	string					true	"order ID"
//	@Param		event	body	DeliveryEventRequest	true	"carrier event"
//	@Success	204
//	@Router		/api/v1/orders/{orderId}/events [post]
func (s *Server) RecordDeliveryEvent(ctx echo.Context) error {
	identity := callerIdentity(ctx)
	if !identity.Role.CanRecordEvents() {
		return forbidden(ctx)
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var request DeliveryEventRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentMode, err := history.PaymentModeFromString(request.PaymentMode)
	if err != nil {
		return badRequest(ctx, "Invalid payment mode: "+err.Error())
	}

	deliveryStatus, err := history.DeliveryStatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid delivery status: "+err.Error())
	}

	cmd, err := commands.NewRecordDeliveryEventCommand(
		kernel.NewUUID(), orderID,
		request.ShippingPrice, paymentMode, deliveryStatus,
		request.DeliveryDate, request.TrackingID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery event: "+err.Error())
	}

	if handleErr := s.recordDeliveryEventHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStats handles GET /api/v1/stats - aggregated statistics for the caller.
//
//	@Summary	Aggregated shipping statistics
//	@Tags		stats
//	@Produce	json
//	@Param		windowDays	query		int	false	"trailing revenue window in days"	default(30)
//	@Success	200			{object}	StatsResponse
//	@Router		/api/v1/stats [get]
func (s *Server) GetStats(ctx echo.Context) error {
	identity := callerIdentity(ctx)

	windowDays := defaultStatsWindowDays
	err := runtime.BindQueryParameter(
		"form", true, false, "windowDays", ctx.QueryParams(), &windowDays)
	if err != nil {
		return badRequest(ctx, "Invalid windowDays parameter: "+err.Error())
	}

	query, err := queries.NewGetStatsQuery(identity.UserID, windowDays)
	if err != nil {
		return badRequest(ctx, "Invalid stats query: "+err.Error())
	}

	stats, err := s.getStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		ActiveOrders:           stats.ActiveOrders,
		TrailingRevenue:        stats.TrailingRevenue,
		AvgDeliveryLatencyDays: stats.AvgDeliveryLatencyDays,
	})
}

func pathOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderId"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: "Role does not permit this operation",
	})
}

// domainError maps domain failures onto HTTP status codes: unknown objects
// become 404, lifecycle conflicts 409, unsatisfiable-but-well-formed
// requests 422, and invalid values 400.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrAlreadyBound),
		errors.Is(err, order.ErrIllegalTransition):
		status = http.StatusConflict
	case errors.Is(err, order.ErrQuoteInvalid),
		errors.Is(err, services.ErrNoQuotesAvailable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

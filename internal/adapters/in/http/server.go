// Package http exposes the back-office REST API.
// Handlers translate between JSON payloads and application commands/queries;
// domain errors map onto HTTP statuses in one place.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"courierdesk/internal/adapters/out/auth"
	"courierdesk/internal/adapters/out/warehouse"
	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/application/usecases/queries"
	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/invoice"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/shipment"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/query"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler      commands.CreateShipmentCommandHandler
	transitionShipmentHandler  commands.TransitionShipmentCommandHandler
	appendTrackingEventHandler commands.AppendTrackingEventCommandHandler
	assignCourierHandler       commands.AssignCourierCommandHandler
	dispatchPendingHandler     commands.DispatchPendingCommandHandler
	recordDeliveryHandler      commands.RecordDeliveryCommandHandler
	createCourierHandler       commands.CreateCourierCommandHandler
	setCourierStatusHandler    commands.SetCourierStatusCommandHandler
	createClientHandler        commands.CreateClientCommandHandler
	setClientStatusHandler     commands.SetClientStatusCommandHandler
	createInvoiceHandler       commands.CreateInvoiceCommandHandler
	addInvoiceLineHandler      commands.AddInvoiceLineCommandHandler
	updateInvoiceLineHandler   commands.UpdateInvoiceLineCommandHandler
	removeInvoiceLineHandler   commands.RemoveInvoiceLineCommandHandler
	transitionInvoiceHandler   commands.TransitionInvoiceCommandHandler

	// Query handlers
	listShipmentsHandler queries.ListShipmentsQueryHandler
	listCouriersHandler  queries.ListCouriersQueryHandler
	listClientsHandler   queries.ListClientsQueryHandler
	listInvoicesHandler  queries.ListInvoicesQueryHandler
	getTimelineHandler   queries.GetTimelineQueryHandler

	// External service clients, both optional
	warehouseClient *warehouse.Client
	authClient      *auth.Client
}

// Handlers bundles every command and query handler the server needs.
type Handlers struct {
	CreateShipment      commands.CreateShipmentCommandHandler
	TransitionShipment  commands.TransitionShipmentCommandHandler
	AppendTrackingEvent commands.AppendTrackingEventCommandHandler
	AssignCourier       commands.AssignCourierCommandHandler
	DispatchPending     commands.DispatchPendingCommandHandler
	RecordDelivery      commands.RecordDeliveryCommandHandler
	CreateCourier       commands.CreateCourierCommandHandler
	SetCourierStatus    commands.SetCourierStatusCommandHandler
	CreateClient        commands.CreateClientCommandHandler
	SetClientStatus     commands.SetClientStatusCommandHandler
	CreateInvoice       commands.CreateInvoiceCommandHandler
	AddInvoiceLine      commands.AddInvoiceLineCommandHandler
	UpdateInvoiceLine   commands.UpdateInvoiceLineCommandHandler
	RemoveInvoiceLine   commands.RemoveInvoiceLineCommandHandler
	TransitionInvoice   commands.TransitionInvoiceCommandHandler

	ListShipments queries.ListShipmentsQueryHandler
	ListCouriers  queries.ListCouriersQueryHandler
	ListClients   queries.ListClientsQueryHandler
	ListInvoices  queries.ListInvoicesQueryHandler
	GetTimeline   queries.GetTimelineQueryHandler

	// Warehouse enables the warehouse pass-through endpoints when set.
	Warehouse *warehouse.Client
	// Auth protects the back-office endpoints with bearer token checks
	// when set. The public tracking page is never protected.
	Auth *auth.Client
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createShipmentHandler:      handlers.CreateShipment,
		transitionShipmentHandler:  handlers.TransitionShipment,
		appendTrackingEventHandler: handlers.AppendTrackingEvent,
		assignCourierHandler:       handlers.AssignCourier,
		dispatchPendingHandler:     handlers.DispatchPending,
		recordDeliveryHandler:      handlers.RecordDelivery,
		createCourierHandler:       handlers.CreateCourier,
		setCourierStatusHandler:    handlers.SetCourierStatus,
		createClientHandler:        handlers.CreateClient,
		setClientStatusHandler:     handlers.SetClientStatus,
		createInvoiceHandler:       handlers.CreateInvoice,
		addInvoiceLineHandler:      handlers.AddInvoiceLine,
		updateInvoiceLineHandler:   handlers.UpdateInvoiceLine,
		removeInvoiceLineHandler:   handlers.RemoveInvoiceLine,
		transitionInvoiceHandler:   handlers.TransitionInvoice,
		listShipmentsHandler:       handlers.ListShipments,
		listCouriersHandler:        handlers.ListCouriers,
		listClientsHandler:         handlers.ListClients,
		listInvoicesHandler:        handlers.ListInvoices,
		getTimelineHandler:         handlers.GetTimeline,
		warehouseClient:            handlers.Warehouse,
		authClient:                 handlers.Auth,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
// The tracking endpoint stays public; everything else is protected when an
// auth client is configured.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	public := e.Group("/api/v1")
	public.GET("/tracking/:code", s.GetTimeline)

	api := e.Group("/api/v1")
	if s.authClient != nil {
		api.Use(authMiddleware(s.authClient))
	}

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.POST("/shipments/:id/transition", s.TransitionShipment)
	api.POST("/shipments/:id/events", s.AppendTrackingEvent)
	api.POST("/shipments/:id/assign", s.AssignCourier)
	api.POST("/shipments/:id/rating", s.RecordDelivery)
	api.POST("/dispatch", s.DispatchPending)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers", s.ListCouriers)
	api.PUT("/couriers/:id/status", s.SetCourierStatus)

	api.POST("/clients", s.CreateClient)
	api.GET("/clients", s.ListClients)
	api.PUT("/clients/:id/status", s.SetClientStatus)

	api.POST("/invoices", s.CreateInvoice)
	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices/:id/lines", s.AddInvoiceLine)
	api.PUT("/invoices/:id/lines/:index", s.UpdateInvoiceLine)
	api.DELETE("/invoices/:id/lines/:index", s.RemoveInvoiceLine)
	api.POST("/invoices/:id/transition", s.TransitionInvoice)

	if s.warehouseClient != nil {
		s.registerWarehouseRoutes(api)
	}
}

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorResponse maps the domain error taxonomy onto HTTP statuses:
// missing objects are 404, write conflicts and lifecycle violations are 409,
// everything else the domain rejects is a 400.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrStaleWrite),
		errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrOutOfOrderEvent),
		errors.Is(err, errs.ErrInvoiceLocked),
		errors.Is(err, errs.ErrCourierUnavailable):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

type contactPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (p contactPayload) toDomain() (kernel.Contact, error) {
	return kernel.NewContact(p.Name, p.Phone, p.Address)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var payload struct {
		ClientID      string         `json:"clientId"`
		Sender        contactPayload `json:"sender"`
		Recipient     contactPayload `json:"recipient"`
		Weight        float64        `json:"weight"`
		Length        float64        `json:"length"`
		Width         float64        `json:"width"`
		Height        float64        `json:"height"`
		DeclaredValue string         `json:"declaredValue"`
		ServiceTier   string         `json:"serviceTier"`
		Priority      string         `json:"priority"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	clientID, err := kernel.UUIDFromString(payload.ClientID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	sender, err := payload.Sender.toDomain()
	if err != nil {
		return errorResponse(ctx, err)
	}
	recipient, err := payload.Recipient.toDomain()
	if err != nil {
		return errorResponse(ctx, err)
	}
	dims, err := kernel.NewDimensions(payload.Length, payload.Width, payload.Height)
	if err != nil {
		return errorResponse(ctx, err)
	}
	declared, err := kernel.NewMoneyFromString(payload.DeclaredValue)
	if err != nil {
		return errorResponse(ctx, err)
	}
	tier, err := shipment.ServiceTierFromString(payload.ServiceTier)
	if err != nil {
		return errorResponse(ctx, err)
	}
	priority, err := shipment.PriorityFromString(payload.Priority)
	if err != nil {
		return errorResponse(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, clientID, sender, recipient,
		payload.Weight, dims, declared, tier, priority, time.Now(),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"id":           shipmentID.String(),
		"trackingCode": shipment.NewTrackingCode(shipmentID),
	})
}

// ListShipments handles GET /api/v1/shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	params, err := parseListParams(ctx, "status", "serviceTier", "priority", "clientId", "courierId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	q, err := queries.NewListShipmentsQuery(params)
	if err != nil {
		return errorResponse(ctx, err)
	}

	page, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), q)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, page)
}

// TransitionShipment handles POST /api/v1/shipments/:id/transition.
func (s *Server) TransitionShipment(ctx echo.Context) error {
	var payload struct {
		Target      string    `json:"target"`
		Location    string    `json:"location"`
		Description string    `json:"description"`
		CourierName string    `json:"courierName"`
		OccurredAt  time.Time `json:"occurredAt"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	target, err := shipment.StatusFromString(payload.Target)
	if err != nil {
		return errorResponse(ctx, err)
	}
	occurredAt := payload.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	cmd, err := commands.NewTransitionShipmentCommand(
		shipmentID, target, payload.Location, payload.Description, payload.CourierName, occurredAt,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.transitionShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AppendTrackingEvent handles POST /api/v1/shipments/:id/events.
func (s *Server) AppendTrackingEvent(ctx echo.Context) error {
	var payload struct {
		Location    string    `json:"location"`
		Description string    `json:"description"`
		CourierName string    `json:"courierName"`
		OccurredAt  time.Time `json:"occurredAt"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	occurredAt := payload.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	cmd, err := commands.NewAppendTrackingEventCommand(
		shipmentID, payload.Location, payload.Description, payload.CourierName, occurredAt,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.appendTrackingEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourier handles POST /api/v1/shipments/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	var payload struct {
		CourierID string `json:"courierId"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	courierID, err := kernel.UUIDFromString(payload.CourierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(shipmentID, courierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDelivery handles POST /api/v1/shipments/:id/rating.
func (s *Server) RecordDelivery(ctx echo.Context) error {
	var payload struct {
		Fee    string  `json:"fee"`
		Rating float64 `json:"rating"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	fee, err := kernel.NewMoneyFromString(payload.Fee)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRecordDeliveryCommand(shipmentID, fee, payload.Rating)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.recordDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchPending handles POST /api/v1/dispatch.
func (s *Server) DispatchPending(ctx echo.Context) error {
	cmd := commands.NewDispatchPendingCommand()

	err := s.dispatchPendingHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrNoPendingShipments) || errors.Is(err, commands.ErrNoFreeCouriersFound) {
		return ctx.JSON(http.StatusOK, map[string]string{"result": err.Error()})
	}
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var payload struct {
		Contact contactPayload `json:"contact"`
		Vehicle string         `json:"vehicle"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	contact, err := payload.Contact.toDomain()
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateCourierCommand(contact, payload.Vehicle)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.CourierID().String()})
}

// ListCouriers handles GET /api/v1/couriers.
func (s *Server) ListCouriers(ctx echo.Context) error {
	params, err := parseListParams(ctx, "status", "vehicle")
	if err != nil {
		return errorResponse(ctx, err)
	}

	q, err := queries.NewListCouriersQuery(params)
	if err != nil {
		return errorResponse(ctx, err)
	}

	page, err := s.listCouriersHandler.Handle(ctx.Request().Context(), q)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, page)
}

// SetCourierStatus handles PUT /api/v1/couriers/:id/status.
func (s *Server) SetCourierStatus(ctx echo.Context) error {
	var payload struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	status, err := courier.StatusFromString(payload.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSetCourierStatusCommand(courierID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.setCourierStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var payload struct {
		Contact contactPayload `json:"contact"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	contact, err := payload.Contact.toDomain()
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateClientCommand(contact)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createClientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.ClientID().String()})
}

// ListClients handles GET /api/v1/clients.
func (s *Server) ListClients(ctx echo.Context) error {
	params, err := parseListParams(ctx, "status")
	if err != nil {
		return errorResponse(ctx, err)
	}

	q, err := queries.NewListClientsQuery(params)
	if err != nil {
		return errorResponse(ctx, err)
	}

	page, err := s.listClientsHandler.Handle(ctx.Request().Context(), q)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, page)
}

// SetClientStatus handles PUT /api/v1/clients/:id/status.
func (s *Server) SetClientStatus(ctx echo.Context) error {
	var payload struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	status, err := client.StatusFromString(payload.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSetClientStatusCommand(clientID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.setClientStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type linePayload struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

func (p linePayload) toDomain() (invoice.LineItem, error) {
	price, err := kernel.NewMoneyFromString(p.UnitPrice)
	if err != nil {
		return invoice.LineItem{}, err
	}
	return invoice.NewLineItem(p.Description, p.Quantity, price)
}

// CreateInvoice handles POST /api/v1/invoices.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var payload struct {
		ClientID string        `json:"clientId"`
		IssuedAt time.Time     `json:"issuedAt"`
		DueAt    time.Time     `json:"dueAt"`
		Lines    []linePayload `json:"lines"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	clientID, err := kernel.UUIDFromString(payload.ClientID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	lines := make([]invoice.LineItem, 0, len(payload.Lines))
	for _, lp := range payload.Lines {
		line, lineErr := lp.toDomain()
		if lineErr != nil {
			return errorResponse(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	issuedAt := payload.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	dueAt := payload.DueAt
	if dueAt.IsZero() {
		dueAt = issuedAt.AddDate(0, 0, 30)
	}

	cmd, err := commands.NewCreateInvoiceCommand(clientID, issuedAt, dueAt, lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.InvoiceID().String()})
}

// ListInvoices handles GET /api/v1/invoices.
func (s *Server) ListInvoices(ctx echo.Context) error {
	params, err := parseListParams(ctx, "status", "clientId")
	if err != nil {
		return errorResponse(ctx, err)
	}

	q, err := queries.NewListInvoicesQuery(params)
	if err != nil {
		return errorResponse(ctx, err)
	}

	page, err := s.listInvoicesHandler.Handle(ctx.Request().Context(), q)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, page)
}

// AddInvoiceLine handles POST /api/v1/invoices/:id/lines.
func (s *Server) AddInvoiceLine(ctx echo.Context) error {
	var payload linePayload
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	line, err := payload.toDomain()
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAddInvoiceLineCommand(invoiceID, line)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.addInvoiceLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateInvoiceLine handles PUT /api/v1/invoices/:id/lines/:index.
func (s *Server) UpdateInvoiceLine(ctx echo.Context) error {
	var payload linePayload
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("index", err))
	}
	line, err := payload.toDomain()
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateInvoiceLineCommand(invoiceID, index, line)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateInvoiceLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveInvoiceLine handles DELETE /api/v1/invoices/:id/lines/:index.
func (s *Server) RemoveInvoiceLine(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("index", err))
	}

	cmd, err := commands.NewRemoveInvoiceLineCommand(invoiceID, index)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.removeInvoiceLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionInvoice handles POST /api/v1/invoices/:id/transition.
func (s *Server) TransitionInvoice(ctx echo.Context) error {
	var payload struct {
		Target     string    `json:"target"`
		OccurredAt time.Time `json:"occurredAt"`
	}
	if err := ctx.Bind(&payload); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}
	target, err := invoice.StatusFromString(payload.Target)
	if err != nil {
		return errorResponse(ctx, err)
	}
	occurredAt := payload.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	cmd, err := commands.NewTransitionInvoiceCommand(invoiceID, target, occurredAt)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.transitionInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTimeline handles GET /api/v1/tracking/:code - the public tracking page.
func (s *Server) GetTimeline(ctx echo.Context) error {
	q, err := queries.NewGetTimelineQuery(ctx.Param("code"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.getTimelineHandler.Handle(ctx.Request().Context(), q)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// parseListParams reads the shared listing parameters from the query string.
// filterKeys names the query parameters treated as equality filters; absent
// keys are omitted so the pipeline's bypass rules apply.
func parseListParams(ctx echo.Context, filterKeys ...string) (query.Params, error) {
	sortOrder, err := query.SortOrderFromString(ctx.QueryParam("sortOrder"))
	if err != nil {
		return query.Params{}, err
	}

	params := query.Params{
		SearchTerm: ctx.QueryParam("search"),
		SortField:  ctx.QueryParam("sortField"),
		SortOrder:  sortOrder,
		Page:       1,
		PageSize:   20,
	}

	if raw := ctx.QueryParam("searchFields"); raw != "" {
		params.SearchFields = strings.Split(raw, ",")
	}
	if page, err := strconv.Atoi(ctx.QueryParam("page")); err == nil {
		params.Page = page
	}
	if pageSize, err := strconv.Atoi(ctx.QueryParam("pageSize")); err == nil {
		params.PageSize = pageSize
	}

	filters := make(map[string]string)
	for _, key := range filterKeys {
		if value := ctx.QueryParam(key); value != "" {
			filters[key] = value
		}
	}
	if len(filters) > 0 {
		params.Filters = filters
	}

	return params, nil
}

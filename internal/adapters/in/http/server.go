// Package http exposes the delivery engine over a JSON API.
// It translates HTTP requests into commands and queries, and domain errors
// into status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gasdelivery/internal/core/application/usecases/commands"
	"gasdelivery/internal/core/application/usecases/queries"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// Handlers carries the command and query handlers the server dispatches to.
type Handlers struct {
	GenerateSchedules commands.GenerateSchedulesCommandHandler
	AssignAgent       commands.AssignAgentCommandHandler
	AcceptOrder       commands.AcceptOrderCommandHandler
	StartDelivery     commands.StartDeliveryCommandHandler
	CompleteDelivery  commands.CompleteDeliveryCommandHandler
	FailDelivery      commands.FailDeliveryCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler

	ListOrders  queries.ListOrdersQueryHandler
	GetOrder    queries.GetOrderQueryHandler
	TodayStats  queries.TodayStatsQueryHandler
	AgentOrders queries.GetAgentOrdersQueryHandler
	ListAgents  queries.ListAgentsQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api/v1, all behind JWT auth.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	api.POST("/schedules/generate", s.generateSchedules)

	api.GET("/orders", s.listOrders)
	api.GET("/orders/stats/today", s.todayStats)
	api.GET("/orders/:id", s.getOrder)
	api.POST("/orders/:id/assign", s.assignAgent)
	api.POST("/orders/:id/accept", s.acceptOrder)
	api.POST("/orders/:id/start", s.startDelivery)
	api.POST("/orders/:id/deliver", s.completeDelivery)
	api.POST("/orders/:id/fail", s.failDelivery)
	api.POST("/orders/:id/cancel", s.cancelOrder)

	api.GET("/agents", s.listAgents)
	api.GET("/agents/:id/orders", s.agentOrders)
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type generateSchedulesRequest struct {
	DaysAhead int `json:"daysAhead"`
}

type generateSchedulesResponse struct {
	Created int `json:"created"`
}

func (s *Server) generateSchedules(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	var req generateSchedulesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewGenerateSchedulesCommand(actor, time.Now().UTC(), req.DaysAhead)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.handlers.GenerateSchedules.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, generateSchedulesResponse{Created: created})
}

func (s *Server) listOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	filter := queries.ListOrdersFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	}
	if raw := c.QueryParam("date"); raw != "" {
		date, parseErr := time.Parse(dateLayout, raw)
		if parseErr != nil {
			return badRequest(c, "date must be formatted as "+dateLayout)
		}
		filter.DeliveryDate = date
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.PageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))

	query, err := queries.NewListOrdersQuery(actor, filter)
	if err != nil {
		return respondError(c, err)
	}

	page, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	orders := make([]orderJSON, len(page.Orders))
	for i, o := range page.Orders {
		orders[i] = toOrderJSON(o)
	}
	return c.JSON(http.StatusOK, listOrdersResponse{
		Orders:   orders,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

func (s *Server) getOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}
	orderID, err := pathUUID(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	body := getOrderResponse{Order: toOrderJSON(resp.Order)}
	if resp.SuccessorID != nil {
		id := resp.SuccessorID.String()
		body.SuccessorID = &id
	}
	body.Lineage = make([]orderJSON, len(resp.Lineage))
	for i, o := range resp.Lineage {
		body.Lineage[i] = toOrderJSON(o)
	}
	return c.JSON(http.StatusOK, body)
}

type assignAgentRequest struct {
	AgentID string `json:"agentId"`
}

func (s *Server) assignAgent(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}
	orderID, err := pathUUID(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req assignAgentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(c, "invalid agent id")
	}

	cmd, err := commands.NewAssignAgentCommand(actor, orderID, agentID)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.handlers.AssignAgent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orderJSONFromDomain(updated))
}

func (s *Server) acceptOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}
	orderID, err := pathUUID(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewAcceptOrderCommand(actor, orderID)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.handlers.AcceptOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orderJSONFromDomain(updated))
}

func (s *Server) startDelivery(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}
	orderID, err := pathUUID(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewStartDeliveryCommand(actor, orderID)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.handlers.StartDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orderJSONFromDomain(updated))
}

type completeDeliveryRequest struct {
	Notes string `json:"notes"`
}

func (s *Server) completeDelivery(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}
	orderID, err := pathUUID(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req completeDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(actor, orderID, req.Notes)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.handlers.CompleteDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orderJSONFromDomain(updated))
}

type failDeliveryRequest struct {
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

func (s *Server) failDelivery(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}
	orderID, err := pathUUID(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req failDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	reason, err := order.FailureReasonFromString(req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewFailDeliveryCommand(actor, orderID, reason, req.Notes)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.handlers.FailDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orderJSONFromDomain(updated))
}

func (s *Server) cancelOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}
	orderID, err := pathUUID(c)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(actor, orderID)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orderJSONFromDomain(updated))
}

func (s *Server) todayStats(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewTodayStatsQuery(actor, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}

	stats, err := s.handlers.TodayStats.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, todayStatsResponse{
		Date:           stats.Date.Format(dateLayout),
		Total:          stats.Total,
		Pending:        stats.Pending,
		Assigned:       stats.Assigned,
		Accepted:       stats.Accepted,
		OutForDelivery: stats.OutForDelivery,
		Delivered:      stats.Delivered,
		Failed:         stats.Failed,
		Cancelled:      stats.Cancelled,
	})
}

func (s *Server) listAgents(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewListAgentsQuery(actor)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.handlers.ListAgents.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	agents := make([]agentJSON, len(resp.Agents))
	for i, a := range resp.Agents {
		agents[i] = agentJSON{
			ID:           a.ID.String(),
			Name:         a.Name,
			Phone:        a.Phone,
			IsActive:     a.IsActive,
			ActiveOrders: a.ActiveOrders,
		}
	}
	return c.JSON(http.StatusOK, agents)
}

func (s *Server) agentOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return respondError(c, err)
	}
	agentID, err := pathUUID(c)
	if err != nil {
		return badRequest(c, "invalid agent id")
	}

	statuses, err := worklistStatuses(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetAgentOrdersQuery(actor, agentID, statuses)
	if err != nil {
		return respondError(c, err)
	}

	resp, err := s.handlers.AgentOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	orders := make([]orderJSON, len(resp.Orders))
	for i, o := range resp.Orders {
		orders[i] = toOrderJSON(o)
	}
	return c.JSON(http.StatusOK, orders)
}

// worklistStatuses resolves the agent worklist filter: an explicit
// comma-separated status list wins, active=true is shorthand for the statuses
// the agent still has to act on, and neither means the full history.
func worklistStatuses(c echo.Context) ([]order.Status, error) {
	if raw := c.QueryParam("status"); raw != "" {
		parts := strings.Split(raw, ",")
		statuses := make([]order.Status, 0, len(parts))
		for _, part := range parts {
			status, err := order.StatusFromString(strings.TrimSpace(part))
			if err != nil {
				return nil, err
			}
			statuses = append(statuses, status)
		}
		return statuses, nil
	}

	if activeOnly, _ := strconv.ParseBool(c.QueryParam("active")); activeOnly {
		return order.ActiveStatuses(), nil
	}
	return nil, nil
}

func pathUUID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain errors to status codes: validation failures to
// 400, missing objects to 404, access violations to 403, and both state
// conflicts and illegal transitions to 409.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	var requiredErr *errs.ValueIsRequiredError
	var invalidErr *errs.ValueIsInvalidError
	var rangeErr *errs.ValueIsOutOfRangeError
	var notFoundErr *errs.ObjectNotFoundError
	var forbiddenErr *errs.ForbiddenError
	var transitionErr *errs.InvalidTransitionError
	var conflictErr *errs.ConflictError

	switch {
	case errors.As(err, &requiredErr), errors.As(err, &invalidErr), errors.As(err, &rangeErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &forbiddenErr):
		status = http.StatusForbidden
	case errors.As(err, &transitionErr), errors.As(err, &conflictErr):
		status = http.StatusConflict
	}

	return c.JSON(status, errorBody{Code: status, Message: err.Error()})
}

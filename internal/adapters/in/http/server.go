package http

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"hortifruti/internal/adapters/out/notify"
	"hortifruti/internal/core/application/session"
	"hortifruti/internal/core/application/tracking"
	"hortifruti/internal/core/application/usecases/commands"
	"hortifruti/internal/core/application/usecases/queries"
	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/identity"
	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/core/ports"
	"hortifruti/internal/metrics"
	"hortifruti/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// Server exposes the panel over HTTP. It coordinates between the HTTP
// surface and the session manager, the tracker and the manager-scoped
// handlers.
type Server struct {
	sessions  *session.Manager
	tracker   *tracking.Tracker
	deliveriesHandler queries.GetDeliveriesQueryHandler
	assignHandler     commands.AssignCourierCommandHandler
	notices   *notify.NoticeCenter
	collector metrics.Collector
	gatherer  prometheus.Gatherer
	loginLimiter *LoginRateLimiter
}

// NewServer creates the panel HTTP server.
func NewServer(
	sessions *session.Manager,
	tracker *tracking.Tracker,
	deliveriesHandler queries.GetDeliveriesQueryHandler,
	assignHandler commands.AssignCourierCommandHandler,
	notices *notify.NoticeCenter,
	collector metrics.Collector,
	gatherer prometheus.Gatherer,
	loginLimiter *LoginRateLimiter,
) *Server {
	return &Server{
		sessions:          sessions,
		tracker:           tracker,
		deliveriesHandler: deliveriesHandler,
		assignHandler:     assignHandler,
		notices:           notices,
		collector:         collector,
		gatherer:          gatherer,
		loginLimiter:      loginLimiter,
	}
}

// RegisterRoutes mounts every panel route on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(s.gatherer)))

	api := e.Group("/api/v1")
	api.POST("/auth/login", s.Login, s.loginLimiter.Middleware())
	api.POST("/auth/logout", s.Logout)
	api.GET("/session", s.Session)
	api.GET("/notices", s.Notices)

	courier := api.Group("", RequireRole(s.sessions, identity.RoleCourier))
	courier.GET("/deliveries/my", s.MyDeliveries)
	courier.POST("/deliveries/my/refresh", s.RefreshDeliveries)
	courier.POST("/deliveries/:id/status", s.UpdateDeliveryStatus)

	manager := api.Group("", RequireRole(s.sessions, identity.RoleManager))
	manager.GET("/deliveries", s.ListDeliveries)
	manager.POST("/deliveries/:id/assign", s.AssignCourier)

	e.GET("/admin", s.AdminView, GuardView(s.sessions, identity.RoleManager))
	e.GET("/deliveries", s.DeliveriesView, GuardView(s.sessions, identity.RoleCourier))
}

type errorBody struct {
	Message string `json:"message"`
}

type loginBody struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

type identityBody struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Landing  string `json:"landing"`
}

type sessionBody struct {
	Authenticated bool          `json:"authenticated"`
	Restoring     bool          `json:"restoring"`
	Identity      *identityBody `json:"identity,omitempty"`
}

type lineItemBody struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

type orderBody struct {
	ID           string         `json:"id"`
	CustomerName string         `json:"customerName"`
	Items        []lineItemBody `json:"items"`
	Total        string         `json:"total"`
}

type deliveryBody struct {
	ID          string     `json:"id"`
	Order       orderBody  `json:"order"`
	Address     string     `json:"address"`
	Status      string     `json:"status"`
	CourierID   *string    `json:"courierId,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	MapLink     string     `json:"mapLink,omitempty"`
}

type updateStatusBody struct {
	Transition         string `json:"transition"`
	RecipientName      string `json:"recipientName"`
	RecipientDocument  string `json:"recipientDocument"`
	ProblemDescription string `json:"problemDescription"`
}

type assignCourierBody struct {
	CourierID string `json:"courierId"`
}

type noticeBody struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) error {
	var body loginBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid request body"})
	}

	ident, err := s.sessions.Login(c.Request().Context(), body.Email, body.Secret)
	if err != nil {
		s.collector.RecordLogin("failure")
		return s.renderError(c, err)
	}

	s.collector.RecordLogin("success")
	return c.JSON(http.StatusOK, identityToBody(ident))
}

// Logout handles POST /api/v1/auth/logout. It always succeeds.
func (s *Server) Logout(c echo.Context) error {
	s.sessions.Logout()
	return c.NoContent(http.StatusNoContent)
}

// Session handles GET /api/v1/session.
func (s *Server) Session(c echo.Context) error {
	body := sessionBody{
		Restoring: s.sessions.Restoring(),
	}
	if ident := s.sessions.Identity(); ident != nil {
		body.Authenticated = true
		identityBody := identityToBody(ident)
		body.Identity = &identityBody
	}
	return c.JSON(http.StatusOK, body)
}

// MyDeliveries handles GET /api/v1/deliveries/my. It serves the tracker's
// local list; the polling job keeps it current.
func (s *Server) MyDeliveries(c echo.Context) error {
	if err := s.tracker.Err(); err != nil && len(s.tracker.Deliveries()) == 0 {
		return s.renderError(c, err)
	}
	return c.JSON(http.StatusOK, deliveriesToBody(s.tracker.Deliveries()))
}

// RefreshDeliveries handles POST /api/v1/deliveries/my/refresh, a foreground
// refresh requested by the user.
func (s *Server) RefreshDeliveries(c echo.Context) error {
	if err := s.tracker.Refresh(c.Request().Context(), false); err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(http.StatusOK, deliveriesToBody(s.tracker.Deliveries()))
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid delivery id"})
	}

	var body updateStatusBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid request body"})
	}

	transition, err := delivery.TransitionFromString(body.Transition)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "unknown transition"})
	}

	updated, err := s.tracker.UpdateStatus(c.Request().Context(), deliveryID, transition, delivery.TransitionPayload{
		RecipientName:      body.RecipientName,
		RecipientDocument:  body.RecipientDocument,
		ProblemDescription: body.ProblemDescription,
	})
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(http.StatusOK, deliveryToBody(updated))
}

// ListDeliveries handles GET /api/v1/deliveries with optional status and
// courierId filters.
func (s *Server) ListDeliveries(c echo.Context) error {
	var statusFilter *delivery.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, err := delivery.StatusFromWire(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorBody{Message: "unknown status"})
		}
		statusFilter = &status
	}

	var courierFilter *kernel.UUID
	if raw := c.QueryParam("courierId"); raw != "" {
		courierID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid courier id"})
		}
		courierFilter = &courierID
	}

	query, err := queries.NewGetDeliveriesQuery(statusFilter, courierFilter)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: err.Error()})
	}

	deliveries, err := s.deliveriesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(http.StatusOK, deliveriesToBody(deliveries))
}

// AssignCourier handles POST /api/v1/deliveries/:id/assign.
func (s *Server) AssignCourier(c echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid delivery id"})
	}

	var body assignCourierBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid request body"})
	}
	courierID, err := kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: "invalid courier id"})
	}

	command, err := commands.NewAssignCourierCommand(deliveryID, courierID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Message: err.Error()})
	}

	updated, err := s.assignHandler.Handle(c.Request().Context(), command)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(http.StatusOK, deliveryToBody(updated))
}

// Notices handles GET /api/v1/notices.
func (s *Server) Notices(c echo.Context) error {
	stored := s.notices.Recent()
	body := make([]noticeBody, len(stored))
	for i, notice := range stored {
		body[i] = noticeBody{
			Level:   noticeLevelName(notice.Notice.Level),
			Message: notice.Notice.Message,
			At:      notice.At,
		}
	}
	return c.JSON(http.StatusOK, body)
}

// AdminView handles GET /admin, the manager landing view.
func (s *Server) AdminView(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"view": "admin"})
}

// DeliveriesView handles GET /deliveries, the courier landing view.
func (s *Server) DeliveriesView(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"view": "deliveries"})
}

// renderError maps application errors to HTTP status codes, keeping the
// error's own message as the body.
func (s *Server) renderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrAuthenticationFailed):
		return c.JSON(http.StatusUnauthorized, errorBody{Message: err.Error()})
	case errors.Is(err, errs.ErrAuthorizationDenied):
		return c.JSON(http.StatusForbidden, errorBody{Message: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorBody{Message: err.Error()})
	case errors.Is(err, errs.ErrTransitionIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return c.JSON(http.StatusUnprocessableEntity, errorBody{Message: err.Error()})
	case errors.Is(err, errs.ErrRequestFailed):
		return c.JSON(http.StatusBadGateway, errorBody{Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorBody{Message: err.Error()})
	}
}

func identityToBody(ident *identity.Identity) identityBody {
	return identityBody{
		ID:       ident.ID().String(),
		FullName: ident.FullName(),
		Email:    ident.Email(),
		Role:     ident.Role().String(),
		Landing:  landingFor(ident.Role()),
	}
}

func deliveriesToBody(deliveries []*delivery.Delivery) []deliveryBody {
	body := make([]deliveryBody, len(deliveries))
	for i, d := range deliveries {
		body[i] = deliveryToBody(d)
	}
	return body
}

func deliveryToBody(d *delivery.Delivery) deliveryBody {
	order := d.Order()
	items := make([]lineItemBody, len(order.Items()))
	for i, item := range order.Items() {
		items[i] = lineItemBody{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().StringFixed(2),
		}
	}

	body := deliveryBody{
		ID: d.ID().String(),
		Order: orderBody{
			ID:           order.ID().String(),
			CustomerName: order.CustomerName(),
			Items:        items,
			Total:        order.Total().StringFixed(2),
		},
		Address:     d.Address(),
		Status:      d.Status().WireName(),
		CompletedAt: d.CompletedAt(),
	}
	if courierID := d.Courier(); courierID != nil {
		id := courierID.String()
		body.CourierID = &id
	}
	if d.Status() == delivery.StatusEnRoute {
		body.MapLink = mapLink(d.Address())
	}
	return body
}

// mapLink builds a navigation link for the delivery address. Only en-route
// deliveries carry one; that is when the courier needs directions.
func mapLink(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}

func noticeLevelName(level ports.NoticeLevel) string {
	switch level {
	case ports.NoticeSuccess:
		return "success"
	case ports.NoticeError:
		return "error"
	default:
		return "info"
	}
}

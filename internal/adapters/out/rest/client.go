package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hortifruti/internal/core/domain/model/delivery"
	"hortifruti/internal/core/domain/model/identity"
	"hortifruti/internal/core/domain/model/kernel"
	"hortifruti/internal/core/ports"
	"hortifruti/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Client talks to the retail backend over HTTP/JSON and implements the
// BackendClient port. The bearer credential is a parameter on every call;
// the client itself holds no authentication state.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a backend client rooted at baseURL. A nil httpClient
// falls back to a client with a sane timeout.
func NewClient(httpClient *http.Client, baseURL string, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.With("component", "rest"),
	}, nil
}

type loginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type identityResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type lineItemResponse struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
}

type orderResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customerName"`
	Items        []lineItemResponse `json:"items"`
}

type deliveryResponse struct {
	ID          string        `json:"id"`
	Order       orderResponse `json:"order"`
	Address     string        `json:"address"`
	Status      string        `json:"status"`
	CourierID   *string       `json:"courierId"`
	CompletedAt *time.Time    `json:"completedAt"`
}

type updateStatusRequest struct {
	Status             string `json:"status"`
	RecipientName      string `json:"recipientName,omitempty"`
	RecipientDocument  string `json:"recipientDocument,omitempty"`
	ProblemDescription string `json:"problemDescription,omitempty"`
}

type assignCourierRequest struct {
	CourierID string `json:"courierId"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Authenticate submits the credentials and returns the bearer token.
// A 401 or 403 answer is an authentication failure, not a request failure.
func (c *Client) Authenticate(ctx context.Context, email, secret string) (string, error) {
	body, status, err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{
		Email:  email,
		Secret: secret,
	})
	if err != nil {
		return "", err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return "", errs.NewAuthenticationError(serverMessage(body, "invalid credentials"))
	}
	if status != http.StatusOK {
		return "", c.failure("login", status, body)
	}

	var response loginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", errs.NewRequestFailureErrorWithCause("login", "malformed response", err)
	}
	return response.Token, nil
}

// CurrentIdentity fetches the identity the token belongs to.
func (c *Client) CurrentIdentity(ctx context.Context, token string) (*identity.Identity, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/auth/me", token, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, errs.NewAuthenticationError(serverMessage(body, "credential rejected"))
	}
	if status != http.StatusOK {
		return nil, c.failure("current identity", status, body)
	}

	var response identityResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errs.NewRequestFailureErrorWithCause("current identity", "malformed response", err)
	}
	return mapIdentity(response)
}

// ListMyDeliveries returns the deliveries assigned to the token's courier.
func (c *Client) ListMyDeliveries(ctx context.Context, token string) ([]*delivery.Delivery, error) {
	return c.fetchDeliveries(ctx, "list my deliveries", "/deliveries/my", token)
}

// ListDeliveries returns deliveries matching the filter. Manager scope.
func (c *Client) ListDeliveries(ctx context.Context, token string, filter ports.DeliveryFilter) ([]*delivery.Delivery, error) {
	query := url.Values{}
	if filter.Status != nil {
		query.Set("status", filter.Status.WireName())
	}
	if filter.CourierID != nil {
		query.Set("courierId", filter.CourierID.String())
	}

	path := "/deliveries"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return c.fetchDeliveries(ctx, "list deliveries", path, token)
}

// UpdateDeliveryStatus submits a status transition and returns the updated
// delivery.
func (c *Client) UpdateDeliveryStatus(
	ctx context.Context,
	token string,
	deliveryID kernel.UUID,
	transition delivery.Transition,
	payload delivery.TransitionPayload,
) (*delivery.Delivery, error) {
	path := fmt.Sprintf("/deliveries/%s/status", deliveryID.String())
	body, status, err := c.do(ctx, http.MethodPost, path, token, updateStatusRequest{
		Status:             transition.Target().WireName(),
		RecipientName:      payload.RecipientName,
		RecipientDocument:  payload.RecipientDocument,
		ProblemDescription: payload.ProblemDescription,
	})
	if err != nil {
		return nil, err
	}

	return c.deliveryFromResponse("update delivery status", deliveryID, body, status)
}

// AssignCourier associates a courier with a delivery. Manager scope.
func (c *Client) AssignCourier(ctx context.Context, token string, deliveryID, courierID kernel.UUID) (*delivery.Delivery, error) {
	path := fmt.Sprintf("/deliveries/%s/assign", deliveryID.String())
	body, status, err := c.do(ctx, http.MethodPost, path, token, assignCourierRequest{
		CourierID: courierID.String(),
	})
	if err != nil {
		return nil, err
	}

	return c.deliveryFromResponse("assign courier", deliveryID, body, status)
}

func (c *Client) fetchDeliveries(ctx context.Context, operation, path, token string) ([]*delivery.Delivery, error) {
	body, status, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, c.failure(operation, status, body)
	}

	var responses []deliveryResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		return nil, errs.NewRequestFailureErrorWithCause(operation, "malformed response", err)
	}

	deliveries := make([]*delivery.Delivery, 0, len(responses))
	for _, response := range responses {
		d, err := mapDelivery(response)
		if err != nil {
			return nil, errs.NewRequestFailureErrorWithCause(operation, "malformed delivery in response", err)
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

func (c *Client) deliveryFromResponse(operation string, deliveryID kernel.UUID, body []byte, status int) (*delivery.Delivery, error) {
	if status == http.StatusNotFound {
		return nil, errs.NewObjectNotFoundError("deliveryID", deliveryID)
	}
	if status != http.StatusOK {
		return nil, c.failure(operation, status, body)
	}

	var response deliveryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errs.NewRequestFailureErrorWithCause(operation, "malformed response", err)
	}
	return mapDelivery(response)
}

// do performs the request and returns the raw body with the status code.
// Transport-level errors come back as RequestFailure; HTTP-level errors are
// left to the caller, which knows the operation's semantics.
func (c *Client) do(ctx context.Context, method, path, token string, payload any) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, errs.NewRequestFailureErrorWithCause(path, "request encoding failed", err)
		}
		reader = bytes.NewReader(raw)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, errs.NewRequestFailureErrorWithCause(path, "request creation failed", err)
	}
	request.Header.Set("Accept", "application/json")
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Warn("backend request failed", "method", method, "path", path, "error", err)
		return nil, 0, errs.NewRequestFailureErrorWithCause(path, "backend unreachable", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, 0, errs.NewRequestFailureErrorWithCause(path, "response read failed", err)
	}
	return body, response.StatusCode, nil
}

func (c *Client) failure(operation string, status int, body []byte) error {
	message := serverMessage(body, fmt.Sprintf("backend answered %d", status))
	c.logger.Warn("backend rejected request", "operation", operation, "status", status)
	return errs.NewRequestFailureError(operation, message)
}

// serverMessage extracts the backend's {"message": ...} payload, falling
// back when the body carries none.
func serverMessage(body []byte, fallback string) string {
	var response errorResponse
	if err := json.Unmarshal(body, &response); err == nil && response.Message != "" {
		return response.Message
	}
	return fallback
}

func mapIdentity(response identityResponse) (*identity.Identity, error) {
	id, err := kernel.UUIDFromString(response.ID)
	if err != nil {
		return nil, err
	}
	role, err := identity.RoleFromString(response.Role)
	if err != nil {
		return nil, err
	}
	return identity.NewIdentity(id, response.FullName, response.Email, role)
}

func mapDelivery(response deliveryResponse) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromString(response.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromString(response.Order.ID)
	if err != nil {
		return nil, err
	}
	items := make([]delivery.LineItem, 0, len(response.Order.Items))
	for _, item := range response.Order.Items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice", err)
		}
		lineItem, err := delivery.NewLineItem(item.ProductName, item.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, lineItem)
	}
	order, err := delivery.NewOrder(orderID, response.Order.CustomerName, items)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromWire(response.Status)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if response.CourierID != nil {
		parsed, err := kernel.UUIDFromString(*response.CourierID)
		if err != nil {
			return nil, err
		}
		courierID = &parsed
	}

	return delivery.RestoreDelivery(id, order, response.Address, status, courierID, response.CompletedAt)
}

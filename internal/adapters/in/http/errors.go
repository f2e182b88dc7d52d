package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var ErrMissingIdentity = errors.New("X-User-ID header is missing or malformed")

type errorKind struct {
	target error
	status int
	code   string
}

// errorKinds is matched top to bottom, so wrapped errors that carry more than one
// sentinel resolve to the more specific kind.
var errorKinds = []errorKind{
	{ErrMissingIdentity, http.StatusUnauthorized, "unauthenticated"},

	{commands.ErrPartialProvisioningFailure, http.StatusInternalServerError, "partial_provisioning_failure"},
	{commands.ErrLocationProvisioningFailed, http.StatusServiceUnavailable, "location_provisioning_failed"},
	{commands.ErrRestaurantNotReady, http.StatusConflict, "restaurant_not_ready"},

	{order.ErrAlreadyClaimed, http.StatusConflict, "already_claimed"},
	{order.ErrOrderNotClaimable, http.StatusConflict, "order_not_claimable"},
	{order.ErrAgentNotAuthorized, http.StatusForbidden, "agent_not_authorized"},
	{order.ErrInvalidHandoffCode, http.StatusUnprocessableEntity, "invalid_handoff_code"},
	{order.ErrOrderNotEditable, http.StatusConflict, "order_not_editable"},
	{order.ErrMenuAlreadyInOrder, http.StatusConflict, "menu_already_in_order"},
	{order.ErrForeignCatalogEntry, http.StatusUnprocessableEntity, "foreign_catalog_entry"},
	{queries.ErrNoPickupToken, http.StatusConflict, "no_pickup_token"},

	{commands.ErrNotAuthorized, http.StatusForbidden, "not_authorized"},
	{queries.ErrNotAuthorized, http.StatusForbidden, "not_authorized"},

	{commands.ErrOrderNotFound, http.StatusNotFound, "order_not_found"},
	{commands.ErrRestaurantNotFound, http.StatusNotFound, "restaurant_not_found"},
	{commands.ErrItemNotFound, http.StatusNotFound, "item_not_found"},
	{commands.ErrMenuNotFound, http.StatusNotFound, "menu_not_found"},
	{errs.ErrObjectNotFound, http.StatusNotFound, "not_found"},
	{errs.ErrObjectAlreadyExists, http.StatusConflict, "already_exists"},

	{errs.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{errs.ErrValueIsRequired, http.StatusBadRequest, "value_required"},
	{errs.ErrValueIsInvalid, http.StatusBadRequest, "value_invalid"},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest, "value_out_of_range"},
}

// classify returns the status and code for err. Unknown errors are internal.
func classify(err error) (int, string) {
	for _, kind := range errorKinds {
		if errors.Is(err, kind.target) {
			return kind.status, kind.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

// ErrorHandler replaces echo's default error handler. Errors returned by route
// handlers are mapped by kind; echo's own HTTP errors keep their status.
func (s *Server) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = c.JSON(httpErr.Code, Error{Code: codeFromStatus(httpErr.Code), Message: message})
		return
	}

	status, code := classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError && code == "internal" {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}
	_ = c.JSON(status, Error{Code: code, Message: message})
}

func codeFromStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "route_not_found"
	case http.StatusMethodNotAllowed:
		return "method_not_allowed"
	case http.StatusBadRequest:
		return "bad_request"
	default:
		return "http_error"
	}
}

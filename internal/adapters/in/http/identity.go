package http

import (
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the caller's user id. The gateway in front of the service
// authenticates the caller and sets it.
const UserIDHeader = "X-User-ID"

const userIDKey = "userID"

// Identity rejects requests without a valid X-User-ID and stores the id on the context.
func Identity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
		if raw == "" {
			return ErrMissingIdentity
		}
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ErrMissingIdentity
		}

		c.Set(userIDKey, id)
		return next(c)
	}
}

func currentUser(c echo.Context) (kernel.UUID, error) {
	id, ok := c.Get(userIDKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, ErrMissingIdentity
	}
	return id, nil
}

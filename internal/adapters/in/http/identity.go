package http

import (
	"fmt"
	"net/http"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Role represents the caller's access level.
// Authentication happens upstream; the gateway forwards the resolved
// identity in headers and this layer only enforces role boundaries.
type Role string

const (
	// RoleAdmin may perform any operation, including carrier event ingestion.
	RoleAdmin Role = "admin"

	// RoleCustomer may manage their own orders and quotes.
	RoleCustomer Role = "customer"

	// RoleViewer has read-only access.
	RoleViewer Role = "viewer"
)

// RoleFromString parses a role name from the identity header.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleCustomer, RoleViewer:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"userRole", fmt.Errorf("%q is not a valid role", s))
	}
}

// CanMutate reports whether the role may change orders and quotes.
func (r Role) CanMutate() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// CanRecordEvents reports whether the role may ingest carrier events.
func (r Role) CanRecordEvents() bool {
	return r == RoleAdmin
}

// Identity is the authenticated caller forwarded by the gateway.
type Identity struct {
	UserID kernel.UUID
	Role   Role
}

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"

	identityContextKey = "identity"
)

// IdentityMiddleware extracts the caller identity from the gateway headers.
// Requests without a valid identity are rejected before reaching a handler.
func IdentityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := kernel.UUIDFromString(c.Request().Header.Get(headerUserID))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid " + headerUserID + " header",
				})
			}

			role, err := RoleFromString(c.Request().Header.Get(headerUserRole))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing or invalid " + headerUserRole + " header",
				})
			}

			c.Set(identityContextKey, Identity{UserID: userID, Role: role})
			return next(c)
		}
	}
}

// callerIdentity returns the identity stored by IdentityMiddleware.
func callerIdentity(c echo.Context) Identity {
	identity, _ := c.Get(identityContextKey).(Identity)
	return identity
}

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/apperr"
	"github.com/Skotchmaster/marketplace/internal/logging"
	mw "github.com/Skotchmaster/marketplace/internal/middleware/auth"
	"github.com/Skotchmaster/marketplace/internal/mykafka"
	"github.com/Skotchmaster/marketplace/internal/service"
	"github.com/Skotchmaster/marketplace/internal/transport"
)

type UserHandler struct {
	Users    *service.UserService
	Producer *mykafka.Producer
}

func (h *UserHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(event["user_id"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "error", err)
	}
}

func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "validation")
		return validationFailed(c, err)
	}

	user, err := h.Users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrDuplicateEmail) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		return internalError(c)
	}

	h.publish(c, map[string]interface{}{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	return created(c, "User registered successfully", user)
}

func (h *UserHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "validation")
		return validationFailed(c, err)
	}

	result, err := h.Users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) || errors.Is(err, apperr.ErrAccountBanned) {
			return fail(c, http.StatusUnauthorized, err.Error())
		}
		return internalError(c)
	}

	h.publish(c, map[string]interface{}{
		"type":    "user_logged_in",
		"user_id": result.User.ID,
		"email":   result.User.Email,
	})

	return ok(c, "Login successful", transport.LoginData{User: result.User, Token: result.Token})
}

func (h *UserHandler) Profile(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.Users.GetByID(ctx, mw.UserID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			return fail(c, http.StatusNotFound, err.Error())
		}
		return internalError(c)
	}

	return ok(c, "", user)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.ListAll(c.Request().Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, "", users)
}

func (h *UserHandler) BanUser(c echo.Context) error {
	id, okID := paramUint(c, "userId")
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}

	if err := h.Users.Ban(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperr.ErrCannotBanUser) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		return internalError(c)
	}

	h.publish(c, map[string]interface{}{"type": "user_banned", "user_id": id})
	return ok(c, "User banned successfully", nil)
}

func (h *UserHandler) UnbanUser(c echo.Context) error {
	id, okID := paramUint(c, "userId")
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid user id")
	}

	if err := h.Users.Unban(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperr.ErrUserNotFound) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		return internalError(c)
	}

	h.publish(c, map[string]interface{}{"type": "user_unbanned", "user_id": id})
	return ok(c, "User unbanned successfully", nil)
}

package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/transport"
)

func ok(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Message: message, Data: data})
}

func created(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, transport.Envelope{Success: true, Message: message, Data: data})
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, transport.Envelope{Success: false, Message: message})
}

// internalError hides store detail from the client; the cause is already
// logged by the service layer.
func internalError(c echo.Context) error {
	return fail(c, http.StatusInternalServerError, "Something went wrong!")
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, transport.Envelope{
		Success: false,
		Message: "Validation errors",
		Errors:  fieldErrors(err),
	})
}

// errorHandler folds echo's own errors (404s, middleware 401/403) into the
// response envelope so every error body has the same shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Something went wrong!"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
	}

	if err := fail(c, status, message); err != nil {
		c.Logger().Error(err)
	}
}

func paramUint(c echo.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

package rest

import (
	"errors"
	"net/http"

	"github.com/daniilsolovey/news-feed/internal/newsfeed"
	"github.com/labstack/echo/v4"
)

// handleServiceError maps the service error taxonomy to HTTP statuses:
// validation failures to 400, credential/identity failures to 401,
// everything else (store failures included) to 500.
func (h *Handler) handleServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	var vErr *newsfeed.ValidationError
	switch {
	case errors.As(err, &vErr):
		status = http.StatusBadRequest
		message = vErr.Message
	case errors.Is(err, newsfeed.ErrUserNotFound), errors.Is(err, newsfeed.ErrInvalidPassword):
		status = http.StatusUnauthorized
		message = err.Error()
	}

	h.log.Error("request failed",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", status,
		"error", err,
	)

	return c.JSON(status, MessageResponse{Message: message})
}

func (h *Handler) handleBindError(c echo.Context, err error) error {
	h.log.Error("invalid request parameters",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err,
	)

	return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request parameters"})
}

package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	newsPath       = "/news"
	registerPath   = "/user/register"
	loginPath      = "/user/login"
	checkLoginPath = "/user/check-login"
	logoutPath     = "/user/logout"
	healthPath     = "/health"
)

// RegisterRoutes builds the echo instance with all routes and middleware.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			h.log.Info("HTTP request",
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			)
			return nil
		},
	}))

	e.POST(newsPath, h.CreateNews)
	e.GET(newsPath, h.News)

	e.POST(registerPath, h.RegisterUser)
	e.POST(loginPath, h.LoginUser)
	e.GET(checkLoginPath, h.CheckLogin)
	e.POST(logoutPath, h.LogoutUser)

	e.GET(healthPath, h.handleHealth)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

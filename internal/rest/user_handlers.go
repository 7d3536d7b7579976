package rest

import (
	"net/http"

	"github.com/daniilsolovey/news-feed/internal/newsfeed"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	sessionName      = "session"
	sessionUserIDKey = "user_id"
)

// RegisterUser handles POST /user/register
// @Summary Register a user
// @Description Creates an account unless one with the same email already exists
// @Tags user
// @Accept json
// @Produce json
// @Param user body rest.UserRegisterRequest true "Registration payload"
// @Success 201 {object} rest.UserMessageResponse
// @Failure 400,500 {object} rest.MessageResponse
// @Router /user/register [post]
func (h *Handler) RegisterUser(c echo.Context) error {
	var req UserRegisterRequest
	if err := c.Bind(&req); err != nil {
		return h.handleBindError(c, err)
	}

	user, err := h.svc.RegisterUser(c.Request().Context(), newsfeed.UserRegister{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, UserMessageResponse{
		Message: "User registered successfully",
		User:    NewUser(user),
	})
}

// LoginUser handles POST /user/login
// @Summary Log a user in
// @Description Verifies credentials and stores the user identifier in the session
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body rest.UserLoginRequest true "Login payload"
// @Success 200 {object} rest.UserMessageResponse
// @Failure 401,500 {object} rest.MessageResponse
// @Router /user/login [post]
func (h *Handler) LoginUser(c echo.Context) error {
	var req UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleBindError(c, err)
	}

	user, err := h.svc.LoginUser(c.Request().Context(), newsfeed.UserLogin{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	sess, _ := h.store.Get(c.Request(), sessionName)
	sess.Values[sessionUserIDKey] = user.ID
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		h.log.Error("failed to save session", "error", err, "userId", user.ID)
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Session error during login"})
	}

	h.log.Info("user logged in", "userId", user.ID)

	return c.JSON(http.StatusOK, UserMessageResponse{
		Message: "User logged in successfully",
		User:    NewUser(user),
	})
}

// CheckLogin handles GET /user/check-login
// @Summary Check login state
// @Description Returns the account held by the session; purges the session when the user vanished from the store
// @Tags user
// @Produce json
// @Success 200 {object} rest.User
// @Failure 401,500 {object} rest.MessageResponse
// @Router /user/check-login [get]
func (h *Handler) CheckLogin(c echo.Context) error {
	sess, _ := h.store.Get(c.Request(), sessionName)

	userID, ok := sess.Values[sessionUserIDKey].(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "User not logged in"})
	}

	user, err := h.svc.UserByID(c.Request().Context(), userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}
	if user == nil {
		// Stale identifier: the user is gone, so the session is too.
		h.purgeSession(c, sess)
		return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "User not found or session invalid"})
	}

	return c.JSON(http.StatusOK, NewUser(user))
}

// LogoutUser handles POST /user/logout
// @Summary Log a user out
// @Description Purges the session
// @Tags user
// @Produce json
// @Success 200 {object} rest.MessageResponse
// @Router /user/logout [post]
func (h *Handler) LogoutUser(c echo.Context) error {
	sess, _ := h.store.Get(c.Request(), sessionName)
	h.purgeSession(c, sess)

	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

func (h *Handler) purgeSession(c echo.Context, sess *sessions.Session) {
	for key := range sess.Values {
		delete(sess.Values, key)
	}
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		h.log.Error("failed to purge session", "error", err)
	}
}

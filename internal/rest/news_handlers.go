package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/news-feed/internal/newsfeed"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const maxPageSize = 100

// Service is the slice of newsfeed.Service the handlers use.
type Service interface {
	CreateNews(ctx context.Context, data newsfeed.NewsCreate) (*newsfeed.News, error)
	NewsPage(ctx context.Context, query newsfeed.NewsQuery) (*newsfeed.Page, error)
	RegisterUser(ctx context.Context, data newsfeed.UserRegister) (*newsfeed.User, error)
	LoginUser(ctx context.Context, data newsfeed.UserLogin) (*newsfeed.User, error)
	UserByID(ctx context.Context, userID int) (*newsfeed.User, error)
}

type Handler struct {
	svc   Service
	store sessions.Store
	log   *slog.Logger
}

func NewHandler(svc Service, store sessions.Store, log *slog.Logger) *Handler {
	return &Handler{
		svc:   svc,
		store: store,
		log:   log,
	}
}

// CreateNews handles POST /news
// @Summary Create a news item
// @Description Creates one news item with a server-assigned creation timestamp
// @Tags news
// @Accept json
// @Produce json
// @Param news body rest.NewsCreateRequest true "News payload"
// @Success 201 {object} rest.News
// @Failure 400,500 {object} rest.MessageResponse
// @Router /news [post]
func (h *Handler) CreateNews(c echo.Context) error {
	var req NewsCreateRequest
	if err := c.Bind(&req); err != nil {
		return h.handleBindError(c, err)
	}

	news, err := h.svc.CreateNews(c.Request().Context(), newsfeed.NewsCreate{
		NewsType: req.NewsType,
		Href:     req.Href,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, NewNews(*news))
}

// News handles GET /news
// @Summary List news
// @Description Retrieves one page of news sorted by creation time descending, optionally filtered by category, with total page count
// @Tags news
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 10, max: 100)"
// @Param category query string false "Filter by exact category"
// @Success 200 {object} rest.PaginatedNews
// @Failure 400,500 {object} rest.MessageResponse
// @Router /news [get]
func (h *Handler) News(c echo.Context) error {
	var req NewsListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleBindError(c, err)
	}

	// Paging bounds are enforced once, here at the HTTP boundary.
	page := newsfeed.DefaultPage
	if req.Page != nil && *req.Page > 0 {
		page = *req.Page
	}

	pageSize := newsfeed.DefaultPageSize
	if req.PageSize != nil && *req.PageSize > 0 {
		pageSize = *req.PageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	result, err := h.svc.NewsPage(c.Request().Context(), newsfeed.NewsQuery{
		Page:     &page,
		PageSize: &pageSize,
		Category: req.Category,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, NewPaginatedNews(result))
}

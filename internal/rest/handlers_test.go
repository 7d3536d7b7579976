package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/news-feed/internal/db"
	"github.com/daniilsolovey/news-feed/internal/newsfeed"
)

type stubService struct {
	createNews   func(ctx context.Context, data newsfeed.NewsCreate) (*newsfeed.News, error)
	newsPage     func(ctx context.Context, query newsfeed.NewsQuery) (*newsfeed.Page, error)
	registerUser func(ctx context.Context, data newsfeed.UserRegister) (*newsfeed.User, error)
	loginUser    func(ctx context.Context, data newsfeed.UserLogin) (*newsfeed.User, error)
	userByID     func(ctx context.Context, userID int) (*newsfeed.User, error)
}

func (s *stubService) CreateNews(ctx context.Context, data newsfeed.NewsCreate) (*newsfeed.News, error) {
	return s.createNews(ctx, data)
}

func (s *stubService) NewsPage(ctx context.Context, query newsfeed.NewsQuery) (*newsfeed.Page, error) {
	return s.newsPage(ctx, query)
}

func (s *stubService) RegisterUser(ctx context.Context, data newsfeed.UserRegister) (*newsfeed.User, error) {
	return s.registerUser(ctx, data)
}

func (s *stubService) LoginUser(ctx context.Context, data newsfeed.UserLogin) (*newsfeed.User, error) {
	return s.loginUser(ctx, data)
}

func (s *stubService) UserByID(ctx context.Context, userID int) (*newsfeed.User, error) {
	return s.userByID(ctx, userID)
}

func newTestServer(svc Service) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := sessions.NewCookieStore([]byte("test-secret"))
	store.Options.HttpOnly = true

	return NewHandler(svc, store, log).RegisterRoutes()
}

func doRequest(
	server http.Handler,
	method, target, body string,
	cookies []*http.Cookie,
) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func testNews(id int) *newsfeed.News {
	return &newsfeed.News{News: db.News{
		ID:       id,
		NewsType: "tech",
		Href:     "https://example.com/a",
		Title:    "title",
		Datetime: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Content:  "content",
	}}
}

func testUser(id int) *newsfeed.User {
	return &newsfeed.User{User: db.User{
		ID:       id,
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "$2a$10$secret-hash",
	}}
}

func TestHandler_CreateNews(t *testing.T) {
	t.Run("valid payload returns 201 with created item", func(t *testing.T) {
		var got newsfeed.NewsCreate
		server := newTestServer(&stubService{
			createNews: func(_ context.Context, data newsfeed.NewsCreate) (*newsfeed.News, error) {
				got = data
				return testNews(7), nil
			},
		})

		rec := doRequest(server, http.MethodPost, "/news",
			`{"news_type":"tech","href":"https://example.com/a","title":"title","content":"content"}`,
			nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "tech", got.NewsType)
		assert.Equal(t, "title", got.Title)

		var resp News
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 7, resp.ID)
		assert.False(t, resp.Datetime.IsZero())
	})

	t.Run("validation failure returns 400 with the message", func(t *testing.T) {
		server := newTestServer(&stubService{
			createNews: func(_ context.Context, _ newsfeed.NewsCreate) (*newsfeed.News, error) {
				return nil, &newsfeed.ValidationError{Message: "Title cannot be empty"}
			},
		})

		rec := doRequest(server, http.MethodPost, "/news",
			`{"news_type":"tech","title":"","content":"content"}`, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Title cannot be empty", resp.Message)
	})

	t.Run("store failure returns 500 without leaking details", func(t *testing.T) {
		server := newTestServer(&stubService{
			createNews: func(_ context.Context, _ newsfeed.NewsCreate) (*newsfeed.News, error) {
				return nil, errors.New("pg: connection refused")
			},
		})

		rec := doRequest(server, http.MethodPost, "/news",
			`{"news_type":"tech","title":"title","content":"content"}`, nil)

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "internal error", resp.Message)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		server := newTestServer(&stubService{})

		rec := doRequest(server, http.MethodPost, "/news", `{"title":`, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_News(t *testing.T) {
	t.Run("defaults apply when no query parameters are given", func(t *testing.T) {
		var got newsfeed.NewsQuery
		server := newTestServer(&stubService{
			newsPage: func(_ context.Context, query newsfeed.NewsQuery) (*newsfeed.Page, error) {
				got = query
				return &newsfeed.Page{News: []newsfeed.News{}, TotalPages: 0, CurrentPage: 1}, nil
			},
		})

		rec := doRequest(server, http.MethodGet, "/news", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got.Page)
		require.NotNil(t, got.PageSize)
		assert.Equal(t, newsfeed.DefaultPage, *got.Page)
		assert.Equal(t, newsfeed.DefaultPageSize, *got.PageSize)
		assert.Nil(t, got.Category)

		var resp PaginatedNews
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotNil(t, resp.News)
		assert.Equal(t, 1, resp.CurrentPage)
	})

	t.Run("out-of-range parameters are clamped", func(t *testing.T) {
		var got newsfeed.NewsQuery
		server := newTestServer(&stubService{
			newsPage: func(_ context.Context, query newsfeed.NewsQuery) (*newsfeed.Page, error) {
				got = query
				return &newsfeed.Page{CurrentPage: *query.Page}, nil
			},
		})

		rec := doRequest(server, http.MethodGet, "/news?page=0&page_size=500", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, *got.Page)
		assert.Equal(t, maxPageSize, *got.PageSize)
	})

	t.Run("category filter is passed through", func(t *testing.T) {
		var got newsfeed.NewsQuery
		server := newTestServer(&stubService{
			newsPage: func(_ context.Context, query newsfeed.NewsQuery) (*newsfeed.Page, error) {
				got = query
				return &newsfeed.Page{
					News:        []newsfeed.News{*testNews(1)},
					TotalPages:  1,
					CurrentPage: 2,
				}, nil
			},
		})

		rec := doRequest(server, http.MethodGet, "/news?page=2&page_size=5&category=sports", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, got.Category)
		assert.Equal(t, "sports", *got.Category)
		assert.Equal(t, 2, *got.Page)
		assert.Equal(t, 5, *got.PageSize)

		var resp PaginatedNews
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.News, 1)
		assert.Equal(t, "tech", resp.News[0].NewsType)
		assert.Equal(t, 2, resp.CurrentPage)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		server := newTestServer(&stubService{
			newsPage: func(_ context.Context, _ newsfeed.NewsQuery) (*newsfeed.Page, error) {
				return nil, errors.New("pg: timeout")
			},
		})

		rec := doRequest(server, http.MethodGet, "/news", "", nil)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_RegisterUser(t *testing.T) {
	t.Run("valid payload returns 201 without the password", func(t *testing.T) {
		server := newTestServer(&stubService{
			registerUser: func(_ context.Context, data newsfeed.UserRegister) (*newsfeed.User, error) {
				assert.Equal(t, "secret", data.Password)
				return testUser(3), nil
			},
		})

		rec := doRequest(server, http.MethodPost, "/user/register",
			`{"name":"Alice","email":"alice@example.com","password":"secret"}`, nil)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp UserMessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "User registered successfully", resp.Message)
		assert.Equal(t, 3, resp.User.ID)
		assert.Equal(t, "alice@example.com", resp.User.Email)

		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		server := newTestServer(&stubService{
			registerUser: func(_ context.Context, _ newsfeed.UserRegister) (*newsfeed.User, error) {
				return nil, &newsfeed.ValidationError{Message: "User already exists"}
			},
		})

		rec := doRequest(server, http.MethodPost, "/user/register",
			`{"name":"Alice","email":"alice@example.com","password":"secret"}`, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "User already exists", resp.Message)
	})
}

func TestHandler_LoginUser(t *testing.T) {
	t.Run("valid credentials return 200 and set a session cookie", func(t *testing.T) {
		server := newTestServer(&stubService{
			loginUser: func(_ context.Context, data newsfeed.UserLogin) (*newsfeed.User, error) {
				assert.Equal(t, "alice@example.com", data.Email)
				return testUser(3), nil
			},
		})

		rec := doRequest(server, http.MethodPost, "/user/login",
			`{"email":"alice@example.com","password":"secret"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var sessionCookie *http.Cookie
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == sessionName {
				sessionCookie = cookie
			}
		}
		require.NotNil(t, sessionCookie, "login must set the session cookie")
		assert.True(t, sessionCookie.HttpOnly)

		var resp UserMessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "User logged in successfully", resp.Message)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("unknown email returns 401", func(t *testing.T) {
		server := newTestServer(&stubService{
			loginUser: func(_ context.Context, _ newsfeed.UserLogin) (*newsfeed.User, error) {
				return nil, newsfeed.ErrUserNotFound
			},
		})

		rec := doRequest(server, http.MethodPost, "/user/login",
			`{"email":"ghost@example.com","password":"secret"}`, nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		server := newTestServer(&stubService{
			loginUser: func(_ context.Context, _ newsfeed.UserLogin) (*newsfeed.User, error) {
				return nil, newsfeed.ErrInvalidPassword
			},
		})

		rec := doRequest(server, http.MethodPost, "/user/login",
			`{"email":"alice@example.com","password":"wrong"}`, nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_SessionLifecycle(t *testing.T) {
	server := newTestServer(&stubService{
		loginUser: func(_ context.Context, _ newsfeed.UserLogin) (*newsfeed.User, error) {
			return testUser(3), nil
		},
		userByID: func(_ context.Context, userID int) (*newsfeed.User, error) {
			require.Equal(t, 3, userID)
			return testUser(3), nil
		},
	})

	// Without a session the check must fail.
	rec := doRequest(server, http.MethodGet, "/user/check-login", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Log in and capture the cookie.
	rec = doRequest(server, http.MethodPost, "/user/login",
		`{"email":"alice@example.com","password":"secret"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// The session now resolves to the account.
	rec = doRequest(server, http.MethodGet, "/user/check-login", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var user User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, 3, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotContains(t, rec.Body.String(), "password")

	// Logout purges the session and hands back an expired cookie.
	rec = doRequest(server, http.MethodPost, "/user/logout", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	loggedOutCookies := rec.Result().Cookies()
	require.NotEmpty(t, loggedOutCookies)

	rec = doRequest(server, http.MethodGet, "/user/check-login", "", loggedOutCookies)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User not logged in", resp.Message)
}

func TestHandler_CheckLogin_StaleUser(t *testing.T) {
	server := newTestServer(&stubService{
		loginUser: func(_ context.Context, _ newsfeed.UserLogin) (*newsfeed.User, error) {
			return testUser(3), nil
		},
		userByID: func(_ context.Context, _ int) (*newsfeed.User, error) {
			// The account vanished after the session was issued.
			return nil, nil
		},
	})

	rec := doRequest(server, http.MethodPost, "/user/login",
		`{"email":"alice@example.com","password":"secret"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()

	rec = doRequest(server, http.MethodGet, "/user/check-login", "", cookies)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User not found or session invalid", resp.Message)

	// The handler must also have expired the session cookie.
	var purged *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionName {
			purged = cookie
		}
	}
	require.NotNil(t, purged)
	assert.Equal(t, -1, purged.MaxAge)
}

func TestHandler_Health(t *testing.T) {
	server := newTestServer(&stubService{})

	rec := doRequest(server, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

package newsfeed

import (
	"context"
	"fmt"
	"math"

	"github.com/daniilsolovey/news-feed/internal/db"
)

// Repo is the storage surface the news feed needs. *db.Repository satisfies it;
// tests substitute stubs.
type Repo interface {
	CreateNews(ctx context.Context, newsType, href, title, content string) (*db.News, error)
	News(ctx context.Context, page, pageSize int) ([]db.News, error)
	NewsByCategory(ctx context.Context, limit, offset int, category string) ([]db.News, error)
	NewsCount(ctx context.Context, category *string) (int, error)
	CreateUser(ctx context.Context, name, email, password string) (*db.User, error)
	UserByEmail(ctx context.Context, email string) (*db.User, error)
	UserByID(ctx context.Context, userID int) (*db.User, error)
}

// Manager composes repository calls into feed-level read and write operations.
type Manager struct {
	repo Repo
}

func NewManager(repo Repo) *Manager {
	return &Manager{
		repo: repo,
	}
}

func (m *Manager) CreateNews(ctx context.Context, newsType, href, title, content string) (*News, error) {
	created, err := m.repo.CreateNews(ctx, newsType, href, title, content)
	if err != nil {
		return nil, fmt.Errorf("db create news: %w", err)
	}

	news := NewNews(created)
	return &news, nil
}

// NewsPage retrieves one page of news, optionally filtered by category, along
// with the total page count for the same filter. page is 1-based; values below
// 1 are treated as 1 so the offset never goes negative.
func (m *Manager) NewsPage(ctx context.Context, page, pageSize int, category *string) (*Page, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize

	var (
		rows []db.News
		err  error
	)
	if category != nil {
		rows, err = m.repo.NewsByCategory(ctx, pageSize, offset, *category)
	} else {
		rows, err = m.repo.News(ctx, page, pageSize)
	}
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	total, err := m.repo.NewsCount(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("db get news count: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	return &Page{
		News:        NewNewsList(rows),
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

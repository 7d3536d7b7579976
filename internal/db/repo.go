package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// CreateNews inserts one news row with a server-assigned creation timestamp
// and returns the stored row including the assigned id.
func (r *Repository) CreateNews(ctx context.Context, newsType, href, title, content string) (*News, error) {
	news := &News{
		NewsType: newsType,
		Href:     href,
		Title:    title,
		Datetime: time.Now().UTC(),
		Content:  content,
	}

	_, err := r.db.ModelContext(ctx, news).
		Returning("*").
		Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert news: %w", err)
	}

	return news, nil
}

// News retrieves one page of news sorted by datetime DESC.
// page and pageSize are 1-based and must be positive.
func (r *Repository) News(ctx context.Context, page, pageSize int) ([]News, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var news []News
	err := r.db.ModelContext(ctx, &news).
		OrderExpr(`"t"."datetime" DESC`).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

// NewsByCategory retrieves news rows with an exact news_type match, sorted by
// datetime DESC. The offset is precomputed by the caller.
func (r *Repository) NewsByCategory(ctx context.Context, limit, offset int, category string) ([]News, error) {
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf(
			"invalid window: limit=%d, offset=%d", limit, offset,
		)
	}

	var news []News
	err := r.db.ModelContext(ctx, &news).
		Where(`"t"."news_type" = ?`, category).
		OrderExpr(`"t"."datetime" DESC`).
		Limit(limit).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query news by category: %w", err)
	}

	return news, nil
}

// NewsCount returns the total number of news rows matching the optional
// category filter. An empty table yields 0, not an error.
func (r *Repository) NewsCount(ctx context.Context, category *string) (int, error) {
	query := r.db.ModelContext(ctx, (*News)(nil))

	if category != nil {
		query = query.Where(`"t"."news_type" = ?`, *category)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}

	return count, nil
}

func (r *Repository) CreateUser(ctx context.Context, name, email, password string) (*User, error) {
	user := &User{
		Name:     name,
		Email:    email,
		Password: password,
	}

	_, err := r.db.ModelContext(ctx, user).
		Returning("*").
		Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// UserByEmail returns the user with the given email, nil when no such row
// exists, or an error when the query itself failed. Callers must treat the
// three outcomes separately.
func (r *Repository) UserByEmail(ctx context.Context, email string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."email" = ?`, email).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// UserByID returns the user with the given id, nil when the row is gone.
func (r *Repository) UserByID(ctx context.Context, userID int) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."id" = ?`, userID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

package newsfeed

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Service owns validation and the translation of storage outcomes into the
// feed's error taxonomy. It is stateless; one instance serves all requests.
type Service struct {
	news *Manager
	repo Repo
}

func NewService(news *Manager, repo Repo) *Service {
	return &Service{
		news: news,
		repo: repo,
	}
}

// CreateNews validates the payload and stores a new item. Title is checked
// before Content; the first empty field wins.
func (s *Service) CreateNews(ctx context.Context, data NewsCreate) (*News, error) {
	if data.Title == "" {
		return nil, &ValidationError{Message: "Title cannot be empty"}
	}
	if data.Content == "" {
		return nil, &ValidationError{Message: "Content cannot be empty"}
	}

	return s.news.CreateNews(ctx, data.NewsType, data.Href, data.Title, data.Content)
}

// NewsPage lists news with paging metadata, defaulting absent parameters to
// page 1 and 10 items per page.
func (s *Service) NewsPage(ctx context.Context, query NewsQuery) (*Page, error) {
	page := DefaultPage
	if query.Page != nil {
		page = *query.Page
	}

	pageSize := DefaultPageSize
	if query.PageSize != nil {
		pageSize = *query.PageSize
	}

	return s.news.NewsPage(ctx, page, pageSize, query.Category)
}

// RegisterUser creates a new account. Registration proceeds only when the
// email lookup explicitly reports no existing row; a store failure aborts.
func (s *Service) RegisterUser(ctx context.Context, data UserRegister) (*User, error) {
	if data.Name == "" {
		return nil, &ValidationError{Message: "Name cannot be empty"}
	}
	if data.Email == "" {
		return nil, &ValidationError{Message: "Email cannot be empty"}
	}
	if data.Password == "" {
		return nil, &ValidationError{Message: "Password cannot be empty"}
	}

	existing, err := s.repo.UserByEmail(ctx, data.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, &ValidationError{Message: "User already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, data.Name, data.Email, string(hash))
	if err != nil {
		return nil, fmt.Errorf("db create user: %w", err)
	}

	return NewUser(user), nil
}

// LoginUser verifies credentials. Any lookup failure collapses to
// ErrUserNotFound so login reveals nothing about which step failed.
func (s *Service) LoginUser(ctx context.Context, data UserLogin) (*User, error) {
	user, err := s.repo.UserByEmail(ctx, data.Email)
	if err != nil || user == nil {
		return nil, ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)) != nil {
		return nil, ErrInvalidPassword
	}

	return NewUser(user), nil
}

// UserByID returns the account for a stored session identifier, or nil when
// the user vanished from the store.
func (s *Service) UserByID(ctx context.Context, userID int) (*User, error) {
	user, err := s.repo.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	}

	return NewUser(user), nil
}

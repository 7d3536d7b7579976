package rest

import "time"

type NewsCreateRequest struct {
	NewsType string `json:"news_type"`
	Href     string `json:"href"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type NewsListRequest struct {
	Page     *int    `query:"page"`
	PageSize *int    `query:"page_size"`
	Category *string `query:"category"`
}

type News struct {
	ID       int       `json:"id"`
	NewsType string    `json:"news_type"`
	Href     string    `json:"href"`
	Title    string    `json:"title"`
	Datetime time.Time `json:"datetime"`
	Content  string    `json:"content"`
}

type PaginatedNews struct {
	News        []News `json:"news"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
}

// User is the wire form of an account. It never carries the password.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UserMessageResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

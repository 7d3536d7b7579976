package newsfeed

import (
	"github.com/daniilsolovey/news-feed/internal/db"
)

type News struct {
	db.News
}

type User struct {
	db.User
}

// Page is one page of news together with paging metadata.
// TotalPages is always ceil(total matching rows / page size).
type Page struct {
	News        []News
	TotalPages  int
	CurrentPage int
}

// NewsCreate is the payload for creating one news item.
type NewsCreate struct {
	NewsType string
	Href     string
	Title    string
	Content  string
}

// NewsQuery carries optional listing parameters; nil means "use default".
type NewsQuery struct {
	Page     *int
	PageSize *int
	Category *string
}

type UserRegister struct {
	Name     string
	Email    string
	Password string
}

type UserLogin struct {
	Email    string
	Password string
}

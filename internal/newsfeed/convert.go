package newsfeed

import (
	"github.com/daniilsolovey/news-feed/internal/db"
)

func NewNews(n *db.News) News {
	return News{News: *n}
}

func NewNewsList(list []db.News) []News {
	result := make([]News, len(list))
	for i := range list {
		result[i] = NewNews(&list[i])
	}
	return result
}

func NewUser(u *db.User) *User {
	if u == nil {
		return nil
	}
	return &User{User: *u}
}

package rest

import "github.com/daniilsolovey/news-feed/internal/newsfeed"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewNews(n newsfeed.News) News {
	return News{
		ID:       n.ID,
		NewsType: n.NewsType,
		Href:     n.Href,
		Title:    n.Title,
		Datetime: n.Datetime,
		Content:  n.Content,
	}
}

func NewPaginatedNews(p *newsfeed.Page) PaginatedNews {
	return PaginatedNews{
		News:        Map(p.News, NewNews),
		TotalPages:  p.TotalPages,
		CurrentPage: p.CurrentPage,
	}
}

func NewUser(u *newsfeed.User) User {
	return User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

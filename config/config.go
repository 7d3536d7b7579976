package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Session struct {
		// Secret signs session cookies, must be non-empty in production.
		Secret string
		// MaxAge is the cookie lifetime in seconds.
		MaxAge int
	}
}

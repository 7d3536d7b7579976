// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	News struct {
		ID, NewsType, Href, Title, Datetime, Content string
	}
	User struct {
		ID, Name, Email, Password string
	}
}{
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	News: struct {
		ID, NewsType, Href, Title, Datetime, Content string
	}{
		ID:       "id",
		NewsType: "news_type",
		Href:     "href",
		Title:    "title",
		Datetime: "datetime",
		Content:  "content",
	},
	User: struct {
		ID, Name, Email, Password string
	}{
		ID:       "id",
		Name:     "name",
		Email:    "email",
		Password: "password",
	},
}

var Tables = struct {
	GooseDbVersion struct {
		Name, Alias string
	}
	News struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	News: struct {
		Name, Alias string
	}{
		Name:  "news",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

type News struct {
	tableName struct{} `pg:"news,alias:t,discard_unknown_columns"`

	ID       int       `pg:"id,pk"`
	NewsType string    `pg:"news_type,use_zero"`
	Href     string    `pg:"href,use_zero"`
	Title    string    `pg:"title,use_zero"`
	Datetime time.Time `pg:"datetime,use_zero"`
	Content  string    `pg:"content,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID       int    `pg:"id,pk"`
	Name     string `pg:"name,use_zero"`
	Email    string `pg:"email,use_zero"`
	Password string `pg:"password,use_zero"`
}

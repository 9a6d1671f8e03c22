// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, Title, Description, Slug, IsPublished, CreatedAt string
	}
	Comment struct {
		ID, Text, CreatedAt, AuthorID, PostID string

		Author, Post string
	}
	Location struct {
		ID, Name, IsPublished, CreatedAt string
	}
	Post struct {
		ID, Title, Text, PublishedAt, IsPublished, Image, AuthorID, LocationID, CategoryID, CreatedAt string

		Author, Location, Category string
	}
	User struct {
		ID, Username, Email, FirstName, LastName, PasswordHash, IsStaff, CreatedAt string
	}
}{
	Category: struct {
		ID, Title, Description, Slug, IsPublished, CreatedAt string
	}{
		ID:          "categoryId",
		Title:       "title",
		Description: "description",
		Slug:        "slug",
		IsPublished: "isPublished",
		CreatedAt:   "createdAt",
	},
	Comment: struct {
		ID, Text, CreatedAt, AuthorID, PostID string

		Author, Post string
	}{
		ID:        "commentId",
		Text:      "text",
		CreatedAt: "createdAt",
		AuthorID:  "authorId",
		PostID:    "postId",

		Author: "Author",
		Post:   "Post",
	},
	Location: struct {
		ID, Name, IsPublished, CreatedAt string
	}{
		ID:          "locationId",
		Name:        "name",
		IsPublished: "isPublished",
		CreatedAt:   "createdAt",
	},
	Post: struct {
		ID, Title, Text, PublishedAt, IsPublished, Image, AuthorID, LocationID, CategoryID, CreatedAt string

		Author, Location, Category string
	}{
		ID:          "postId",
		Title:       "title",
		Text:        "text",
		PublishedAt: "publishedAt",
		IsPublished: "isPublished",
		Image:       "image",
		AuthorID:    "authorId",
		LocationID:  "locationId",
		CategoryID:  "categoryId",
		CreatedAt:   "createdAt",

		Author:   "Author",
		Location: "Location",
		Category: "Category",
	},
	User: struct {
		ID, Username, Email, FirstName, LastName, PasswordHash, IsStaff, CreatedAt string
	}{
		ID:           "userId",
		Username:     "username",
		Email:        "email",
		FirstName:    "firstName",
		LastName:     "lastName",
		PasswordHash: "passwordHash",
		IsStaff:      "isStaff",
		CreatedAt:    "createdAt",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	Location struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	User struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	Location: struct {
		Name, Alias string
	}{
		Name:  "locations",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int       `pg:"categoryId,pk"`
	Title       string    `pg:"title,use_zero"`
	Description string    `pg:"description,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID        int       `pg:"commentId,pk"`
	Text      string    `pg:"text,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	AuthorID  int       `pg:"authorId,use_zero"`
	PostID    int       `pg:"postId,use_zero"`

	Author *User `pg:"fk:authorId,rel:has-one"`
	Post   *Post `pg:"fk:postId,rel:has-one"`
}

type Location struct {
	tableName struct{} `pg:"locations,alias:t,discard_unknown_columns"`

	ID          int       `pg:"locationId,pk"`
	Name        string    `pg:"name,use_zero"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID          int       `pg:"postId,pk"`
	Title       string    `pg:"title,use_zero"`
	Text        string    `pg:"text,use_zero"`
	PublishedAt time.Time `pg:"publishedAt,use_zero"`
	IsPublished bool      `pg:"isPublished,use_zero"`
	Image       *string   `pg:"image"`
	AuthorID    int       `pg:"authorId,use_zero"`
	LocationID  *int      `pg:"locationId"`
	CategoryID  *int      `pg:"categoryId"`
	CreatedAt   time.Time `pg:"createdAt,use_zero"`

	Author   *User     `pg:"fk:authorId,rel:has-one"`
	Location *Location `pg:"fk:locationId,rel:has-one"`
	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           int       `pg:"userId,pk"`
	Username     string    `pg:"username,use_zero"`
	Email        string    `pg:"email,use_zero"`
	FirstName    string    `pg:"firstName,use_zero"`
	LastName     string    `pg:"lastName,use_zero"`
	PasswordHash string    `pg:"passwordHash,use_zero"`
	IsStaff      bool      `pg:"isStaff,use_zero"`
	CreatedAt    time.Time `pg:"createdAt,use_zero"`
}

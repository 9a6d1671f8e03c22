package blog

import (
	"io"
	"time"
)

type User struct {
	ID        int
	Username  string
	Email     string
	FirstName string
	LastName  string
	IsStaff   bool
	CreatedAt time.Time
}

// FullName returns first and last name or the username when both are empty.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	}
	return u.Username
}

type Category struct {
	ID          int
	Title       string
	Description string
	Slug        string
	IsPublished bool
	CreatedAt   time.Time
}

type Location struct {
	ID          int
	Name        string
	IsPublished bool
	CreatedAt   time.Time
}

type Post struct {
	ID          int
	Title       string
	Text        string
	PublishedAt time.Time
	IsPublished bool
	Image       string
	CreatedAt   time.Time

	AuthorID   int
	Author     User
	CategoryID *int
	Category   *Category
	LocationID *int
	Location   *Location

	CommentCount int
}

type Comment struct {
	ID        int
	Text      string
	CreatedAt time.Time
	PostID    int
	AuthorID  int
	Author    User
}

// PostPage is one page of a post listing.
type PostPage struct {
	Page
	Posts []Post
}

// Upload is an image submitted with a post form.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type PostInput struct {
	Title       string
	Text        string
	PublishedAt time.Time
	IsPublished bool
	CategoryID  *int
	LocationID  *int
	Image       *Upload
	ClearImage  bool
}

type CommentInput struct {
	Text string
}

type RegistrationInput struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
}

type PasswordChangeInput struct {
	OldPassword  string
	NewPassword1 string
	NewPassword2 string
}

type ProfileInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

package blog

import "github.com/daniilsolovey/blogicum/internal/db"

func NewUser(u *db.User) User {
	return User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
}

func NewCategory(c *db.Category) Category {
	return Category{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Slug:        c.Slug,
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt,
	}
}

func NewLocation(l *db.Location) Location {
	return Location{
		ID:          l.ID,
		Name:        l.Name,
		IsPublished: l.IsPublished,
		CreatedAt:   l.CreatedAt,
	}
}

func NewPost(p *db.Post) Post {
	post := Post{
		ID:          p.ID,
		Title:       p.Title,
		Text:        p.Text,
		PublishedAt: p.PublishedAt,
		IsPublished: p.IsPublished,
		CreatedAt:   p.CreatedAt,
		AuthorID:    p.AuthorID,
		CategoryID:  p.CategoryID,
		LocationID:  p.LocationID,
	}

	if p.Image != nil {
		post.Image = *p.Image
	}

	if p.Author != nil {
		post.Author = NewUser(p.Author)
	}

	if p.CategoryID != nil && p.Category != nil {
		c := NewCategory(p.Category)
		post.Category = &c
	}

	if p.LocationID != nil && p.Location != nil {
		l := NewLocation(p.Location)
		post.Location = &l
	}

	return post
}

func NewComment(c *db.Comment) Comment {
	comment := Comment{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
	}

	if c.Author != nil {
		comment.Author = NewUser(c.Author)
	}

	return comment
}

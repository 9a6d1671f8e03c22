package rpc

import "github.com/daniilsolovey/blogicum/internal/blog"

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Title:       c.Title,
		Description: c.Description,
		Slug:        c.Slug,
	}
}

func NewPost(p blog.Post) Post {
	post := Post{
		PostID:       p.ID,
		Title:        p.Title,
		Text:         p.Text,
		PublishedAt:  p.PublishedAt,
		Author:       p.Author.Username,
		Image:        p.Image,
		CommentCount: p.CommentCount,
	}

	if p.Category != nil {
		c := NewCategory(*p.Category)
		post.Category = &c
	}

	if p.Location != nil && p.Location.IsPublished {
		post.Location = &p.Location.Name
	}

	return post
}

func NewPostList(p blog.PostPage) PostList {
	return PostList{
		Page:     p.Number,
		NumPages: p.NumPages,
		Total:    p.Total,
		Posts:    NewPosts(p.Posts),
	}
}

package rpc

import "time"

type Category struct {
	CategoryID  int    `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
}

type Post struct {
	PostID       int       `json:"postId"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	PublishedAt  time.Time `json:"publishedAt"`
	Author       string    `json:"author"`
	Image        string    `json:"image,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Category     *Category `json:"category,omitempty"`
	CommentCount int       `json:"commentCount"`
}

type PostList struct {
	Page     int    `json:"page"`
	NumPages int    `json:"numPages"`
	Total    int    `json:"total"`
	Posts    []Post `json:"posts"`
}

package rpc

import "github.com/daniilsolovey/blogicum/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

type Categories []Category

func NewPosts(in []blog.Post) []Post {
	return Map(in, NewPost)
}

func NewCategories(in []blog.Category) Categories {
	return Map(in, NewCategory)
}

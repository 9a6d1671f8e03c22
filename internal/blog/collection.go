package blog

import "github.com/daniilsolovey/blogicum/internal/db"

func Map[From, To any](list []From, converter func(*From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(&list[i])
	}
	return result
}

func NewPosts(in []db.Post) []Post {
	return Map(in, NewPost)
}

func NewComments(in []db.Comment) []Comment {
	return Map(in, NewComment)
}

func NewCategories(in []db.Category) []Category {
	return Map(in, NewCategory)
}

func NewLocations(in []db.Location) []Location {
	return Map(in, NewLocation)
}

// PostIDs returns ids of the posts in order.
func PostIDs(posts []Post) []int {
	ids := make([]int, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	return ids
}

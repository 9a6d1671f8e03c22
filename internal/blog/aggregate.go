package blog

import (
	"sort"
)

// AttachCommentCounts sets CommentCount from counts (missing ids mean zero)
// and orders posts by publish time, newest first.
func AttachCommentCounts(posts []Post, counts map[int]int) []Post {
	for i := range posts {
		posts[i].CommentCount = counts[posts[i].ID]
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})

	return posts
}

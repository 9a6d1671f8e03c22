package blog

import (
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// IsVisible reports whether the post is publicly visible at now.
// A post without a category is visible.
func IsVisible(p Post, now time.Time) bool {
	if !p.IsPublished || p.PublishedAt.After(now) {
		return false
	}

	return p.Category == nil || p.Category.IsPublished
}

// CanView reports whether viewer may open the post page.
// Authors and staff see their hidden posts too.
func CanView(viewer *User, p Post, now time.Time) bool {
	if viewer != nil && (viewer.IsStaff || viewer.ID == p.AuthorID) {
		return true
	}

	return IsVisible(p, now)
}

// VisibleSearch returns a search limited to posts visible at now.
func VisibleSearch(now time.Time) *db.PostSearch {
	return &db.PostSearch{VisibleAt: &now}
}

// ProfileSearch returns posts of the author; non-owners get only visible posts.
func ProfileSearch(viewer *User, authorID int, now time.Time) *db.PostSearch {
	search := &db.PostSearch{AuthorID: &authorID}
	if !CanModify(viewer, authorID) {
		search.VisibleAt = &now
	}

	return search
}

package blog

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/daniilsolovey/blogicum/internal/db"
)

// mockStore is a manual stub implementation of Store
type mockStore struct {
	postsFunc          func(ctx context.Context, search *db.PostSearch, page, pageSize int) ([]db.Post, error)
	countPostsFunc     func(ctx context.Context, search *db.PostSearch) (int, error)
	postByIDFunc       func(ctx context.Context, postID int) (*db.Post, error)
	addPostFunc        func(ctx context.Context, post *db.Post) (*db.Post, error)
	updatePostFunc     func(ctx context.Context, post *db.Post) (bool, error)
	deletePostFunc     func(ctx context.Context, postID int) (bool, error)
	commentCountsFunc  func(ctx context.Context, postIDs []int) (map[int]int, error)
	commentsFunc       func(ctx context.Context, postID int) ([]db.Comment, error)
	commentByIDFunc    func(ctx context.Context, commentID int) (*db.Comment, error)
	addCommentFunc     func(ctx context.Context, comment *db.Comment) (*db.Comment, error)
	updateCommentFunc  func(ctx context.Context, comment *db.Comment) (bool, error)
	deleteCommentFunc  func(ctx context.Context, commentID int) (bool, error)
	categoriesFunc     func(ctx context.Context) ([]db.Category, error)
	categoryByIDFunc   func(ctx context.Context, categoryID int) (*db.Category, error)
	categoryBySlug     func(ctx context.Context, slug string) (*db.Category, error)
	locationsFunc      func(ctx context.Context) ([]db.Location, error)
	locationByIDFunc   func(ctx context.Context, locationID int) (*db.Location, error)
	userByIDFunc       func(ctx context.Context, userID int) (*db.User, error)
	userByNameFunc     func(ctx context.Context, username string) (*db.User, error)
	addUserFunc        func(ctx context.Context, user *db.User) (*db.User, error)
	updateUserFunc     func(ctx context.Context, user *db.User) (bool, error)
	updatePasswordFunc func(ctx context.Context, userID int, passwordHash string) (bool, error)
}

func (m *mockStore) Posts(ctx context.Context, search *db.PostSearch, page, pageSize int) ([]db.Post, error) {
	if m.postsFunc != nil {
		return m.postsFunc(ctx, search, page, pageSize)
	}
	return nil, nil
}

func (m *mockStore) CountPosts(ctx context.Context, search *db.PostSearch) (int, error) {
	if m.countPostsFunc != nil {
		return m.countPostsFunc(ctx, search)
	}
	return 0, nil
}

func (m *mockStore) PostByID(ctx context.Context, postID int) (*db.Post, error) {
	if m.postByIDFunc != nil {
		return m.postByIDFunc(ctx, postID)
	}
	return nil, nil
}

func (m *mockStore) AddPost(ctx context.Context, post *db.Post) (*db.Post, error) {
	if m.addPostFunc != nil {
		return m.addPostFunc(ctx, post)
	}
	return post, nil
}

func (m *mockStore) UpdatePost(ctx context.Context, post *db.Post) (bool, error) {
	if m.updatePostFunc != nil {
		return m.updatePostFunc(ctx, post)
	}
	return true, nil
}

func (m *mockStore) DeletePost(ctx context.Context, postID int) (bool, error) {
	if m.deletePostFunc != nil {
		return m.deletePostFunc(ctx, postID)
	}
	return true, nil
}

func (m *mockStore) CommentCounts(ctx context.Context, postIDs []int) (map[int]int, error) {
	if m.commentCountsFunc != nil {
		return m.commentCountsFunc(ctx, postIDs)
	}
	return map[int]int{}, nil
}

func (m *mockStore) CommentsByPost(ctx context.Context, postID int) ([]db.Comment, error) {
	if m.commentsFunc != nil {
		return m.commentsFunc(ctx, postID)
	}
	return nil, nil
}

func (m *mockStore) CommentByID(ctx context.Context, commentID int) (*db.Comment, error) {
	if m.commentByIDFunc != nil {
		return m.commentByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockStore) AddComment(ctx context.Context, comment *db.Comment) (*db.Comment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(ctx, comment)
	}
	return comment, nil
}

func (m *mockStore) UpdateComment(ctx context.Context, comment *db.Comment) (bool, error) {
	if m.updateCommentFunc != nil {
		return m.updateCommentFunc(ctx, comment)
	}
	return true, nil
}

func (m *mockStore) DeleteComment(ctx context.Context, commentID int) (bool, error) {
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(ctx, commentID)
	}
	return true, nil
}

func (m *mockStore) Categories(ctx context.Context) ([]db.Category, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) CategoryByID(ctx context.Context, categoryID int) (*db.Category, error) {
	if m.categoryByIDFunc != nil {
		return m.categoryByIDFunc(ctx, categoryID)
	}
	return &db.Category{ID: categoryID, IsPublished: true}, nil
}

func (m *mockStore) CategoryBySlug(ctx context.Context, slug string) (*db.Category, error) {
	if m.categoryBySlug != nil {
		return m.categoryBySlug(ctx, slug)
	}
	return nil, nil
}

func (m *mockStore) Locations(ctx context.Context) ([]db.Location, error) {
	if m.locationsFunc != nil {
		return m.locationsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) LocationByID(ctx context.Context, locationID int) (*db.Location, error) {
	if m.locationByIDFunc != nil {
		return m.locationByIDFunc(ctx, locationID)
	}
	return &db.Location{ID: locationID, IsPublished: true}, nil
}

func (m *mockStore) UserByID(ctx context.Context, userID int) (*db.User, error) {
	if m.userByIDFunc != nil {
		return m.userByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockStore) UserByUsername(ctx context.Context, username string) (*db.User, error) {
	if m.userByNameFunc != nil {
		return m.userByNameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockStore) AddUser(ctx context.Context, user *db.User) (*db.User, error) {
	if m.addUserFunc != nil {
		return m.addUserFunc(ctx, user)
	}
	return user, nil
}

func (m *mockStore) UpdateUser(ctx context.Context, user *db.User) (bool, error) {
	if m.updateUserFunc != nil {
		return m.updateUserFunc(ctx, user)
	}
	return true, nil
}

func (m *mockStore) UpdatePassword(ctx context.Context, userID int, passwordHash string) (bool, error) {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, userID, passwordHash)
	}
	return true, nil
}

// mockImages records saved and deleted image urls.
type mockImages struct {
	saved   []string
	types   []string
	deleted []string
	saveErr error
}

func (m *mockImages) Save(_ context.Context, contentType string, body io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	url := fmt.Sprintf("/media/posts_images/%d", len(m.saved)+1)
	m.saved = append(m.saved, url)
	m.types = append(m.types, contentType)
	return url, nil
}

func (m *mockImages) Delete(_ context.Context, url string) error {
	m.deleted = append(m.deleted, url)
	return nil
}

const pngData = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

func imageUpload(name, contentType, body string) *Upload {
	return &Upload{Filename: name, ContentType: contentType, Body: strings.NewReader(body)}
}

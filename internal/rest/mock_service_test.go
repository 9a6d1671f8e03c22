package rest

import (
	"context"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

// mockService is a manual stub implementation of Service
type mockService struct {
	indexFunc           func(ctx context.Context, page int) (*blog.PostPage, error)
	categoryPostsFunc   func(ctx context.Context, slug string, page int) (*blog.Category, *blog.PostPage, error)
	profileFunc         func(ctx context.Context, viewer *blog.User, username string, page int) (*blog.User, *blog.PostPage, error)
	postFunc            func(ctx context.Context, viewer *blog.User, postID int) (*blog.Post, []blog.Comment, error)
	editablePostFunc    func(ctx context.Context, viewer *blog.User, postID int) (*blog.Post, error)
	createPostFunc      func(ctx context.Context, viewer *blog.User, in blog.PostInput) (*blog.Post, error)
	updatePostFunc      func(ctx context.Context, viewer *blog.User, postID int, in blog.PostInput) (*blog.Post, error)
	deletePostFunc      func(ctx context.Context, viewer *blog.User, postID int) error
	addCommentFunc      func(ctx context.Context, viewer *blog.User, postID int, in blog.CommentInput) (*blog.Comment, error)
	editableCommentFunc func(ctx context.Context, viewer *blog.User, postID, commentID int) (*blog.Comment, error)
	updateCommentFunc   func(ctx context.Context, viewer *blog.User, postID, commentID int, in blog.CommentInput) (*blog.Comment, error)
	deleteCommentFunc   func(ctx context.Context, viewer *blog.User, postID, commentID int) error
	registerFunc        func(ctx context.Context, in blog.RegistrationInput) (*blog.User, error)
	authenticateFunc    func(ctx context.Context, username, password string) (*blog.User, error)
	userByIDFunc        func(ctx context.Context, userID int) (*blog.User, error)
	editableProfileFunc func(ctx context.Context, viewer *blog.User, username string) (*blog.User, error)
	updateProfileFunc   func(ctx context.Context, viewer *blog.User, username string, in blog.ProfileInput) (*blog.User, error)
	changePasswordFunc  func(ctx context.Context, viewer *blog.User, in blog.PasswordChangeInput) error
}

func emptyPage() *blog.PostPage {
	return &blog.PostPage{Page: blog.NewPage(1, blog.DefaultPageSize, 0)}
}

func (m *mockService) Index(ctx context.Context, page int) (*blog.PostPage, error) {
	if m.indexFunc != nil {
		return m.indexFunc(ctx, page)
	}
	return emptyPage(), nil
}

func (m *mockService) CategoryPosts(ctx context.Context, slug string, page int) (*blog.Category, *blog.PostPage, error) {
	if m.categoryPostsFunc != nil {
		return m.categoryPostsFunc(ctx, slug, page)
	}
	return nil, nil, blog.ErrNotFound
}

func (m *mockService) Profile(ctx context.Context, viewer *blog.User, username string, page int) (*blog.User, *blog.PostPage, error) {
	if m.profileFunc != nil {
		return m.profileFunc(ctx, viewer, username, page)
	}
	return nil, nil, blog.ErrNotFound
}

func (m *mockService) Post(ctx context.Context, viewer *blog.User, postID int) (*blog.Post, []blog.Comment, error) {
	if m.postFunc != nil {
		return m.postFunc(ctx, viewer, postID)
	}
	return nil, nil, blog.ErrNotFound
}

func (m *mockService) EditablePost(ctx context.Context, viewer *blog.User, postID int) (*blog.Post, error) {
	if m.editablePostFunc != nil {
		return m.editablePostFunc(ctx, viewer, postID)
	}
	return nil, blog.ErrNotFound
}

func (m *mockService) CreatePost(ctx context.Context, viewer *blog.User, in blog.PostInput) (*blog.Post, error) {
	if m.createPostFunc != nil {
		return m.createPostFunc(ctx, viewer, in)
	}
	return &blog.Post{ID: 1}, nil
}

func (m *mockService) UpdatePost(ctx context.Context, viewer *blog.User, postID int, in blog.PostInput) (*blog.Post, error) {
	if m.updatePostFunc != nil {
		return m.updatePostFunc(ctx, viewer, postID, in)
	}
	return &blog.Post{ID: postID}, nil
}

func (m *mockService) DeletePost(ctx context.Context, viewer *blog.User, postID int) error {
	if m.deletePostFunc != nil {
		return m.deletePostFunc(ctx, viewer, postID)
	}
	return nil
}

func (m *mockService) AddComment(ctx context.Context, viewer *blog.User, postID int, in blog.CommentInput) (*blog.Comment, error) {
	if m.addCommentFunc != nil {
		return m.addCommentFunc(ctx, viewer, postID, in)
	}
	return &blog.Comment{ID: 1, PostID: postID, Text: in.Text}, nil
}

func (m *mockService) EditableComment(ctx context.Context, viewer *blog.User, postID, commentID int) (*blog.Comment, error) {
	if m.editableCommentFunc != nil {
		return m.editableCommentFunc(ctx, viewer, postID, commentID)
	}
	return nil, blog.ErrNotFound
}

func (m *mockService) UpdateComment(ctx context.Context, viewer *blog.User, postID, commentID int, in blog.CommentInput) (*blog.Comment, error) {
	if m.updateCommentFunc != nil {
		return m.updateCommentFunc(ctx, viewer, postID, commentID, in)
	}
	return &blog.Comment{ID: commentID, PostID: postID, Text: in.Text}, nil
}

func (m *mockService) DeleteComment(ctx context.Context, viewer *blog.User, postID, commentID int) error {
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(ctx, viewer, postID, commentID)
	}
	return nil
}

func (m *mockService) Categories(ctx context.Context) ([]blog.Category, error) {
	return []blog.Category{{ID: 1, Title: "Travel", Slug: "travel", IsPublished: true}}, nil
}

func (m *mockService) Locations(ctx context.Context) ([]blog.Location, error) {
	return []blog.Location{{ID: 1, Name: "Yasnaya Polyana", IsPublished: true}}, nil
}

func (m *mockService) Register(ctx context.Context, in blog.RegistrationInput) (*blog.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, in)
	}
	return &blog.User{ID: 10, Username: in.Username}, nil
}

func (m *mockService) Authenticate(ctx context.Context, username, password string) (*blog.User, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, username, password)
	}
	return nil, blog.ErrInvalidCredentials
}

func (m *mockService) UserByID(ctx context.Context, userID int) (*blog.User, error) {
	if m.userByIDFunc != nil {
		return m.userByIDFunc(ctx, userID)
	}
	return nil, blog.ErrNotFound
}

func (m *mockService) EditableProfile(ctx context.Context, viewer *blog.User, username string) (*blog.User, error) {
	if m.editableProfileFunc != nil {
		return m.editableProfileFunc(ctx, viewer, username)
	}
	return nil, blog.ErrNotFound
}

func (m *mockService) UpdateProfile(ctx context.Context, viewer *blog.User, username string, in blog.ProfileInput) (*blog.User, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, viewer, username, in)
	}
	return &blog.User{ID: viewer.ID, Username: in.Username}, nil
}

func (m *mockService) ChangePassword(ctx context.Context, viewer *blog.User, in blog.PasswordChangeInput) error {
	if m.changePasswordFunc != nil {
		return m.changePasswordFunc(ctx, viewer, in)
	}
	return nil
}

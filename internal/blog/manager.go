package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
	"github.com/daniilsolovey/blogicum/internal/media"
)

// Store is the persistence used by Manager. *db.Repository implements it.
type Store interface {
	Posts(ctx context.Context, search *db.PostSearch, page, pageSize int) ([]db.Post, error)
	CountPosts(ctx context.Context, search *db.PostSearch) (int, error)
	PostByID(ctx context.Context, postID int) (*db.Post, error)
	AddPost(ctx context.Context, post *db.Post) (*db.Post, error)
	UpdatePost(ctx context.Context, post *db.Post) (bool, error)
	DeletePost(ctx context.Context, postID int) (bool, error)

	CommentCounts(ctx context.Context, postIDs []int) (map[int]int, error)
	CommentsByPost(ctx context.Context, postID int) ([]db.Comment, error)
	CommentByID(ctx context.Context, commentID int) (*db.Comment, error)
	AddComment(ctx context.Context, comment *db.Comment) (*db.Comment, error)
	UpdateComment(ctx context.Context, comment *db.Comment) (bool, error)
	DeleteComment(ctx context.Context, commentID int) (bool, error)

	Categories(ctx context.Context) ([]db.Category, error)
	CategoryByID(ctx context.Context, categoryID int) (*db.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*db.Category, error)
	Locations(ctx context.Context) ([]db.Location, error)
	LocationByID(ctx context.Context, locationID int) (*db.Location, error)

	UserByID(ctx context.Context, userID int) (*db.User, error)
	UserByUsername(ctx context.Context, username string) (*db.User, error)
	AddUser(ctx context.Context, user *db.User) (*db.User, error)
	UpdateUser(ctx context.Context, user *db.User) (bool, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) (bool, error)
}

type Manager struct {
	db       Store
	images   media.Storage
	pageSize int
	now      func() time.Time
}

func NewManager(repo Store, images media.Storage, pageSize int) *Manager {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	return &Manager{
		db:       repo,
		images:   images,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// listPosts paginates the search and annotates every post with its comment count.
func (m *Manager) listPosts(ctx context.Context, search *db.PostSearch, pageNumber int) (*PostPage, error) {
	total, err := m.db.CountPosts(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("db count posts: %w", err)
	}

	page := NewPage(pageNumber, m.pageSize, total)
	result := &PostPage{Page: page, Posts: []Post{}}
	if total == 0 {
		return result, nil
	}

	dbPosts, err := m.db.Posts(ctx, search, page.Number, page.Size)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	posts := NewPosts(dbPosts)
	counts, err := m.db.CommentCounts(ctx, PostIDs(posts))
	if err != nil {
		return nil, fmt.Errorf("db count comments: %w", err)
	}

	result.Posts = AttachCommentCounts(posts, counts)
	return result, nil
}

// Index returns the home listing: publicly visible posts, newest first.
func (m *Manager) Index(ctx context.Context, pageNumber int) (*PostPage, error) {
	return m.listPosts(ctx, VisibleSearch(m.now()), pageNumber)
}

// CountVisible returns the number of publicly visible posts.
func (m *Manager) CountVisible(ctx context.Context) (int, error) {
	count, err := m.db.CountPosts(ctx, VisibleSearch(m.now()))
	if err != nil {
		return 0, fmt.Errorf("db count posts: %w", err)
	}
	return count, nil
}

// CategoryPosts returns a published category and its visible posts.
func (m *Manager) CategoryPosts(ctx context.Context, slug string, pageNumber int) (*Category, *PostPage, error) {
	dbCategory, err := m.db.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("db get category: %w", err)
	} else if dbCategory == nil || !dbCategory.IsPublished {
		return nil, nil, ErrNotFound
	}

	category := NewCategory(dbCategory)
	search := VisibleSearch(m.now())
	search.CategoryID = &category.ID

	page, err := m.listPosts(ctx, search, pageNumber)
	if err != nil {
		return nil, nil, err
	}

	return &category, page, nil
}

// Profile returns the user and their posts. The owner sees every own post,
// other viewers only visible ones.
func (m *Manager) Profile(ctx context.Context, viewer *User, username string, pageNumber int) (*User, *PostPage, error) {
	dbUser, err := m.db.UserByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, nil, ErrNotFound
	}

	profile := NewUser(dbUser)
	page, err := m.listPosts(ctx, ProfileSearch(viewer, profile.ID, m.now()), pageNumber)
	if err != nil {
		return nil, nil, err
	}

	return &profile, page, nil
}

func (m *Manager) postByID(ctx context.Context, postID int) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	post := NewPost(dbPost)
	return &post, nil
}

// Post returns a post the viewer may see with its comments, oldest first.
// Hidden posts of other authors are reported as ErrNotFound.
func (m *Manager) Post(ctx context.Context, viewer *User, postID int) (*Post, []Comment, error) {
	post, err := m.postByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	if !CanView(viewer, *post, m.now()) {
		return nil, nil, ErrNotFound
	}

	dbComments, err := m.db.CommentsByPost(ctx, post.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("db get comments: %w", err)
	}

	comments := NewComments(dbComments)
	post.CommentCount = len(comments)

	return post, comments, nil
}

// PublicPost returns the post only when it is publicly visible.
func (m *Manager) PublicPost(ctx context.Context, postID int) (*Post, error) {
	post, err := m.postByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !IsVisible(*post, m.now()) {
		return nil, ErrNotFound
	}

	counts, err := m.db.CommentCounts(ctx, []int{post.ID})
	if err != nil {
		return nil, fmt.Errorf("db count comments: %w", err)
	}
	post.CommentCount = counts[post.ID]

	return post, nil
}

// EditablePost returns the post when the viewer is its author.
func (m *Manager) EditablePost(ctx context.Context, viewer *User, postID int) (*Post, error) {
	post, err := m.postByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !CanModify(viewer, post.AuthorID) {
		return nil, ErrPermissionDenied
	}

	return post, nil
}

func (m *Manager) validatePost(ctx context.Context, in *PostInput) error {
	in.normalize()
	verr := in.Validate()

	if in.CategoryID != nil {
		category, err := m.db.CategoryByID(ctx, *in.CategoryID)
		if err != nil {
			return fmt.Errorf("db get category: %w", err)
		} else if category == nil || !category.IsPublished {
			verr.add("category", "Select a valid choice.")
		}
	}

	if in.LocationID != nil {
		location, err := m.db.LocationByID(ctx, *in.LocationID)
		if err != nil {
			return fmt.Errorf("db get location: %w", err)
		} else if location == nil || !location.IsPublished {
			verr.add("location", "Select a valid choice.")
		}
	}

	if in.Image != nil {
		contentType, body, err := media.DetectImage(in.Image.Body)
		switch {
		case errors.Is(err, media.ErrNotImage):
			verr.add("image", invalidImageMessage)
		case err != nil:
			return err
		default:
			in.Image.ContentType = contentType
			in.Image.Body = body
		}
	}

	return verr.orNil()
}

func (m *Manager) saveImage(ctx context.Context, upload *Upload) (*string, error) {
	if m.images == nil {
		return nil, NewValidationError("image", "Image uploads are disabled.")
	}

	url, err := m.images.Save(ctx, upload.ContentType, upload.Body)
	if errors.Is(err, media.ErrNotImage) {
		return nil, NewValidationError("image", invalidImageMessage)
	} else if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}

	return &url, nil
}

func (m *Manager) deleteImage(ctx context.Context, url string) error {
	if m.images == nil || url == "" {
		return nil
	}

	if err := m.images.Delete(ctx, url); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}

	return nil
}

// discardImage removes an image saved for a write that failed.
func (m *Manager) discardImage(ctx context.Context, url *string) error {
	if url == nil {
		return nil
	}
	return m.deleteImage(ctx, *url)
}

// CreatePost stores a new post authored by the viewer.
func (m *Manager) CreatePost(ctx context.Context, viewer *User, in PostInput) (*Post, error) {
	if viewer == nil {
		return nil, ErrPermissionDenied
	}

	if err := m.validatePost(ctx, &in); err != nil {
		return nil, err
	}

	post := &db.Post{
		Title:       in.Title,
		Text:        in.Text,
		PublishedAt: in.PublishedAt,
		IsPublished: in.IsPublished,
		AuthorID:    viewer.ID,
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
		CreatedAt:   m.now(),
	}

	if in.Image != nil {
		url, err := m.saveImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		post.Image = url
	}

	saved, err := m.db.AddPost(ctx, post)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("db add post: %w", err), m.discardImage(ctx, post.Image))
	}

	result := NewPost(saved)
	result.Author = *viewer
	return &result, nil
}

// UpdatePost applies the form to a post of the viewer.
func (m *Manager) UpdatePost(ctx context.Context, viewer *User, postID int, in PostInput) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post: %w", err)
	} else if dbPost == nil {
		return nil, ErrNotFound
	}

	if !CanModify(viewer, dbPost.AuthorID) {
		return nil, ErrPermissionDenied
	}

	if err := m.validatePost(ctx, &in); err != nil {
		return nil, err
	}

	var oldImage string
	if dbPost.Image != nil {
		oldImage = *dbPost.Image
	}

	dbPost.Title = in.Title
	dbPost.Text = in.Text
	dbPost.PublishedAt = in.PublishedAt
	dbPost.IsPublished = in.IsPublished
	dbPost.CategoryID = in.CategoryID
	dbPost.LocationID = in.LocationID

	switch {
	case in.Image != nil:
		url, err := m.saveImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		dbPost.Image = url
	case in.ClearImage:
		dbPost.Image = nil
	}

	ok, err := m.db.UpdatePost(ctx, dbPost)
	if err != nil || !ok {
		if err == nil {
			err = ErrNotFound
		} else {
			err = fmt.Errorf("db update post: %w", err)
		}
		if in.Image != nil {
			err = errors.Join(err, m.discardImage(ctx, dbPost.Image))
		}
		return nil, err
	}

	if oldImage != "" && (dbPost.Image == nil || *dbPost.Image != oldImage) {
		if err := m.deleteImage(ctx, oldImage); err != nil {
			return nil, err
		}
	}

	return m.postByID(ctx, postID)
}

// DeletePost removes a post of the viewer with its comments and image.
func (m *Manager) DeletePost(ctx context.Context, viewer *User, postID int) error {
	post, err := m.EditablePost(ctx, viewer, postID)
	if err != nil {
		return err
	}

	ok, err := m.db.DeletePost(ctx, post.ID)
	if err != nil {
		return fmt.Errorf("db delete post: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	return m.deleteImage(ctx, post.Image)
}

// AddComment binds the comment to the viewer and to a post the viewer can see.
func (m *Manager) AddComment(ctx context.Context, viewer *User, postID int, in CommentInput) (*Comment, error) {
	if viewer == nil {
		return nil, ErrPermissionDenied
	}

	post, err := m.postByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !CanView(viewer, *post, m.now()) {
		return nil, ErrNotFound
	}

	in.normalize()
	if err := in.Validate().orNil(); err != nil {
		return nil, err
	}

	comment, err := m.db.AddComment(ctx, &db.Comment{
		Text:      in.Text,
		CreatedAt: m.now(),
		AuthorID:  viewer.ID,
		PostID:    post.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("db add comment: %w", err)
	}

	result := NewComment(comment)
	result.Author = *viewer
	return &result, nil
}

// EditableComment returns a comment of the post when the viewer is its author.
func (m *Manager) EditableComment(ctx context.Context, viewer *User, postID, commentID int) (*Comment, error) {
	dbComment, err := m.db.CommentByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("db get comment: %w", err)
	} else if dbComment == nil || dbComment.PostID != postID {
		return nil, ErrNotFound
	}

	if !CanModify(viewer, dbComment.AuthorID) {
		return nil, ErrPermissionDenied
	}

	comment := NewComment(dbComment)
	return &comment, nil
}

// UpdateComment changes the text only; post and author stay as created.
func (m *Manager) UpdateComment(ctx context.Context, viewer *User, postID, commentID int, in CommentInput) (*Comment, error) {
	comment, err := m.EditableComment(ctx, viewer, postID, commentID)
	if err != nil {
		return nil, err
	}

	in.normalize()
	if err := in.Validate().orNil(); err != nil {
		return nil, err
	}

	ok, err := m.db.UpdateComment(ctx, &db.Comment{
		ID:        comment.ID,
		Text:      in.Text,
		CreatedAt: comment.CreatedAt,
		AuthorID:  comment.AuthorID,
		PostID:    comment.PostID,
	})
	if err != nil {
		return nil, fmt.Errorf("db update comment: %w", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	comment.Text = in.Text
	return comment, nil
}

func (m *Manager) DeleteComment(ctx context.Context, viewer *User, postID, commentID int) error {
	comment, err := m.EditableComment(ctx, viewer, postID, commentID)
	if err != nil {
		return err
	}

	ok, err := m.db.DeleteComment(ctx, comment.ID)
	if err != nil {
		return fmt.Errorf("db delete comment: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	return nil
}

// Categories returns published categories for post forms.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// Locations returns published locations for post forms.
func (m *Manager) Locations(ctx context.Context) ([]Location, error) {
	list, err := m.db.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get locations: %w", err)
	}

	return NewLocations(list), nil
}

func (m *Manager) UserByID(ctx context.Context, userID int) (*User, error) {
	dbUser, err := m.db.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, ErrNotFound
	}

	user := NewUser(dbUser)
	return &user, nil
}

// Register creates a user account.
func (m *Manager) Register(ctx context.Context, in RegistrationInput) (*User, error) {
	in.normalize()
	if err := in.Validate().orNil(); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password1)
	if err != nil {
		return nil, err
	}

	dbUser, err := m.db.AddUser(ctx, &db.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    m.now(),
	})
	if errors.Is(err, db.ErrUniqueViolation) {
		return nil, NewValidationError("username", "A user with that username already exists.")
	} else if err != nil {
		return nil, fmt.Errorf("db add user: %w", err)
	}

	user := NewUser(dbUser)
	return &user, nil
}

// Authenticate checks credentials and returns the user.
func (m *Manager) Authenticate(ctx context.Context, username, password string) (*User, error) {
	dbUser, err := m.db.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil || dbUser.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	ok, err := checkPassword(dbUser.PasswordHash, password)
	if err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	user := NewUser(dbUser)
	return &user, nil
}

// ChangePassword replaces the viewer's password after checking the current one.
func (m *Manager) ChangePassword(ctx context.Context, viewer *User, in PasswordChangeInput) error {
	if viewer == nil {
		return ErrPermissionDenied
	}

	if err := in.Validate().orNil(); err != nil {
		return err
	}

	dbUser, err := m.db.UserByID(ctx, viewer.ID)
	if err != nil {
		return fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return ErrNotFound
	}

	wrongPassword := NewValidationError("old_password", "Your old password was entered incorrectly. Please enter it again.")
	if dbUser.PasswordHash == "" {
		return wrongPassword
	}

	ok, err := checkPassword(dbUser.PasswordHash, in.OldPassword)
	if err != nil {
		return err
	} else if !ok {
		return wrongPassword
	}

	hash, err := hashPassword(in.NewPassword1)
	if err != nil {
		return err
	}

	ok, err = m.db.UpdatePassword(ctx, viewer.ID, hash)
	if err != nil {
		return fmt.Errorf("db update password: %w", err)
	} else if !ok {
		return ErrNotFound
	}

	return nil
}

// EditableProfile returns the profile when it belongs to the viewer.
func (m *Manager) EditableProfile(ctx context.Context, viewer *User, username string) (*User, error) {
	dbUser, err := m.db.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("db get user: %w", err)
	} else if dbUser == nil {
		return nil, ErrNotFound
	}

	if !CanEditProfile(viewer, dbUser.Username) {
		return nil, ErrPermissionDenied
	}

	user := NewUser(dbUser)
	return &user, nil
}

// UpdateProfile changes username, email and names of the viewer's own profile.
func (m *Manager) UpdateProfile(ctx context.Context, viewer *User, username string, in ProfileInput) (*User, error) {
	if _, err := m.EditableProfile(ctx, viewer, username); err != nil {
		return nil, err
	}

	in.normalize()
	if err := in.Validate().orNil(); err != nil {
		return nil, err
	}

	ok, err := m.db.UpdateUser(ctx, &db.User{
		ID:        viewer.ID,
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if errors.Is(err, db.ErrUniqueViolation) {
		return nil, NewValidationError("username", "A user with that username already exists.")
	} else if err != nil {
		return nil, fmt.Errorf("db update user: %w", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	return m.UserByID(ctx, viewer.ID)
}

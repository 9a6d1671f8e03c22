package rpc

import (
	"context"
	"errors"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// Reader is the public read side of the blog. *blog.Manager implements it.
type Reader interface {
	Index(ctx context.Context, page int) (*blog.PostPage, error)
	CountVisible(ctx context.Context) (int, error)
	PublicPost(ctx context.Context, postID int) (*blog.Post, error)
	Categories(ctx context.Context) ([]blog.Category, error)
}

// PostsService provides read-only RPC methods for publicly visible posts.
type PostsService struct {
	zenrpc.Service
	reader Reader
}

func NewPostsService(reader Reader) *PostsService {
	return &PostsService{reader: reader}
}

// List returns a page of publicly visible posts, newest first.
// A page past the end returns the last page.
//
//zenrpc:page=1 page number (1-based)
//zenrpc:return page of posts with comment counts
//zenrpc:500 internal server error
func (s *PostsService) List(ctx context.Context, page int) (*PostList, error) {
	postPage, err := s.reader.Index(ctx, page)
	if err != nil {
		return nil, err
	}

	list := NewPostList(*postPage)
	return &list, nil
}

// Count returns the number of publicly visible posts.
//
//zenrpc:return count of posts
//zenrpc:500 internal server error
func (s *PostsService) Count(ctx context.Context) (int, error) {
	return s.reader.CountVisible(ctx)
}

// ByID returns a publicly visible post.
//
//zenrpc:id post numeric ID
//zenrpc:return post
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostsService) ByID(ctx context.Context, id int) (*Post, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	post, err := s.reader.PublicPost(ctx, id)
	if errors.Is(err, blog.ErrNotFound) {
		return nil, zenrpc.NewStringError(404, "post not found")
	} else if err != nil {
		return nil, err
	}

	result := NewPost(*post)
	return &result, nil
}

// CategoriesService provides RPC methods for categories.
type CategoriesService struct {
	zenrpc.Service
	reader Reader
}

func NewCategoriesService(reader Reader) *CategoriesService {
	return &CategoriesService{reader: reader}
}

// List returns published categories ordered by title.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *CategoriesService) List(ctx context.Context) (Categories, error) {
	categories, err := s.reader.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}

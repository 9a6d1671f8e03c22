package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const uniqueViolationCode = "23505"

var ErrUniqueViolation = errors.New("unique violation")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Posts returns a page of posts matching the search with author, category and location loaded.
// Results are sorted by publishedAt DESC.
func (r *Repository) Posts(ctx context.Context, search *PostSearch, page, pageSize int) ([]Post, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Relation(Columns.Post.Author).
		Relation(Columns.Post.Category).
		Relation(Columns.Post.Location).
		Apply(search.Apply).
		OrderExpr(`"t"."publishedAt" DESC, "t"."postId" DESC`).
		Limit(pageSize).
		Offset(offset).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) CountPosts(ctx context.Context, search *PostSearch) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Apply(search.Apply).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get posts count: %w", err)
	}

	return count, nil
}

// OnePost returns the first post matching the search or nil.
func (r *Repository) OnePost(ctx context.Context, search *PostSearch) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation(Columns.Post.Author).
		Relation(Columns.Post.Category).
		Relation(Columns.Post.Location).
		Apply(search.Apply).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (r *Repository) PostByID(ctx context.Context, postID int) (*Post, error) {
	return r.OnePost(ctx, &PostSearch{ID: &postID})
}

func (r *Repository) AddPost(ctx context.Context, post *Post) (*Post, error) {
	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// UpdatePost stores the editable columns of the post. The author is never changed.
func (r *Repository) UpdatePost(ctx context.Context, post *Post) (bool, error) {
	res, err := r.db.ModelContext(ctx, post).
		Column(
			Columns.Post.Title,
			Columns.Post.Text,
			Columns.Post.PublishedAt,
			Columns.Post.IsPublished,
			Columns.Post.Image,
			Columns.Post.LocationID,
			Columns.Post.CategoryID,
		).
		WherePK().
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeletePost(ctx context.Context, postID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Post{ID: postID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// CommentCounts returns the number of comments per post id. Posts without comments are absent.
func (r *Repository) CommentCounts(ctx context.Context, postIDs []int) (map[int]int, error) {
	counts := make(map[int]int, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID int `pg:"postId"`
		Count  int `pg:"count"`
	}
	err := r.db.ModelContext(ctx, (*Comment)(nil)).
		ColumnExpr(`"t"."postId"`).
		ColumnExpr(`count(*) AS "count"`).
		Where(`"t"."postId" IN (?)`, pg.In(postIDs)).
		GroupExpr(`"t"."postId"`).
		Select(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}

	return counts, nil
}

// CommentsByPost returns comments of the post with authors, oldest first.
func (r *Repository) CommentsByPost(ctx context.Context, postID int) ([]Comment, error) {
	var comments []Comment
	err := r.db.ModelContext(ctx, &comments).
		Relation(Columns.Comment.Author).
		Where(`"t"."postId" = ?`, postID).
		OrderExpr(`"t"."createdAt" ASC, "t"."commentId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

func (r *Repository) CommentByID(ctx context.Context, commentID int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation(Columns.Comment.Author).
		Where(`"t"."commentId" = ?`, commentID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *Repository) AddComment(ctx context.Context, comment *Comment) (*Comment, error) {
	if _, err := r.db.ModelContext(ctx, comment).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment *Comment) (bool, error) {
	res, err := r.db.ModelContext(ctx, comment).
		Column(Columns.Comment.Text).
		WherePK().
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteComment(ctx context.Context, commentID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Comment{ID: commentID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// Categories returns published categories ordered by title.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		Where(`"isPublished" = ?`, true).
		OrderExpr(`"title" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	return r.oneCategory(ctx, `"categoryId" = ?`, categoryID)
}

func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	return r.oneCategory(ctx, `"slug" = ?`, slug)
}

func (r *Repository) oneCategory(ctx context.Context, condition string, param interface{}) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).Where(condition, param).Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

func (r *Repository) AddCategory(ctx context.Context, category *Category) (*Category, error) {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return nil, wrapUnique(err, "failed to insert category")
	}

	return category, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) (bool, error) {
	res, err := r.db.ModelContext(ctx, category).
		Column(
			Columns.Category.Title,
			Columns.Category.Description,
			Columns.Category.Slug,
			Columns.Category.IsPublished,
		).
		WherePK().
		Update()
	if err != nil {
		return false, wrapUnique(err, "failed to update category")
	}

	return res.RowsAffected() > 0, nil
}

// DeleteCategory removes the category; its posts stay with categoryId set to NULL.
func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Category{ID: categoryID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// Locations returns published locations ordered by name.
func (r *Repository) Locations(ctx context.Context) ([]Location, error) {
	var locations []Location
	err := r.db.ModelContext(ctx, &locations).
		Where(`"isPublished" = ?`, true).
		OrderExpr(`"name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	return locations, nil
}

func (r *Repository) LocationByID(ctx context.Context, locationID int) (*Location, error) {
	location := &Location{}
	err := r.db.ModelContext(ctx, location).Where(`"locationId" = ?`, locationID).Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return location, nil
}

func (r *Repository) AddLocation(ctx context.Context, location *Location) (*Location, error) {
	if _, err := r.db.ModelContext(ctx, location).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert location: %w", err)
	}

	return location, nil
}

func (r *Repository) DeleteLocation(ctx context.Context, locationID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Location{ID: locationID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete location: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) UserByID(ctx context.Context, userID int) (*User, error) {
	return r.oneUser(ctx, `"userId" = ?`, userID)
}

func (r *Repository) UserByUsername(ctx context.Context, username string) (*User, error) {
	return r.oneUser(ctx, `"username" = ?`, username)
}

func (r *Repository) oneUser(ctx context.Context, condition string, param interface{}) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).Where(condition, param).Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *Repository) AddUser(ctx context.Context, user *User) (*User, error) {
	if _, err := r.db.ModelContext(ctx, user).Insert(); err != nil {
		return nil, wrapUnique(err, "failed to insert user")
	}

	return user, nil
}

// UpdateUser stores profile columns. Password and staff flag are not touched.
func (r *Repository) UpdateUser(ctx context.Context, user *User) (bool, error) {
	res, err := r.db.ModelContext(ctx, user).
		Column(
			Columns.User.Username,
			Columns.User.Email,
			Columns.User.FirstName,
			Columns.User.LastName,
		).
		WherePK().
		Update()
	if err != nil {
		return false, wrapUnique(err, "failed to update user")
	}

	return res.RowsAffected() > 0, nil
}

// DeleteUser removes the user together with their posts and comments.
func (r *Repository) DeleteUser(ctx context.Context, userID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, &User{ID: userID}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func wrapUnique(err error, message string) error {
	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolationCode {
		return fmt.Errorf("%s: %w", message, ErrUniqueViolation)
	}

	return fmt.Errorf("%s: %w", message, err)
}

// UpdatePassword replaces the password hash of the user.
func (r *Repository) UpdatePassword(ctx context.Context, userID int, passwordHash string) (bool, error) {
	user := &User{ID: userID, PasswordHash: passwordHash}
	res, err := r.db.ModelContext(ctx, user).
		Column(Columns.User.PasswordHash).
		WherePK().
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

//go:build integration

package blog

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/daniilsolovey/blogicum/internal/db"
	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (*pg.Tx, context.Context, *Manager) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return tx, ctx, NewManager(db.New(tx), nil, DefaultPageSize)
}

func viewer(t *testing.T, ctx context.Context, manager *Manager, userID int) *User {
	t.Helper()
	user, err := manager.UserByID(ctx, userID)
	require.NoError(t, err)
	return user
}

func TestManager_Index_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	page, err := manager.Index(ctx, 1)
	require.NoError(t, err)

	ids := PostIDs(page.Posts)
	assert.ElementsMatch(t, []int{
		db.TestPostVisibleID, db.TestPostVisibleSecondID, db.TestPostNoCategoryID, db.TestPostReaderID,
	}, ids)

	for i, post := range page.Posts {
		assert.True(t, IsVisible(post, time.Now()), "post %d must be visible", post.ID)
		if i > 0 {
			assert.False(t, post.PublishedAt.After(page.Posts[i-1].PublishedAt))
		}
	}

	counts := map[int]int{}
	for _, post := range page.Posts {
		counts[post.ID] = post.CommentCount
	}
	assert.Equal(t, 2, counts[db.TestPostVisibleID])
	assert.Equal(t, 1, counts[db.TestPostVisibleSecondID])
	assert.Equal(t, 0, counts[db.TestPostNoCategoryID])

	count, err := manager.CountVisible(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(ids), count)
}

func TestManager_Profile_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)
	author := viewer(t, ctx, manager, db.TestAuthorID)
	reader := viewer(t, ctx, manager, db.TestReaderID)

	_, own, err := manager.Profile(ctx, author, author.Username, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, own.Total)

	_, public, err := manager.Profile(ctx, reader, author.Username, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{db.TestPostVisibleID, db.TestPostVisibleSecondID, db.TestPostNoCategoryID}, PostIDs(public.Posts))
}

// Publishing toggles a post in and out of the public listing.
func TestManager_PublishScenario_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)
	author := viewer(t, ctx, manager, db.TestAuthorID)
	reader := viewer(t, ctx, manager, db.TestReaderID)

	category, _, err := manager.CategoryPosts(ctx, "news", 1)
	require.NoError(t, err)

	input := PostInput{
		Title:       "Fresh news",
		Text:        "Something happened.",
		PublishedAt: time.Now().Add(-time.Hour),
		IsPublished: true,
		CategoryID:  &category.ID,
	}

	post, err := manager.CreatePost(ctx, author, input)
	require.NoError(t, err)

	page, err := manager.Index(ctx, 1)
	require.NoError(t, err)
	assert.Contains(t, PostIDs(page.Posts), post.ID)

	input.IsPublished = false
	_, err = manager.UpdatePost(ctx, author, post.ID, input)
	require.NoError(t, err)

	page, err = manager.Index(ctx, 1)
	require.NoError(t, err)
	assert.NotContains(t, PostIDs(page.Posts), post.ID)

	_, _, err = manager.Post(ctx, reader, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = manager.Post(ctx, author, post.ID)
	assert.NoError(t, err)
}

// Only the author can change a post.
func TestManager_EditScenario_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)
	author := viewer(t, ctx, manager, db.TestAuthorID)
	reader := viewer(t, ctx, manager, db.TestReaderID)

	post, err := manager.EditablePost(ctx, author, db.TestPostVisibleID)
	require.NoError(t, err)

	input := PostInput{
		Title:       post.Title,
		Text:        "Rewritten by someone else",
		PublishedAt: post.PublishedAt,
		IsPublished: post.IsPublished,
		CategoryID:  post.CategoryID,
		LocationID:  post.LocationID,
	}

	_, err = manager.UpdatePost(ctx, reader, post.ID, input)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = manager.DeletePost(ctx, reader, post.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	unchanged, _, err := manager.Post(ctx, reader, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Text, unchanged.Text)

	input.Text = "Rewritten by the author"
	updated, err := manager.UpdatePost(ctx, author, post.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Rewritten by the author", updated.Text)
	assert.Equal(t, author.ID, updated.AuthorID)
}

func TestManager_Comments_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)
	author := viewer(t, ctx, manager, db.TestAuthorID)
	reader := viewer(t, ctx, manager, db.TestReaderID)

	_, err := manager.AddComment(ctx, reader, db.TestPostUnpublishedID, CommentInput{Text: "hello"})
	assert.ErrorIs(t, err, ErrNotFound)

	comment, err := manager.AddComment(ctx, reader, db.TestPostNoCategoryID, CommentInput{Text: "hello"})
	require.NoError(t, err)

	_, err = manager.UpdateComment(ctx, author, db.TestPostNoCategoryID, comment.ID, CommentInput{Text: "hijack"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = manager.EditableComment(ctx, reader, db.TestPostVisibleID, comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	post, comments, err := manager.Post(ctx, reader, db.TestPostNoCategoryID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, len(comments), post.CommentCount)

	require.NoError(t, manager.DeleteComment(ctx, reader, db.TestPostNoCategoryID, comment.ID))
}

func TestManager_Accounts_Integration(t *testing.T) {
	_, ctx, manager := withTx(t)

	user, err := manager.Authenticate(ctx, "leo", db.TestPassword)
	require.NoError(t, err)
	assert.Equal(t, db.TestAuthorID, user.ID)

	created, err := manager.Register(ctx, RegistrationInput{Username: "newbie", Email: "n@example.com", Password1: "Another-123", Password2: "Another-123"})
	require.NoError(t, err)

	logged, err := manager.Authenticate(ctx, "newbie", "Another-123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)

	err = manager.ChangePassword(ctx, logged, PasswordChangeInput{OldPassword: "Another-123", NewPassword1: "Changed-456", NewPassword2: "Changed-456"})
	require.NoError(t, err)

	_, err = manager.Authenticate(ctx, "newbie", "Another-123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = manager.Authenticate(ctx, "newbie", "Changed-456")
	require.NoError(t, err)

	// the failed insert aborts the transaction, so it goes last
	_, err = manager.Register(ctx, RegistrationInput{Username: "leo", Password1: "Another-123", Password2: "Another-123"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
}

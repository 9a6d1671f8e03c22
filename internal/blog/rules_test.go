package blog

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

func TestIsVisible(t *testing.T) {
	published := &Category{ID: 1, IsPublished: true}
	hidden := &Category{ID: 2, IsPublished: false}

	tests := []struct {
		name     string
		post     Post
		expected bool
	}{
		{
			name:     "published post in published category",
			post:     Post{IsPublished: true, PublishedAt: testNow.Add(-time.Hour), Category: published},
			expected: true,
		},
		{
			name:     "publish time equal to now",
			post:     Post{IsPublished: true, PublishedAt: testNow, Category: published},
			expected: true,
		},
		{
			name:     "post without category",
			post:     Post{IsPublished: true, PublishedAt: testNow.Add(-time.Hour)},
			expected: true,
		},
		{
			name:     "unpublished post",
			post:     Post{IsPublished: false, PublishedAt: testNow.Add(-time.Hour), Category: published},
			expected: false,
		},
		{
			name:     "scheduled post",
			post:     Post{IsPublished: true, PublishedAt: testNow.Add(time.Minute), Category: published},
			expected: false,
		},
		{
			name:     "unpublished category",
			post:     Post{IsPublished: true, PublishedAt: testNow.Add(-time.Hour), Category: hidden},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsVisible(tt.post, testNow))
		})
	}
}

func TestCanView(t *testing.T) {
	hiddenPost := Post{AuthorID: 1, IsPublished: false, PublishedAt: testNow}

	assert.False(t, CanView(nil, hiddenPost, testNow))
	assert.False(t, CanView(&User{ID: 2}, hiddenPost, testNow))
	assert.True(t, CanView(&User{ID: 1}, hiddenPost, testNow))
	assert.True(t, CanView(&User{ID: 3, IsStaff: true}, hiddenPost, testNow))
}

func TestProfileSearch(t *testing.T) {
	t.Run("owner sees everything", func(t *testing.T) {
		search := ProfileSearch(&User{ID: 5}, 5, testNow)
		require.NotNil(t, search.AuthorID)
		assert.Equal(t, 5, *search.AuthorID)
		assert.Nil(t, search.VisibleAt)
	})

	t.Run("others see visible posts", func(t *testing.T) {
		search := ProfileSearch(&User{ID: 6}, 5, testNow)
		require.NotNil(t, search.VisibleAt)
		assert.Equal(t, testNow, *search.VisibleAt)
	})

	t.Run("anonymous sees visible posts", func(t *testing.T) {
		search := ProfileSearch(nil, 5, testNow)
		require.NotNil(t, search.VisibleAt)
	})
}

func TestPermissions(t *testing.T) {
	assert.True(t, CanModify(&User{ID: 1}, 1))
	assert.False(t, CanModify(&User{ID: 2}, 1))
	assert.False(t, CanModify(&User{ID: 3, IsStaff: true}, 1))
	assert.False(t, CanModify(nil, 1))

	assert.True(t, CanEditProfile(&User{Username: "leo"}, "leo"))
	assert.False(t, CanEditProfile(&User{Username: "anna"}, "leo"))
	assert.False(t, CanEditProfile(nil, "leo"))
}

func TestParsePageNumber(t *testing.T) {
	tests := map[string]int{
		"":     1,
		"1":    1,
		"3":    3,
		" 2 ":  2,
		"0":    1,
		"-4":   1,
		"abc":  1,
		"last": math.MaxInt32,
	}

	for in, expected := range tests {
		assert.Equal(t, expected, ParsePageNumber(in), "input %q", in)
	}
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name             string
		number, total    int
		expectedNumber   int
		expectedNumPages int
	}{
		{name: "first page", number: 1, total: 25, expectedNumber: 1, expectedNumPages: 3},
		{name: "exact multiple", number: 2, total: 20, expectedNumber: 2, expectedNumPages: 2},
		{name: "past the end", number: 9, total: 25, expectedNumber: 3, expectedNumPages: 3},
		{name: "below one", number: 0, total: 25, expectedNumber: 1, expectedNumPages: 3},
		{name: "empty listing", number: 4, total: 0, expectedNumber: 1, expectedNumPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.number, 10, tt.total)
			assert.Equal(t, tt.expectedNumber, page.Number)
			assert.Equal(t, tt.expectedNumPages, page.NumPages)
			assert.Equal(t, tt.total, page.Total)
		})
	}

	page := NewPage(2, 10, 25)
	assert.True(t, page.HasPrevious())
	assert.True(t, page.HasNext())
	assert.Equal(t, 1, page.PreviousNumber())
	assert.Equal(t, 3, page.NextNumber())

	assert.Equal(t, DefaultPageSize, NewPage(1, 0, 5).Size)
}

func TestAttachCommentCounts(t *testing.T) {
	posts := []Post{
		{ID: 1, PublishedAt: testNow.Add(-2 * time.Hour)},
		{ID: 2, PublishedAt: testNow},
		{ID: 3, PublishedAt: testNow.Add(-time.Hour)},
	}

	result := AttachCommentCounts(posts, map[int]int{1: 4, 2: 1})

	require.Len(t, result, 3)
	assert.Equal(t, []int{2, 3, 1}, PostIDs(result))
	assert.Equal(t, 1, result[0].CommentCount)
	assert.Equal(t, 0, result[1].CommentCount)
	assert.Equal(t, 4, result[2].CommentCount)
}

func TestPostInput_Validate(t *testing.T) {
	category := 1
	valid := PostInput{Title: "Title", Text: "Text", PublishedAt: testNow, CategoryID: &category}

	assert.Empty(t, valid.Validate().Fields)

	in := PostInput{Title: "   ", Text: ""}
	in.normalize()
	verr := in.Validate()
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "text")
	assert.Contains(t, verr.Fields, "pub_date")
	assert.Contains(t, verr.Fields, "category")

	long := valid
	long.Title = strings.Repeat("я", maxTitleLength+1)
	assert.Contains(t, long.Validate().Fields, "title")
}

func TestRegistrationInput_Validate(t *testing.T) {
	tests := []struct {
		name          string
		input         RegistrationInput
		invalidFields []string
	}{
		{
			name:  "valid",
			input: RegistrationInput{Username: "new.user", Email: "new@example.com", Password1: "Secret-123", Password2: "Secret-123"},
		},
		{
			name:          "bad username",
			input:         RegistrationInput{Username: "with space", Password1: "Secret-123", Password2: "Secret-123"},
			invalidFields: []string{"username"},
		},
		{
			name:          "bad email",
			input:         RegistrationInput{Username: "user", Email: "nope", Password1: "Secret-123", Password2: "Secret-123"},
			invalidFields: []string{"email"},
		},
		{
			name:          "short password",
			input:         RegistrationInput{Username: "user", Password1: "abc", Password2: "abc"},
			invalidFields: []string{"password1"},
		},
		{
			name:          "numeric password",
			input:         RegistrationInput{Username: "user", Password1: "1234567890", Password2: "1234567890"},
			invalidFields: []string{"password1"},
		},
		{
			name:          "passwords differ",
			input:         RegistrationInput{Username: "user", Password1: "Secret-123", Password2: "Secret-124"},
			invalidFields: []string{"password2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := tt.input.Validate()
			assert.Len(t, verr.Fields, len(tt.invalidFields))
			for _, field := range tt.invalidFields {
				assert.Contains(t, verr.Fields, field)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	assert.NoError(t, verr.orNil())

	verr.add("title", "first")
	verr.add("title", "second")
	verr.add("text", "required")

	assert.Error(t, verr.orNil())
	assert.Equal(t, "first", verr.Fields["title"])
	assert.Equal(t, "validation failed: text: required; title: first", verr.Error())
}

func TestUserFullName(t *testing.T) {
	assert.Equal(t, "Leo Tolstoy", User{Username: "leo", FirstName: "Leo", LastName: "Tolstoy"}.FullName())
	assert.Equal(t, "Leo", User{Username: "leo", FirstName: "Leo"}.FullName())
	assert.Equal(t, "leo", User{Username: "leo"}.FullName())
}

func TestPassword(t *testing.T) {
	hash, err := hashPassword("Secret-123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret-123", hash)

	ok, err := checkPassword(hash, "Secret-123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = checkPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

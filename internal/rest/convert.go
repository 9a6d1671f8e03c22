package rest

import (
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/daniilsolovey/blogicum/internal/blog"
)

func parseID(s string) *int {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id < 1 {
		return nil
	}
	return &id
}

func checked(s string) bool {
	switch strings.ToLower(s) {
	case "on", "true", "1":
		return true
	}
	return false
}

// input converts the submitted form. Unparsable values become empty and are
// reported by the form validation.
func (f postForm) input() blog.PostInput {
	in := blog.PostInput{
		Title:       f.Title,
		Text:        f.Text,
		IsPublished: checked(f.IsPublished),
		CategoryID:  parseID(f.Category),
		LocationID:  parseID(f.Location),
		ClearImage:  checked(f.ClearImage),
	}

	if t, err := time.ParseInLocation(dateTimeLayout, strings.TrimSpace(f.PubDate), time.Local); err == nil {
		in.PublishedAt = t
	}

	return in
}

func (f postForm) values() map[string]string {
	values := map[string]string{
		"title":    f.Title,
		"text":     f.Text,
		"pub_date": f.PubDate,
		"location": f.Location,
		"category": f.Category,
	}
	if checked(f.IsPublished) {
		values["is_published"] = "on"
	}
	return values
}

func newPostValues(p *blog.Post) map[string]string {
	values := map[string]string{
		"title":    p.Title,
		"text":     p.Text,
		"pub_date": p.PublishedAt.Local().Format(dateTimeLayout),
		"image":    p.Image,
	}
	if p.IsPublished {
		values["is_published"] = "on"
	}
	if p.CategoryID != nil {
		values["category"] = strconv.Itoa(*p.CategoryID)
	}
	if p.LocationID != nil {
		values["location"] = strconv.Itoa(*p.LocationID)
	}
	return values
}

func (f registrationForm) input() blog.RegistrationInput {
	return blog.RegistrationInput{
		Username:  f.Username,
		Email:     f.Email,
		Password1: f.Password1,
		Password2: f.Password2,
	}
}

func (f passwordChangeForm) input() blog.PasswordChangeInput {
	return blog.PasswordChangeInput{
		OldPassword:  f.OldPassword,
		NewPassword1: f.NewPassword1,
		NewPassword2: f.NewPassword2,
	}
}

func (f profileForm) input() blog.ProfileInput {
	return blog.ProfileInput{
		Username:  f.Username,
		Email:     f.Email,
		FirstName: f.FirstName,
		LastName:  f.LastName,
	}
}

func (f profileForm) values() map[string]string {
	return map[string]string{
		"username":   f.Username,
		"email":      f.Email,
		"first_name": f.FirstName,
		"last_name":  f.LastName,
	}
}

func newProfileValues(u *blog.User) map[string]string {
	return map[string]string{
		"username":   u.Username,
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
	}
}

// safeNext keeps only local redirect targets. Whitespace, control characters
// and backslashes are rejected: browsers drop or rewrite them.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}

	if strings.IndexFunc(next, func(r rune) bool {
		return r == '\\' || unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return ""
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return ""
	}

	return next
}

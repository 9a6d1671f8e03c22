package blog

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLength    = 256
	maxUsernameLength = 150
	minPasswordLength = 8

	invalidImageMessage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
)

var (
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
	digitsRe   = regexp.MustCompile(`^[0-9]+$`)
)

func (in *PostInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Text = strings.TrimSpace(in.Text)
}

// Validate checks fields that do not need storage lookups.
func (in PostInput) Validate() *ValidationError {
	verr := &ValidationError{}

	switch {
	case in.Title == "":
		verr.add("title", "This field is required.")
	case utf8.RuneCountInString(in.Title) > maxTitleLength:
		verr.add("title", "Ensure this value has at most 256 characters.")
	}

	if in.Text == "" {
		verr.add("text", "This field is required.")
	}

	if in.PublishedAt.IsZero() {
		verr.add("pub_date", "Enter a valid date/time.")
	}

	if in.CategoryID == nil {
		verr.add("category", "This field is required.")
	}

	return verr
}

func (in *CommentInput) normalize() {
	in.Text = strings.TrimSpace(in.Text)
}

func (in CommentInput) Validate() *ValidationError {
	verr := &ValidationError{}
	if in.Text == "" {
		verr.add("text", "This field is required.")
	}
	return verr
}

func validateUsername(verr *ValidationError, username string) {
	switch {
	case username == "":
		verr.add("username", "This field is required.")
	case utf8.RuneCountInString(username) > maxUsernameLength:
		verr.add("username", "Ensure this value has at most 150 characters.")
	case !usernameRe.MatchString(username):
		verr.add("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}
}

func validateEmail(verr *ValidationError, email string) {
	if email == "" {
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		verr.add("email", "Enter a valid email address.")
	}
}

func (in *RegistrationInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
}

func (in RegistrationInput) Validate() *ValidationError {
	verr := &ValidationError{}

	validateUsername(verr, in.Username)
	validateEmail(verr, in.Email)

	validateNewPassword(verr, "password1", "password2", in.Password1, in.Password2)

	return verr
}

func validateNewPassword(verr *ValidationError, field, confirmField, password, confirm string) {
	switch {
	case password == "":
		verr.add(field, "This field is required.")
	case utf8.RuneCountInString(password) < minPasswordLength:
		verr.add(field, "This password is too short. It must contain at least 8 characters.")
	case digitsRe.MatchString(password):
		verr.add(field, "This password is entirely numeric.")
	}

	if password != confirm {
		verr.add(confirmField, "The two password fields didn't match.")
	}
}

func (in PasswordChangeInput) Validate() *ValidationError {
	verr := &ValidationError{}

	if in.OldPassword == "" {
		verr.add("old_password", "This field is required.")
	}
	validateNewPassword(verr, "new_password1", "new_password2", in.NewPassword1, in.NewPassword2)

	return verr
}

func (in *ProfileInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
}

func (in ProfileInput) Validate() *ValidationError {
	verr := &ValidationError{}

	validateUsername(verr, in.Username)
	validateEmail(verr, in.Email)

	if utf8.RuneCountInString(in.FirstName) > maxUsernameLength {
		verr.add("first_name", "Ensure this value has at most 150 characters.")
	}
	if utf8.RuneCountInString(in.LastName) > maxUsernameLength {
		verr.add("last_name", "Ensure this value has at most 150 characters.")
	}

	return verr
}

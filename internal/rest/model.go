package rest

import "github.com/daniilsolovey/blogicum/internal/blog"

// viewData is passed to every html template.
type viewData struct {
	Title  string
	Path   string
	Viewer *blog.User

	Page       *blog.Page
	Posts      []blog.Post
	Post       *blog.Post
	Comments   []blog.Comment
	Comment    *blog.Comment
	Category   *blog.Category
	Profile    *blog.User
	Categories []blog.Category
	Locations  []blog.Location

	// Form holds submitted values to redisplay, Errors the per-field messages.
	Form   map[string]string
	Errors map[string]string
	Action string
	Next   string
}

type pageRequest struct {
	Page string `query:"page"`
}

type postForm struct {
	Title       string `form:"title"`
	Text        string `form:"text"`
	PubDate     string `form:"pub_date"`
	Location    string `form:"location"`
	Category    string `form:"category"`
	IsPublished string `form:"is_published"`
	ClearImage  string `form:"image-clear"`
}

type commentForm struct {
	Text string `form:"text"`
}

type registrationForm struct {
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password1 string `form:"password1"`
	Password2 string `form:"password2"`
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

type passwordChangeForm struct {
	OldPassword  string `form:"old_password"`
	NewPassword1 string `form:"new_password1"`
	NewPassword2 string `form:"new_password2"`
}

type profileForm struct {
	Username  string `form:"username"`
	Email     string `form:"email"`
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
}

type healthResponse struct {
	Status string `json:"status"`
}

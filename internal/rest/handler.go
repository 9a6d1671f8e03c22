package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/labstack/echo/v4"
)

// DenyPolicy selects the response to an authenticated user acting on
// somebody else's content.
type DenyPolicy string

const (
	DenyRedirect DenyPolicy = "redirect"
	DenyForbid   DenyPolicy = "forbid"
)

// Service is the blog logic used by the handlers. *blog.Manager implements it.
type Service interface {
	Index(ctx context.Context, page int) (*blog.PostPage, error)
	CategoryPosts(ctx context.Context, slug string, page int) (*blog.Category, *blog.PostPage, error)
	Profile(ctx context.Context, viewer *blog.User, username string, page int) (*blog.User, *blog.PostPage, error)

	Post(ctx context.Context, viewer *blog.User, postID int) (*blog.Post, []blog.Comment, error)
	EditablePost(ctx context.Context, viewer *blog.User, postID int) (*blog.Post, error)
	CreatePost(ctx context.Context, viewer *blog.User, in blog.PostInput) (*blog.Post, error)
	UpdatePost(ctx context.Context, viewer *blog.User, postID int, in blog.PostInput) (*blog.Post, error)
	DeletePost(ctx context.Context, viewer *blog.User, postID int) error

	AddComment(ctx context.Context, viewer *blog.User, postID int, in blog.CommentInput) (*blog.Comment, error)
	EditableComment(ctx context.Context, viewer *blog.User, postID, commentID int) (*blog.Comment, error)
	UpdateComment(ctx context.Context, viewer *blog.User, postID, commentID int, in blog.CommentInput) (*blog.Comment, error)
	DeleteComment(ctx context.Context, viewer *blog.User, postID, commentID int) error

	Categories(ctx context.Context) ([]blog.Category, error)
	Locations(ctx context.Context) ([]blog.Location, error)

	Register(ctx context.Context, in blog.RegistrationInput) (*blog.User, error)
	Authenticate(ctx context.Context, username, password string) (*blog.User, error)
	UserByID(ctx context.Context, userID int) (*blog.User, error)
	EditableProfile(ctx context.Context, viewer *blog.User, username string) (*blog.User, error)
	UpdateProfile(ctx context.Context, viewer *blog.User, username string, in blog.ProfileInput) (*blog.User, error)
	ChangePassword(ctx context.Context, viewer *blog.User, in blog.PasswordChangeInput) error
}

type Config struct {
	DenyPolicy DenyPolicy
	// MediaDir is served under /media/ when not empty.
	MediaDir string
}

type Handler struct {
	svc      Service
	sessions *Sessions
	renderer *Renderer
	cfg      Config
	log      *slog.Logger
	now      func() time.Time
}

func NewHandler(svc Service, sessions *Sessions, cfg Config, log *slog.Logger) (*Handler, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	if cfg.DenyPolicy == "" {
		cfg.DenyPolicy = DenyRedirect
	}

	return &Handler{
		svc:      svc,
		sessions: sessions,
		renderer: renderer,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}, nil
}

func (h *Handler) render(c echo.Context, code int, name string, data viewData) error {
	data.Viewer = viewerFrom(c)
	data.Path = c.Request().URL.Path
	return c.Render(code, name, data)
}

// handleError maps blog errors to http errors rendered by httpErrorHandler.
func (h *Handler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
	case errors.Is(err, blog.ErrPermissionDenied):
		return echo.NewHTTPError(http.StatusForbidden).SetInternal(err)
	}

	h.log.Error("handleError", "error", err, "method", c.Request().Method, "path", c.Request().URL.Path)
	return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
}

// deny applies the configured policy; redirectTo is the resource page.
func (h *Handler) deny(c echo.Context, redirectTo string) error {
	if h.cfg.DenyPolicy == DenyForbid {
		return echo.NewHTTPError(http.StatusForbidden)
	}
	return c.Redirect(http.StatusSeeOther, redirectTo)
}

func (h *Handler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	} else if errors.Is(err, blog.ErrNotFound) {
		code = http.StatusNotFound
	}

	if code >= http.StatusInternalServerError && he == nil {
		h.log.Error("unhandled error", "error", err, "path", c.Request().URL.Path)
	}

	var page string
	switch {
	case code == http.StatusForbidden:
		page = "403.html"
	case code == http.StatusNotFound:
		page = "404.html"
	case code >= http.StatusInternalServerError:
		page = "500.html"
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else if page == "" {
		err = c.String(code, http.StatusText(code))
	} else {
		err = h.render(c, code, page, viewData{Title: http.StatusText(code)})
	}

	if err != nil {
		h.log.Error("failed to render error page", "error", err, "code", code)
	}
}

func validationErrors(err error) (map[string]string, bool) {
	var verr *blog.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields, true
	}
	return nil, false
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound)
	}
	return id, nil
}

func postURL(postID int) string {
	return fmt.Sprintf("/posts/%d/", postID)
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

package rest

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/labstack/echo/v4"
)

const viewerKey = "viewer"

func viewerFrom(c echo.Context) *blog.User {
	viewer, _ := c.Get(viewerKey).(*blog.User)
	return viewer
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}

// sessionMiddleware loads the viewer from the session cookie. A broken or
// stale session makes the request anonymous.
func (h *Handler) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		userID, err := h.sessions.Parse(cookie.Value)
		if err != nil {
			c.SetCookie(h.sessions.ExpiredCookie())
			return next(c)
		}

		viewer, err := h.svc.UserByID(c.Request().Context(), userID)
		switch {
		case errors.Is(err, blog.ErrNotFound):
			c.SetCookie(h.sessions.ExpiredCookie())
		case err != nil:
			h.log.Error("failed to load session user", "error", err, "userId", userID)
		default:
			c.Set(viewerKey, viewer)
		}

		return next(c)
	}
}

// requireAuth sends anonymous visitors to the login page.
func (h *Handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if viewerFrom(c) == nil {
			return c.Redirect(http.StatusSeeOther, loginPath+"?next="+url.QueryEscape(c.Request().URL.RequestURI()))
		}
		return next(c)
	}
}

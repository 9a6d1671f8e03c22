package rest

import (
	"errors"
	"net/http"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/labstack/echo/v4"
)

const invalidLoginMessage = "Please enter a correct username and password."

// Profile handles GET /profile/:username/
func (h *Handler) Profile(c echo.Context) error {
	number, err := h.pageNumber(c)
	if err != nil {
		return err
	}

	profile, page, err := h.svc.Profile(c.Request().Context(), viewerFrom(c), c.Param("username"), number)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "profile.html", viewData{
		Title:   profile.FullName(),
		Profile: profile,
		Page:    &page.Page,
		Posts:   page.Posts,
	})
}

func (h *Handler) renderProfileForm(c echo.Context, form, errs map[string]string) error {
	return h.render(c, http.StatusOK, "profile_form.html", viewData{
		Title:  "Edit profile",
		Form:   form,
		Errors: errs,
		Action: c.Request().URL.Path,
	})
}

// EditProfileForm handles GET /profile/edit/:username/
func (h *Handler) EditProfileForm(c echo.Context) error {
	username := c.Param("username")

	profile, err := h.svc.EditableProfile(c.Request().Context(), viewerFrom(c), username)
	if errors.Is(err, blog.ErrPermissionDenied) {
		return h.deny(c, profileURL(username))
	} else if err != nil {
		return h.handleError(c, err)
	}

	return h.renderProfileForm(c, newProfileValues(profile), nil)
}

// EditProfile handles POST /profile/edit/:username/
func (h *Handler) EditProfile(c echo.Context) error {
	username := c.Param("username")

	var form profileForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), viewerFrom(c), username, form.input())
	if errs, ok := validationErrors(err); ok {
		return h.renderProfileForm(c, form.values(), errs)
	} else if errors.Is(err, blog.ErrPermissionDenied) {
		return h.deny(c, profileURL(username))
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, profileURL(user.Username))
}

// PasswordChangeForm handles GET /auth/password_change/
func (h *Handler) PasswordChangeForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "password_change.html", viewData{Title: "Password change"})
}

// PasswordChange handles POST /auth/password_change/
func (h *Handler) PasswordChange(c echo.Context) error {
	var form passwordChangeForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}

	err := h.svc.ChangePassword(c.Request().Context(), viewerFrom(c), form.input())
	if errs, ok := validationErrors(err); ok {
		return h.render(c, http.StatusOK, "password_change.html", viewData{
			Title:  "Password change",
			Errors: errs,
		})
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, passwordChangeDonePath)
}

// PasswordChangeDone handles GET /auth/password_change/done/
func (h *Handler) PasswordChangeDone(c echo.Context) error {
	return h.render(c, http.StatusOK, "password_change_done.html", viewData{Title: "Password changed"})
}

// RegistrationForm handles GET /auth/registration/
func (h *Handler) RegistrationForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "registration.html", viewData{Title: "Registration"})
}

// Register handles POST /auth/registration/
func (h *Handler) Register(c echo.Context) error {
	var form registrationForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}

	_, err := h.svc.Register(c.Request().Context(), form.input())
	if errs, ok := validationErrors(err); ok {
		return h.render(c, http.StatusOK, "registration.html", viewData{
			Title:  "Registration",
			Form:   map[string]string{"username": form.Username, "email": form.Email},
			Errors: errs,
		})
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// LoginForm handles GET /auth/login/
func (h *Handler) LoginForm(c echo.Context) error {
	return h.render(c, http.StatusOK, "login.html", viewData{
		Title: "Login",
		Next:  safeNext(c.QueryParam("next")),
	})
}

// Login handles POST /auth/login/
func (h *Handler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}

	next := safeNext(form.Next)

	user, err := h.svc.Authenticate(c.Request().Context(), form.Username, form.Password)
	if errors.Is(err, blog.ErrInvalidCredentials) {
		return h.render(c, http.StatusOK, "login.html", viewData{
			Title:  "Login",
			Form:   map[string]string{"username": form.Username},
			Errors: map[string]string{"__all__": invalidLoginMessage},
			Next:   next,
		})
	} else if err != nil {
		return h.handleError(c, err)
	}

	token, err := h.sessions.Issue(user.ID, h.now())
	if err != nil {
		return h.handleError(c, err)
	}
	c.SetCookie(h.sessions.Cookie(token))

	if next == "" {
		next = "/"
	}

	return c.Redirect(http.StatusSeeOther, next)
}

// Logout handles POST /auth/logout/
func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.ExpiredCookie())
	return c.Redirect(http.StatusSeeOther, "/")
}

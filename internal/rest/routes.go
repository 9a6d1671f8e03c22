package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	loginPath              = "/auth/login/"
	passwordChangePath     = "/auth/password_change/"
	passwordChangeDonePath = "/auth/password_change/done/"
	healthPath             = "/health"
	swaggerPath            = "/swagger/doc.json"
	mediaPrefix            = "/media"

	bodyLimit = "10M"
)

// RegisterRoutes builds the echo instance serving the site
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = h.renderer
	e.HTTPErrorHandler = h.httpErrorHandler

	e.Use(h.loggingMiddleware)
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(h.sessionMiddleware)

	h.registerBlogRoutes(e)
	h.registerUserRoutes(e)
	h.registerServiceRoutes(e)

	return e
}

func (h *Handler) registerBlogRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/category/:slug/", h.CategoryPosts)

	e.GET("/posts/create/", h.CreatePostForm, h.requireAuth)
	e.POST("/posts/create/", h.CreatePost, h.requireAuth)
	e.GET("/posts/:id/", h.PostDetail)
	e.GET("/posts/:id/edit/", h.EditPostForm, h.requireAuth)
	e.POST("/posts/:id/edit/", h.EditPost, h.requireAuth)
	e.GET("/posts/:id/delete/", h.DeletePostForm, h.requireAuth)
	e.POST("/posts/:id/delete/", h.DeletePost, h.requireAuth)

	e.POST("/posts/:id/comment/", h.AddComment, h.requireAuth)
	e.GET("/posts/:id/edit_comment/:comment_id", h.EditCommentForm, h.requireAuth)
	e.POST("/posts/:id/edit_comment/:comment_id", h.EditComment, h.requireAuth)
	e.GET("/posts/:id/delete_comment/:comment_id", h.DeleteCommentForm, h.requireAuth)
	e.POST("/posts/:id/delete_comment/:comment_id", h.DeleteComment, h.requireAuth)

	e.GET("/pages/about/", h.staticPage("about.html", "About"))
	e.GET("/pages/rules/", h.staticPage("rules.html", "Rules"))
}

func (h *Handler) registerUserRoutes(e *echo.Echo) {
	e.GET("/auth/registration/", h.RegistrationForm)
	e.POST("/auth/registration/", h.Register)
	e.GET(loginPath, h.LoginForm)
	e.POST(loginPath, h.Login)
	e.POST("/auth/logout/", h.Logout)
	e.GET(passwordChangePath, h.PasswordChangeForm, h.requireAuth)
	e.POST(passwordChangePath, h.PasswordChange, h.requireAuth)
	e.GET(passwordChangeDonePath, h.PasswordChangeDone, h.requireAuth)

	e.GET("/profile/:username/", h.Profile)
	e.GET("/profile/edit/:username/", h.EditProfileForm, h.requireAuth)
	e.POST("/profile/edit/:username/", h.EditProfile, h.requireAuth)
}

func (h *Handler) registerServiceRoutes(e *echo.Echo) {
	e.GET(healthPath, h.Health)
	e.GET(swaggerPath, h.SwaggerDoc)

	if h.cfg.MediaDir != "" {
		e.Static(mediaPrefix, h.cfg.MediaDir)
	}
}

func (h *Handler) staticPage(name, title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.render(c, http.StatusOK, name, viewData{Title: title})
	}
}

// Health handles GET /health
// @Summary Health check
// @Tags service
// @Produce json
// @Success 200 {object} rest.healthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

// SwaggerDoc serves the registered swagger document.
func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

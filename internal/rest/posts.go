package rest

import (
	"errors"
	"net/http"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/labstack/echo/v4"
)

func (h *Handler) pageNumber(c echo.Context) (int, error) {
	var req pageRequest
	if err := c.Bind(&req); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid request parameters")
	}
	return blog.ParsePageNumber(req.Page), nil
}

// Index handles GET /
func (h *Handler) Index(c echo.Context) error {
	number, err := h.pageNumber(c)
	if err != nil {
		return err
	}

	page, err := h.svc.Index(c.Request().Context(), number)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "index.html", viewData{
		Title: "Blogicum",
		Page:  &page.Page,
		Posts: page.Posts,
	})
}

// CategoryPosts handles GET /category/:slug/
func (h *Handler) CategoryPosts(c echo.Context) error {
	number, err := h.pageNumber(c)
	if err != nil {
		return err
	}

	category, page, err := h.svc.CategoryPosts(c.Request().Context(), c.Param("slug"), number)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "category.html", viewData{
		Title:    category.Title,
		Category: category,
		Page:     &page.Page,
		Posts:    page.Posts,
	})
}

// PostDetail handles GET /posts/:id/
func (h *Handler) PostDetail(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return h.renderPost(c, postID, nil, nil)
}

func (h *Handler) renderPost(c echo.Context, postID int, form, errs map[string]string) error {
	post, comments, err := h.svc.Post(c.Request().Context(), viewerFrom(c), postID)
	if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "post_detail.html", viewData{
		Title:    post.Title,
		Post:     post,
		Comments: comments,
		Form:     form,
		Errors:   errs,
	})
}

func (h *Handler) renderPostForm(c echo.Context, action string, post *blog.Post, form, errs map[string]string) error {
	ctx := c.Request().Context()

	categories, err := h.svc.Categories(ctx)
	if err != nil {
		return h.handleError(c, err)
	}

	locations, err := h.svc.Locations(ctx)
	if err != nil {
		return h.handleError(c, err)
	}

	title := "New post"
	if post != nil {
		title = "Edit post"
	}

	return h.render(c, http.StatusOK, "post_form.html", viewData{
		Title:      title,
		Post:       post,
		Categories: categories,
		Locations:  locations,
		Form:       form,
		Errors:     errs,
		Action:     action,
	})
}

// formUpload returns the uploaded image, if any. The caller closes it.
func formUpload(c echo.Context) (*blog.Upload, func(), error) {
	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, func() {}, nil
	} else if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid upload").SetInternal(err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid upload").SetInternal(err)
	}

	upload := &blog.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Body:        file,
	}

	return upload, func() { _ = file.Close() }, nil
}

func (h *Handler) bindPost(c echo.Context) (postForm, blog.PostInput, func(), error) {
	var form postForm
	if err := c.Bind(&form); err != nil {
		return form, blog.PostInput{}, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}

	upload, closeUpload, err := formUpload(c)
	if err != nil {
		return form, blog.PostInput{}, nil, err
	}

	in := form.input()
	in.Image = upload
	return form, in, closeUpload, nil
}

// CreatePostForm handles GET /posts/create/
func (h *Handler) CreatePostForm(c echo.Context) error {
	form := map[string]string{
		"pub_date":     h.now().Format(dateTimeLayout),
		"is_published": "on",
	}
	return h.renderPostForm(c, "/posts/create/", nil, form, nil)
}

// CreatePost handles POST /posts/create/
func (h *Handler) CreatePost(c echo.Context) error {
	form, in, closeUpload, err := h.bindPost(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	viewer := viewerFrom(c)
	_, err = h.svc.CreatePost(c.Request().Context(), viewer, in)
	if errs, ok := validationErrors(err); ok {
		return h.renderPostForm(c, "/posts/create/", nil, form.values(), errs)
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, profileURL(viewer.Username))
}

// EditPostForm handles GET /posts/:id/edit/
func (h *Handler) EditPostForm(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.svc.EditablePost(c.Request().Context(), viewerFrom(c), postID)
	if errors.Is(err, blog.ErrPermissionDenied) {
		return h.deny(c, postURL(postID))
	} else if err != nil {
		return h.handleError(c, err)
	}

	return h.renderPostForm(c, c.Request().URL.Path, post, newPostValues(post), nil)
}

// EditPost handles POST /posts/:id/edit/
func (h *Handler) EditPost(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	form, in, closeUpload, err := h.bindPost(c)
	if err != nil {
		return err
	}
	defer closeUpload()

	ctx := c.Request().Context()
	_, err = h.svc.UpdatePost(ctx, viewerFrom(c), postID, in)
	if errs, ok := validationErrors(err); ok {
		post, perr := h.svc.EditablePost(ctx, viewerFrom(c), postID)
		if perr != nil {
			return h.handleError(c, perr)
		}
		values := form.values()
		values["image"] = post.Image
		return h.renderPostForm(c, c.Request().URL.Path, post, values, errs)
	} else if errors.Is(err, blog.ErrPermissionDenied) {
		return h.deny(c, postURL(postID))
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, postURL(postID))
}

// DeletePostForm handles GET /posts/:id/delete/
func (h *Handler) DeletePostForm(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.svc.EditablePost(c.Request().Context(), viewerFrom(c), postID)
	if errors.Is(err, blog.ErrPermissionDenied) {
		return h.deny(c, postURL(postID))
	} else if err != nil {
		return h.handleError(c, err)
	}

	return h.render(c, http.StatusOK, "post_delete.html", viewData{
		Title:  "Delete post",
		Post:   post,
		Action: c.Request().URL.Path,
	})
}

// DeletePost handles POST /posts/:id/delete/
func (h *Handler) DeletePost(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	viewer := viewerFrom(c)
	err = h.svc.DeletePost(c.Request().Context(), viewer, postID)
	if errors.Is(err, blog.ErrPermissionDenied) {
		return h.deny(c, postURL(postID))
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, profileURL(viewer.Username))
}

package rest

import (
	"errors"
	"net/http"

	"github.com/daniilsolovey/blogicum/internal/blog"
	"github.com/labstack/echo/v4"
)

func commentIDs(c echo.Context) (int, int, error) {
	postID, err := pathID(c, "id")
	if err != nil {
		return 0, 0, err
	}

	commentID, err := pathID(c, "comment_id")
	if err != nil {
		return 0, 0, err
	}

	return postID, commentID, nil
}

func bindComment(c echo.Context) (blog.CommentInput, error) {
	var form commentForm
	if err := c.Bind(&form); err != nil {
		return blog.CommentInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	return blog.CommentInput{Text: form.Text}, nil
}

// AddComment handles POST /posts/:id/comment/
func (h *Handler) AddComment(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	in, err := bindComment(c)
	if err != nil {
		return err
	}

	_, err = h.svc.AddComment(c.Request().Context(), viewerFrom(c), postID, in)
	if errs, ok := validationErrors(err); ok {
		return h.renderPost(c, postID, map[string]string{"text": in.Text}, errs)
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, postURL(postID))
}

func (h *Handler) renderComment(c echo.Context, comment *blog.Comment, deleting bool, form, errs map[string]string) error {
	title := "Edit comment"
	if deleting {
		title = "Delete comment"
	}

	return h.render(c, http.StatusOK, "comment.html", viewData{
		Title:   title,
		Comment: comment,
		Form:    form,
		Errors:  errs,
		Action:  c.Request().URL.Path,
	})
}

// EditCommentForm handles GET /posts/:id/edit_comment/:comment_id
func (h *Handler) EditCommentForm(c echo.Context) error {
	return h.commentForm(c, false)
}

// DeleteCommentForm handles GET /posts/:id/delete_comment/:comment_id
func (h *Handler) DeleteCommentForm(c echo.Context) error {
	return h.commentForm(c, true)
}

func (h *Handler) commentForm(c echo.Context, deleting bool) error {
	postID, commentID, err := commentIDs(c)
	if err != nil {
		return err
	}

	comment, err := h.svc.EditableComment(c.Request().Context(), viewerFrom(c), postID, commentID)
	if errors.Is(err, blog.ErrPermissionDenied) {
		return h.deny(c, postURL(postID))
	} else if err != nil {
		return h.handleError(c, err)
	}

	var form map[string]string
	if !deleting {
		form = map[string]string{"text": comment.Text}
	}

	return h.renderComment(c, comment, deleting, form, nil)
}

// EditComment handles POST /posts/:id/edit_comment/:comment_id
func (h *Handler) EditComment(c echo.Context) error {
	postID, commentID, err := commentIDs(c)
	if err != nil {
		return err
	}

	in, err := bindComment(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	_, err = h.svc.UpdateComment(ctx, viewerFrom(c), postID, commentID, in)
	if errs, ok := validationErrors(err); ok {
		comment, cerr := h.svc.EditableComment(ctx, viewerFrom(c), postID, commentID)
		if cerr != nil {
			return h.handleError(c, cerr)
		}
		return h.renderComment(c, comment, false, map[string]string{"text": in.Text}, errs)
	} else if errors.Is(err, blog.ErrPermissionDenied) {
		return h.deny(c, postURL(postID))
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, postURL(postID))
}

// DeleteComment handles POST /posts/:id/delete_comment/:comment_id
func (h *Handler) DeleteComment(c echo.Context) error {
	postID, commentID, err := commentIDs(c)
	if err != nil {
		return err
	}

	err = h.svc.DeleteComment(c.Request().Context(), viewerFrom(c), postID, commentID)
	if errors.Is(err, blog.ErrPermissionDenied) {
		return h.deny(c, postURL(postID))
	} else if err != nil {
		return h.handleError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, postURL(postID))
}

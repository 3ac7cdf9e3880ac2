package comment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/eunji-woo/my-website-go/internal/middleware"
	"github.com/eunji-woo/my-website-go/internal/pkg/response"
	"github.com/eunji-woo/my-website-go/internal/policy"
	"github.com/eunji-woo/my-website-go/internal/web"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc   *Service
	pages *web.PageBuilder
}

func NewHandler(svc *Service, pages *web.PageBuilder) *Handler {
	return &Handler{svc: svc, pages: pages}
}

// commentForm is the new/edit comment payload.
type commentForm struct {
	Text string `form:"text" binding:"required"`
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, rateMW gin.HandlerFunc) {
	rg.POST("/:id/new_comment/", rateMW, h.create)
	rg.GET("/edit_comment/:id/", h.editForm)
	rg.POST("/edit_comment/:id/", h.edit)
	rg.GET("/delete_comment/:id/", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	postID, ok := h.parseID(c)
	if !ok {
		return
	}

	var form commentForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "comment text is required")
		return
	}

	if _, err := h.svc.Create(postID, form.Text, middleware.Principal(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(postID))
}

func (h *Handler) editForm(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	cm, err := h.svc.GetForEdit(id, middleware.Principal(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "comment_form", web.CommentFormPage{
		Page:    h.pages.Build(c, "Edit Comment"),
		Comment: *cm,
	})
}

func (h *Handler) edit(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var form commentForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "comment text is required")
		return
	}

	cm, err := h.svc.Edit(id, form.Text, middleware.Principal(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(cm.PostID))
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	cm, err := h.svc.Delete(id, middleware.Principal(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(cm.PostID))
}

func (h *Handler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c)
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, policy.ErrPermissionDenied):
		response.Forbidden(c)
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrPostNotFound):
		response.NotFound(c)
	case errors.Is(err, ErrEmptyText):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

func postURL(postID uint) string {
	return fmt.Sprintf("/blog/%d/", postID)
}

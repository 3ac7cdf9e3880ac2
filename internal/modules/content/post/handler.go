package post

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/eunji-woo/my-website-go/internal/middleware"
	"github.com/eunji-woo/my-website-go/internal/models"
	"github.com/eunji-woo/my-website-go/internal/modules/content/comment"
	"github.com/eunji-woo/my-website-go/internal/pkg/markdown"
	"github.com/eunji-woo/my-website-go/internal/pkg/response"
	"github.com/eunji-woo/my-website-go/internal/policy"
	"github.com/eunji-woo/my-website-go/internal/web"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc      *Service
	comments *comment.Service
	pages    *web.PageBuilder
}

func NewHandler(svc *Service, comments *comment.Service, pages *web.PageBuilder) *Handler {
	return &Handler{svc: svc, comments: comments, pages: pages}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/", h.list)
	rg.GET("/:id/", h.detail)
	rg.GET("/category/:slug/", h.listByCategory)
	rg.GET("/tag/:slug/", h.listByTag)

	rg.GET("/new_post/", authMW, h.newForm)
	rg.POST("/new_post/", authMW, h.create)
	rg.GET("/edit_post/:id/", authMW, h.editForm)
	rg.POST("/edit_post/:id/", authMW, h.update)
	rg.GET("/delete_post/:id/", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	posts, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.renderList(c, "Blog", "Latest Posts", posts)
}

func (h *Handler) listByCategory(c *gin.Context) {
	slug := c.Param("slug")
	posts, err := h.svc.ListByCategorySlug(slug)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.renderList(c, "Blog", "Category: "+slug, posts)
}

func (h *Handler) listByTag(c *gin.Context) {
	slug := c.Param("slug")
	posts, err := h.svc.ListByTagSlug(slug)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.renderList(c, "Blog", "Tag: #"+slug, posts)
}

func (h *Handler) detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}

	comments, err := h.comments.ForPost(p.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	principal := middleware.Principal(c)
	items := make([]web.CommentItem, 0, len(comments))
	for _, cm := range comments {
		items = append(items, web.CommentItem{
			Comment: cm,
			CanEdit: policy.Can(principal, policy.ActionEditComment, cm),
		})
	}

	c.HTML(http.StatusOK, "post_detail", web.PostDetailPage{
		Page:        h.pages.Build(c, p.Title),
		Post:        *p,
		ContentHTML: markdown.Render(p.Content),
		CanEdit:     policy.Can(principal, policy.ActionEditPost, p),
		Comments:    items,
	})
}

func (h *Handler) newForm(c *gin.Context) {
	c.HTML(http.StatusOK, "post_form", web.PostFormPage{
		Page: h.pages.Build(c, "New Post"),
	})
}

func (h *Handler) create(c *gin.Context) {
	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "title and content are required")
		return
	}

	p, err := h.svc.Create(&form, middleware.CurrentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, p.AbsoluteURL())
}

func (h *Handler) editForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !policy.Can(middleware.Principal(c), policy.ActionEditPost, p) {
		response.Forbidden(c)
		return
	}

	c.HTML(http.StatusOK, "post_form", web.PostFormPage{
		Page:     h.pages.Build(c, "Edit Post"),
		Post:     *p,
		Category: categoryName(p),
		Tags:     tagNames(p),
		IsEdit:   true,
	})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "title and content are required")
		return
	}

	p, err := h.svc.Update(id, &form, middleware.Principal(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, p.AbsoluteURL())
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id, middleware.Principal(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/blog/")
}

func (h *Handler) renderList(c *gin.Context, title, heading string, posts []models.PostModel) {
	items := make([]web.PostItem, 0, len(posts))
	for _, p := range posts {
		count, err := h.comments.CountForPost(p.ID)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		items = append(items, web.PostItem{Post: p, CommentCount: count})
	}
	c.HTML(http.StatusOK, "post_list", web.PostListPage{
		Page:    h.pages.Build(c, title),
		Heading: heading,
		Posts:   items,
	})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, policy.ErrPermissionDenied):
		response.Forbidden(c)
	case errors.Is(err, ErrNotFound):
		response.NotFound(c)
	default:
		response.InternalError(c, err)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c)
		return 0, false
	}
	return uint(id), true
}

func categoryName(p *models.PostModel) string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

func tagNames(p *models.PostModel) string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

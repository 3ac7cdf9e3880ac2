package search

import (
	"net/http"
	"strings"

	"github.com/eunji-woo/my-website-go/internal/modules/content/comment"
	"github.com/eunji-woo/my-website-go/internal/pkg/response"
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search/:query/", h.search)
}

func (h *Handler) search(c *gin.Context) {
	query := strings.TrimSpace(c.Param("query"))
	posts, err := h.svc.Search(query)
	if err != nil {
		response.InternalError(c, err)
		return
	}

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
		Page:    h.pages.Build(c, "Search"),
		Heading: "Search: " + query,
		Posts:   items,
	})
}

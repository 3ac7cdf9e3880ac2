package web

import (
	"html/template"

	"github.com/eunji-woo/my-website-go/internal/middleware"
	"github.com/eunji-woo/my-website-go/internal/models"
	"github.com/eunji-woo/my-website-go/internal/modules/content/category"
	"github.com/gin-gonic/gin"
)

// Page carries the data every template needs: document title, the current
// viewer and the category sidebar.
type Page struct {
	SiteName   string
	Title      string
	User       *models.UserModel
	Categories []models.CategoryModel
}

// PostItem is a post row on a list page.
type PostItem struct {
	Post         models.PostModel
	CommentCount int64
}

// PostListPage backs the index, category, tag and search pages.
type PostListPage struct {
	Page
	Heading string
	Posts   []PostItem
}

// CommentItem pairs a comment with the viewer's affordances for it.
type CommentItem struct {
	Comment models.CommentModel
	CanEdit bool
}

// PostDetailPage backs the post detail page.
type PostDetailPage struct {
	Page
	Post        models.PostModel
	ContentHTML template.HTML
	CanEdit     bool
	Comments    []CommentItem
}

// CommentFormPage backs the edit-comment form.
type CommentFormPage struct {
	Page
	Comment models.CommentModel
}

// PostFormPage backs the new/edit post form.
type PostFormPage struct {
	Page
	Post     models.PostModel
	Category string
	Tags     string
	IsEdit   bool
}

// AuthFormPage backs the login and register forms.
type AuthFormPage struct {
	Page
	Error string
	Next  string
}

// PageBuilder assembles the shared Page data per request.
type PageBuilder struct {
	SiteName   string
	Categories *category.Service
}

// Build fills the base page; the sidebar silently degrades to empty when
// the category query fails.
func (b *PageBuilder) Build(c *gin.Context, title string) Page {
	cats, _ := b.Categories.List()
	return Page{
		SiteName:   b.SiteName,
		Title:      title + " - " + b.SiteName,
		User:       middleware.CurrentUser(c),
		Categories: cats,
	}
}

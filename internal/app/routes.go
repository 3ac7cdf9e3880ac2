package app

import (
	"net/http"
	"time"

	"github.com/eunji-woo/my-website-go/internal/middleware"
	"github.com/eunji-woo/my-website-go/internal/modules/auth"
	"github.com/eunji-woo/my-website-go/internal/modules/content/category"
	"github.com/eunji-woo/my-website-go/internal/modules/content/comment"
	"github.com/eunji-woo/my-website-go/internal/modules/content/post"
	"github.com/eunji-woo/my-website-go/internal/modules/content/search"
	"github.com/eunji-woo/my-website-go/internal/modules/content/tag"
	pkgredis "github.com/eunji-woo/my-website-go/internal/pkg/redis"
	"github.com/eunji-woo/my-website-go/internal/pkg/response"
	"github.com/eunji-woo/my-website-go/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db

	r.Use(middleware.OptionalAuth(db))
	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	r.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	authMW := middleware.Auth()

	var rdb *redis.Client
	if rc != nil {
		rdb = rc.Raw()
	}
	rateMW := middleware.CommentRateLimit(rdb)

	// Shared services
	categorySvc := category.NewService(db)
	tagSvc := tag.NewService(db)
	commentSvc := comment.NewService(db)
	postSvc := post.NewService(db, categorySvc, tagSvc)
	searchSvc := search.NewService(db)
	authSvc := auth.NewService(db)

	pages := &web.PageBuilder{SiteName: a.cfg.SiteName, Categories: categorySvc}

	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/blog/") })

	blog := r.Group("/blog")
	post.NewHandler(postSvc, commentSvc, pages).RegisterRoutes(blog, authMW)
	comment.NewHandler(commentSvc, pages).RegisterRoutes(blog, rateMW)
	search.NewHandler(searchSvc, commentSvc, pages).RegisterRoutes(blog)

	sessionTTL := time.Duration(a.cfg.SessionTTLHours) * time.Hour
	root := r.Group("")
	auth.NewHandler(authSvc, pages, sessionTTL).RegisterRoutes(root)
}

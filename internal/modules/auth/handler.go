package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/eunji-woo/my-website-go/internal/middleware"
	"github.com/eunji-woo/my-website-go/internal/pkg/response"
	"github.com/eunji-woo/my-website-go/internal/web"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc        *Service
	pages      *web.PageBuilder
	sessionTTL time.Duration
}

func NewHandler(svc *Service, pages *web.PageBuilder, sessionTTL time.Duration) *Handler {
	return &Handler{svc: svc, pages: pages, sessionTTL: sessionTTL}
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Username string `form:"username" binding:"required"`
	Name     string `form:"name"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/accounts")
	g.GET("/login/", h.loginForm)
	g.POST("/login/", h.login)
	g.GET("/logout/", h.logout)
	g.GET("/register/", h.registerForm)
	g.POST("/register/", h.register)
}

func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login", web.AuthFormPage{
		Page: h.pages.Build(c, "Login"),
		Next: safeNext(c.Query("next")),
	})
}

func (h *Handler) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.loginFailed(c, "username and password are required")
		return
	}

	token, _, err := h.svc.Login(form.Username, form.Password, c.ClientIP(), c.Request.UserAgent(), h.sessionTTL)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.loginFailed(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", false, true)

	next := safeNext(c.Query("next"))
	if next == "" {
		next = "/blog/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *Handler) logout(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		_ = h.svc.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c))
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/blog/")
}

func (h *Handler) registerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register", web.AuthFormPage{
		Page: h.pages.Build(c, "Register"),
	})
}

func (h *Handler) register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register", web.AuthFormPage{
			Page:  h.pages.Build(c, "Register"),
			Error: "username and password are required",
		})
		return
	}

	if _, err := h.svc.Register(form.Username, form.Name, form.Password); err != nil {
		status := http.StatusBadRequest
		msg := "could not register"
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrInvalidCredentials) {
			msg = err.Error()
		} else {
			status = http.StatusInternalServerError
		}
		c.HTML(status, "register", web.AuthFormPage{
			Page:  h.pages.Build(c, "Register"),
			Error: msg,
		})
		return
	}
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (h *Handler) loginFailed(c *gin.Context, msg string) {
	c.HTML(http.StatusUnauthorized, "login", web.AuthFormPage{
		Page:  h.pages.Build(c, "Login"),
		Error: msg,
		Next:  safeNext(c.Query("next")),
	})
}

// safeNext only allows same-site redirect targets.
func safeNext(next string) string {
	next = strings.TrimSpace(next)
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}

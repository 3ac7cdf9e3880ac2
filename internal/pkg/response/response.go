package response

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotFound sends a 404 error page.
func NotFound(c *gin.Context) {
	errorPage(c, http.StatusNotFound, "Not Found", "The page you were looking for does not exist.")
}

// Forbidden sends a 403 error page for a denied action.
func Forbidden(c *gin.Context) {
	errorPage(c, http.StatusForbidden, "Permission Denied", "You are not allowed to do that.")
}

// BadRequest sends a 400 error page.
func BadRequest(c *gin.Context, message string) {
	errorPage(c, http.StatusBadRequest, "Bad Request", message)
}

// MethodNotAllowed sends a 405 error page.
func MethodNotAllowed(c *gin.Context) {
	errorPage(c, http.StatusMethodNotAllowed, "Method Not Allowed", "That method is not supported here.")
}

// InternalError sends a 500 error page.
func InternalError(c *gin.Context, err error) {
	errorPage(c, http.StatusInternalServerError, "Server Error", err.Error())
}

func errorPage(c *gin.Context, status int, title, message string) {
	c.Abort()
	c.Data(status, "text/html; charset=utf-8", []byte(renderErrorHTML(title, message)))
}

func renderErrorHTML(title, message string) string {
	escapedTitle := template.HTMLEscapeString(title)
	escapedMessage := template.HTMLEscapeString(message)
	return `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>` + escapedTitle + `</title>
  <style>
    body { margin: 0; padding: 24px; font: 16px/1.7 -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; color: #222; background: #fff; }
    main { max-width: 640px; margin: 48px auto; text-align: center; }
    h1 { margin: 0 0 16px; font-size: 28px; }
    p { color: #666; }
    a { color: #0366d6; }
  </style>
</head>
<body>
  <main>
    <h1>` + escapedTitle + `</h1>
    <p>` + escapedMessage + `</p>
    <p><a href="/blog/">Back to the blog</a></p>
  </main>
</body>
</html>`
}

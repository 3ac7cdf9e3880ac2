package web

import "html/template"

// Templates parses the full page template set. Pages are complete documents
// sharing the head/navbar/sidebar/foot partials.
func Templates() *template.Template {
	t := template.New("")
	for _, src := range []string{
		headTemplate,
		navbarTemplate,
		sidebarTemplate,
		footTemplate,
		postListTemplate,
		postDetailTemplate,
		commentFormTemplate,
		postFormTemplate,
		loginTemplate,
		registerTemplate,
	} {
		t = template.Must(t.Parse(src))
	}
	return t
}

const headTemplate = `{{define "head"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; font: 16px/1.7 -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; color: #222; background: #fff; }
    a { color: #0366d6; text-decoration: none; }
    nav { display: flex; gap: 16px; align-items: baseline; padding: 12px 24px; border-bottom: 1px solid #eee; }
    nav .brand { font-weight: 700; font-size: 18px; color: #222; }
    nav .account { margin-left: auto; color: #666; }
    .container { display: flex; gap: 32px; max-width: 960px; margin: 0 auto; padding: 24px; }
    #main-div { flex: 1; min-width: 0; }
    #right-side { width: 220px; }
    .post-meta { color: #666; font-size: 14px; }
    .tags { color: #0366d6; }
    #comment-list { margin-top: 24px; border-top: 1px solid #eee; }
    .comment { padding: 12px 0; border-bottom: 1px solid #f3f3f3; }
    .comment .actions a { margin-right: 8px; font-size: 13px; }
    textarea, input[type=text], input[type=password] { width: 100%; box-sizing: border-box; padding: 8px; margin: 4px 0 12px; border: 1px solid #ddd; border-radius: 4px; font: inherit; }
    button { padding: 8px 16px; border: 0; border-radius: 4px; background: #0366d6; color: #fff; font: inherit; cursor: pointer; }
    .error { color: #b31d28; }
  </style>
</head>
<body>
{{template "navbar" .}}
<div class="container">
{{end}}`

const navbarTemplate = `{{define "navbar"}}<nav id="navbar">
  <a class="brand" href="/blog/">{{.SiteName}}</a>
  <a href="/blog/">Blog</a>
  {{if .User}}
  <a href="/blog/new_post/">New Post</a>
  <span class="account">{{.User.Username}} &middot; <a href="/accounts/logout/">Logout</a></span>
  {{else}}
  <span class="account"><a href="/accounts/login/">Login</a></span>
  {{end}}
</nav>
{{end}}`

const sidebarTemplate = `{{define "sidebar"}}<aside id="right-side">
  <h4>Categories</h4>
  <ul>
    {{range .Categories}}
    <li><a href="/blog/category/{{.Slug}}/">{{.Name}}</a></li>
    {{else}}
    <li>미분류</li>
    {{end}}
  </ul>
</aside>
{{end}}`

const footTemplate = `{{define "foot"}}</div>
</body>
</html>
{{end}}`

const postListTemplate = `{{define "post_list"}}{{template "head" .}}
<div id="main-div">
  <h2>{{.Heading}}</h2>
  {{range .Posts}}
  <article class="post-row">
    <h3><a href="{{.Post.AbsoluteURL}}">{{.Post.Title}}</a></h3>
    <p class="post-meta">
      by {{.Post.Author.Username}} &middot; {{.Post.CreatedAt.Format "Jan 2, 2006"}}
      {{if .Post.Category}} &middot; {{.Post.Category.Name}}{{end}}
      &middot; {{.CommentCount}} comments
    </p>
  </article>
  {{else}}
  <p>No posts yet.</p>
  {{end}}
</div>
{{template "sidebar" .}}
{{template "foot" .}}{{end}}`

const postDetailTemplate = `{{define "post_detail"}}{{template "head" .}}
<div id="main-div">
  <h1>{{.Post.Title}}</h1>
  <p class="post-meta">
    by {{.Post.Author.Username}} &middot; {{.Post.CreatedAt.Format "Jan 2, 2006"}}
    {{if .Post.Category}} &middot; {{.Post.Category.Name}}{{end}}
    {{if .CanEdit}} &middot; <a href="/blog/edit_post/{{.Post.ID}}/">EDIT</a>{{end}}
  </p>
  <div class="post-content">{{.ContentHTML}}</div>
  {{if .Post.Tags}}
  <p class="tags">{{range .Post.Tags}}<a href="/blog/tag/{{.Slug}}/">#{{.Name}}</a> {{end}}</p>
  {{end}}

  <div id="comment-list">
    <h3>Comments</h3>
    {{range .Comments}}
    <div class="comment" id="comment-id-{{.Comment.ID}}">
      <p class="post-meta">{{.Comment.Author.Username}} &middot; {{.Comment.CreatedAt.Format "Jan 2, 2006 15:04"}}</p>
      <p>{{.Comment.Text}}</p>
      {{if .CanEdit}}
      <p class="actions">
        <a href="/blog/edit_comment/{{.Comment.ID}}/">edit</a>
        <a href="/blog/delete_comment/{{.Comment.ID}}/">delete</a>
      </p>
      {{end}}
    </div>
    {{else}}
    <p>No comments yet.</p>
    {{end}}

    <form method="post" action="{{.Post.AbsoluteURL}}new_comment/">
      <textarea name="text" rows="3" placeholder="Leave a comment"></textarea>
      <button type="submit">Comment</button>
    </form>
  </div>
</div>
{{template "sidebar" .}}
{{template "foot" .}}{{end}}`

const commentFormTemplate = `{{define "comment_form"}}{{template "head" .}}
<div id="main-div">
  <h3>Edit Comment: {{.Comment.ID}}</h3>
  <form method="post" action="/blog/edit_comment/{{.Comment.ID}}/">
    <textarea name="text" rows="3">{{.Comment.Text}}</textarea>
    <button type="submit">Save</button>
  </form>
</div>
{{template "sidebar" .}}
{{template "foot" .}}{{end}}`

const postFormTemplate = `{{define "post_form"}}{{template "head" .}}
<div id="main-div">
  {{if .IsEdit}}<h3>Edit Post</h3>{{else}}<h3>New Post</h3>{{end}}
  <form method="post">
    <label>Title</label>
    <input type="text" name="title" value="{{.Post.Title}}" />
    <label>Content</label>
    <textarea name="content" rows="12">{{.Post.Content}}</textarea>
    <label>Category</label>
    <input type="text" name="category" value="{{.Category}}" />
    <label>Tags (comma separated)</label>
    <input type="text" name="tags" value="{{.Tags}}" />
    <button type="submit">Save</button>
  </form>
</div>
{{template "sidebar" .}}
{{template "foot" .}}{{end}}`

const loginTemplate = `{{define "login"}}{{template "head" .}}
<div id="main-div">
  <h3>Login</h3>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <form method="post" action="/accounts/login/{{if .Next}}?next={{.Next}}{{end}}">
    <label>Username</label>
    <input type="text" name="username" />
    <label>Password</label>
    <input type="password" name="password" />
    <button type="submit">Login</button>
  </form>
  <p>No account? <a href="/accounts/register/">Register</a></p>
</div>
{{template "sidebar" .}}
{{template "foot" .}}{{end}}`

const registerTemplate = `{{define "register"}}{{template "head" .}}
<div id="main-div">
  <h3>Register</h3>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <form method="post" action="/accounts/register/">
    <label>Username</label>
    <input type="text" name="username" />
    <label>Name</label>
    <input type="text" name="name" />
    <label>Password</label>
    <input type="password" name="password" />
    <button type="submit">Register</button>
  </form>
</div>
{{template "sidebar" .}}
{{template "foot" .}}{{end}}`

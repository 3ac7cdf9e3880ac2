package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/eunji-woo/my-website-go/internal/config"
	"github.com/eunji-woo/my-website-go/internal/middleware"
	"github.com/eunji-woo/my-website-go/internal/models"
	"github.com/eunji-woo/my-website-go/internal/modules/auth"
	"github.com/eunji-woo/my-website-go/internal/modules/content/category"
	"github.com/eunji-woo/my-website-go/internal/modules/content/comment"
	"github.com/eunji-woo/my-website-go/internal/modules/content/post"
	"github.com/eunji-woo/my-website-go/internal/modules/content/tag"
	"github.com/eunji-woo/my-website-go/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testApp struct {
	*App
	auth     *auth.Service
	posts    *post.Service
	comments *comment.Service
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	cfg := config.Default()
	cfg.Env = "production"
	cfg.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	a, err := New(zap.NewNop(), cfg)
	require.NoError(t, err)

	categorySvc := category.NewService(a.db)
	tagSvc := tag.NewService(a.db)
	return &testApp{
		App:      a,
		auth:     auth.NewService(a.db),
		posts:    post.NewService(a.db, categorySvc, tagSvc),
		comments: comment.NewService(a.db),
	}
}

func (ta *testApp) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)
	return rec
}

func (ta *testApp) postForm(t *testing.T, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	ta.router.ServeHTTP(rec, req)
	return rec
}

// register creates a user and returns it with the session cookie from a
// real login request.
func (ta *testApp) register(t *testing.T, username, password string) (*models.UserModel, *http.Cookie) {
	t.Helper()
	user, err := ta.auth.Register(username, "", password)
	require.NoError(t, err)

	rec := ta.postForm(t, "/accounts/login/", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie && ck.Value != "" {
			return user, ck
		}
	}
	t.Fatalf("login did not set a session cookie")
	return nil, nil
}

func (ta *testApp) seedPost(t *testing.T, authorID uint, title, content, categoryName, tags string) *models.PostModel {
	t.Helper()
	p, err := ta.posts.Create(&post.PostForm{
		Title:    title,
		Content:  content,
		Category: categoryName,
		Tags:     tags,
	}, authorID)
	require.NoError(t, err)
	return p
}

func TestPostDetailAffordances(t *testing.T) {
	ta := newTestApp(t)
	smith, smithCk := ta.register(t, "smith", "nopassword")
	obama, obamaCk := ta.register(t, "obama", "nopassword")

	p := ta.seedPost(t, smith.ID, "some title", "some content", "정치/사회", "america")

	smithComment, err := ta.comments.Create(p.ID, "by the author", policy.Principal{UserID: smith.ID})
	require.NoError(t, err)
	obamaComment, err := ta.comments.Create(p.ID, "by a visitor", policy.Principal{UserID: obama.ID})
	require.NoError(t, err)

	t.Run("anonymous reader sees content but no edit links", func(t *testing.T) {
		rec := ta.get(t, p.AbsoluteURL())
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()

		assert.Contains(t, body, "<title>some title - Blog</title>")
		assert.Contains(t, body, "some content")
		assert.Contains(t, body, "smith")
		assert.Contains(t, body, "정치/사회")
		assert.Contains(t, body, "#america")
		assert.Contains(t, body, `id="comment-list"`)
		assert.Contains(t, body, "by the author")
		assert.Contains(t, body, "by a visitor")
		assert.NotContains(t, body, ">EDIT<")
		assert.NotContains(t, body, "/blog/edit_comment/")
	})

	t.Run("author sees EDIT and links for own comment only", func(t *testing.T) {
		rec := ta.get(t, p.AbsoluteURL(), smithCk)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()

		assert.Contains(t, body, fmt.Sprintf(`<a href="/blog/edit_post/%d/">EDIT</a>`, p.ID))
		assert.Contains(t, body, fmt.Sprintf("/blog/edit_comment/%d/", smithComment.ID))
		assert.NotContains(t, body, fmt.Sprintf("/blog/edit_comment/%d/", obamaComment.ID))
	})

	t.Run("other user sees links for own comment but no EDIT", func(t *testing.T) {
		rec := ta.get(t, p.AbsoluteURL(), obamaCk)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()

		assert.NotContains(t, body, ">EDIT<")
		assert.Contains(t, body, fmt.Sprintf("/blog/edit_comment/%d/", obamaComment.ID))
		assert.NotContains(t, body, fmt.Sprintf("/blog/edit_comment/%d/", smithComment.ID))
	})

	t.Run("unknown post is 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, ta.get(t, "/blog/9999/").Code)
		assert.Equal(t, http.StatusNotFound, ta.get(t, "/blog/not-a-number/").Code)
	})
}

func TestNewComment(t *testing.T) {
	ta := newTestApp(t)
	smith, smithCk := ta.register(t, "smith", "nopassword")
	p := ta.seedPost(t, smith.ID, "hello", "world", "", "")

	t.Run("anonymous comment is attributed to guest", func(t *testing.T) {
		rec := ta.postForm(t, p.AbsoluteURL()+"new_comment/", url.Values{"text": {"drive-by remark"}})
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, p.AbsoluteURL(), rec.Header().Get("Location"))

		body := ta.get(t, p.AbsoluteURL()).Body.String()
		assert.Contains(t, body, "drive-by remark")
		assert.Contains(t, body, models.GuestUsername)
	})

	t.Run("authenticated comment is attributed to the user", func(t *testing.T) {
		rec := ta.postForm(t, p.AbsoluteURL()+"new_comment/", url.Values{"text": {"signed remark"}}, smithCk)
		require.Equal(t, http.StatusFound, rec.Code)

		body := ta.get(t, p.AbsoluteURL()).Body.String()
		assert.Contains(t, body, "signed remark")
	})

	t.Run("blank text is rejected", func(t *testing.T) {
		rec := ta.postForm(t, p.AbsoluteURL()+"new_comment/", url.Values{"text": {""}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown post is 404", func(t *testing.T) {
		rec := ta.postForm(t, "/blog/9999/new_comment/", url.Values{"text": {"lost"}})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEditComment(t *testing.T) {
	ta := newTestApp(t)
	smith, smithCk := ta.register(t, "smith", "nopassword")
	obama, obamaCk := ta.register(t, "obama", "nopassword")
	p := ta.seedPost(t, smith.ID, "hello", "world", "", "")

	cm, err := ta.comments.Create(p.ID, "original text", policy.Principal{UserID: obama.ID})
	require.NoError(t, err)
	editPath := fmt.Sprintf("/blog/edit_comment/%d/", cm.ID)

	t.Run("anonymous is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, ta.get(t, editPath).Code)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, ta.get(t, editPath, smithCk).Code)
		rec := ta.postForm(t, editPath, url.Values{"text": {"hijacked"}}, smithCk)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("owner gets the form and can save", func(t *testing.T) {
		rec := ta.get(t, editPath, obamaCk)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), fmt.Sprintf("Edit Comment: %d", cm.ID))
		assert.Contains(t, rec.Body.String(), "original text")

		rec = ta.postForm(t, editPath, url.Values{"text": {"revised text"}}, obamaCk)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, p.AbsoluteURL(), rec.Header().Get("Location"))

		body := ta.get(t, p.AbsoluteURL()).Body.String()
		assert.Contains(t, body, "revised text")
		assert.NotContains(t, body, "original text")
	})

	t.Run("unknown comment is 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, ta.get(t, "/blog/edit_comment/9999/", obamaCk).Code)
	})
}

func TestDeleteComment(t *testing.T) {
	ta := newTestApp(t)
	smith, smithCk := ta.register(t, "smith", "nopassword")
	obama, obamaCk := ta.register(t, "obama", "nopassword")
	p := ta.seedPost(t, smith.ID, "hello", "world", "", "")

	_, err := ta.comments.Create(p.ID, "stays", policy.Principal{UserID: smith.ID})
	require.NoError(t, err)
	cm, err := ta.comments.Create(p.ID, "goes", policy.Principal{UserID: obama.ID})
	require.NoError(t, err)
	deletePath := fmt.Sprintf("/blog/delete_comment/%d/", cm.ID)

	t.Run("non-owner is forbidden and nothing changes", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, ta.get(t, deletePath, smithCk).Code)
		count, err := ta.comments.CountForPost(p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("owner deletes and siblings survive", func(t *testing.T) {
		rec := ta.get(t, deletePath, obamaCk)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, p.AbsoluteURL(), rec.Header().Get("Location"))

		count, err := ta.comments.CountForPost(p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		body := ta.get(t, p.AbsoluteURL()).Body.String()
		assert.Contains(t, body, "stays")
		assert.NotContains(t, body, "goes")
	})
}

func TestSearchPage(t *testing.T) {
	ta := newTestApp(t)
	smith, _ := ta.register(t, "smith", "nopassword")
	ta.seedPost(t, smith.ID, "Stay Fool, Stay Hungry", "Jobs said", "", "")
	ta.seedPost(t, smith.ID, "Make America Great Again", "Trump said", "", "")

	t.Run("matches title", func(t *testing.T) {
		rec := ta.get(t, "/blog/search/"+url.PathEscape("Stay Fool")+"/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Stay Fool, Stay Hungry")
		assert.NotContains(t, rec.Body.String(), "Make America Great Again")
	})

	t.Run("matches content", func(t *testing.T) {
		rec := ta.get(t, "/blog/search/"+url.PathEscape("Trump said")+"/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Make America Great Again")
		assert.NotContains(t, rec.Body.String(), "Stay Fool, Stay Hungry")
	})

	t.Run("wildcards in the query match literally", func(t *testing.T) {
		rec := ta.get(t, "/blog/search/"+url.PathEscape("S%H")+"/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Stay Fool, Stay Hungry")
	})
}

func TestPostAuthoring(t *testing.T) {
	ta := newTestApp(t)
	smith, smithCk := ta.register(t, "smith", "nopassword")
	_, obamaCk := ta.register(t, "obama", "nopassword")

	t.Run("anonymous is redirected to login", func(t *testing.T) {
		rec := ta.get(t, "/blog/new_post/")
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), middleware.LoginPath)
	})

	t.Run("author creates, edits and deletes a post", func(t *testing.T) {
		rec := ta.postForm(t, "/blog/new_post/", url.Values{
			"title":    {"fresh post"},
			"content":  {"fresh content"},
			"category": {"daily"},
			"tags":     {"one, two"},
		}, smithCk)
		require.Equal(t, http.StatusFound, rec.Code)
		postPath := rec.Header().Get("Location")
		require.True(t, strings.HasPrefix(postPath, "/blog/"))

		body := ta.get(t, postPath, smithCk).Body.String()
		assert.Contains(t, body, "fresh post")
		assert.Contains(t, body, "#one")
		assert.Contains(t, body, "#two")

		rec = ta.postForm(t, strings.Replace(postPath, "/blog/", "/blog/edit_post/", 1), url.Values{
			"title":   {"renamed post"},
			"content": {"fresh content"},
		}, smithCk)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, ta.get(t, postPath).Body.String(), "renamed post")

		rec = ta.get(t, strings.Replace(postPath, "/blog/", "/blog/delete_post/", 1), smithCk)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, http.StatusNotFound, ta.get(t, postPath).Code)
	})

	t.Run("non-author cannot edit someone else's post", func(t *testing.T) {
		p := ta.seedPost(t, smith.ID, "protected", "content", "", "")
		editPath := fmt.Sprintf("/blog/edit_post/%d/", p.ID)

		assert.Equal(t, http.StatusForbidden, ta.get(t, editPath, obamaCk).Code)
		rec := ta.postForm(t, editPath, url.Values{"title": {"stolen"}, "content": {"x"}}, obamaCk)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, http.StatusForbidden, ta.get(t, fmt.Sprintf("/blog/delete_post/%d/", p.ID), obamaCk).Code)
	})
}

func TestTaxonomyPages(t *testing.T) {
	ta := newTestApp(t)
	smith, _ := ta.register(t, "smith", "nopassword")
	ta.seedPost(t, smith.ID, "politics piece", "content", "정치/사회", "issue")
	ta.seedPost(t, smith.ID, "daily piece", "content", "daily", "")

	t.Run("category page filters by slug", func(t *testing.T) {
		rec := ta.get(t, "/blog/category/"+url.PathEscape("정치사회")+"/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "politics piece")
		assert.NotContains(t, rec.Body.String(), "daily piece")
	})

	t.Run("tag page filters by slug", func(t *testing.T) {
		rec := ta.get(t, "/blog/tag/issue/")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "politics piece")
		assert.NotContains(t, rec.Body.String(), "daily piece")
	})

	t.Run("sidebar lists categories on every page", func(t *testing.T) {
		body := ta.get(t, "/blog/").Body.String()
		assert.Contains(t, body, `id="right-side"`)
		assert.Contains(t, body, "정치/사회")
		assert.Contains(t, body, "daily")
	})
}

func TestListSurfacesCommentCountErrors(t *testing.T) {
	ta := newTestApp(t)
	smith, _ := ta.register(t, "smith", "nopassword")
	ta.seedPost(t, smith.ID, "hello", "world", "", "")

	require.NoError(t, ta.db.Migrator().DropTable(&models.CommentModel{}))

	assert.Equal(t, http.StatusInternalServerError, ta.get(t, "/blog/").Code)
	assert.Equal(t, http.StatusInternalServerError, ta.get(t, "/blog/search/hello/").Code)
}

func TestLoginFlow(t *testing.T) {
	ta := newTestApp(t)
	_, err := ta.auth.Register("smith", "Agent Smith", "nopassword")
	require.NoError(t, err)

	t.Run("bad credentials re-render the form", func(t *testing.T) {
		rec := ta.postForm(t, "/accounts/login/", url.Values{
			"username": {"smith"},
			"password": {"wrong"},
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid username or password")
	})

	t.Run("login honors a safe next target", func(t *testing.T) {
		rec := ta.postForm(t, "/accounts/login/?next=/blog/new_post/", url.Values{
			"username": {"smith"},
			"password": {"nopassword"},
		})
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/blog/new_post/", rec.Header().Get("Location"))
	})

	t.Run("login rejects an off-site next target", func(t *testing.T) {
		rec := ta.postForm(t, "/accounts/login/?next=//evil.example", url.Values{
			"username": {"smith"},
			"password": {"nopassword"},
		})
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/blog/", rec.Header().Get("Location"))
	})

	t.Run("logout clears the session", func(t *testing.T) {
		_, ck := ta.register(t, "obama", "nopassword")
		rec := ta.get(t, "/accounts/logout/", ck)
		require.Equal(t, http.StatusFound, rec.Code)

		rec = ta.get(t, "/blog/new_post/", ck)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), middleware.LoginPath)
	})
}

package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"admin-backoffice/config"
	"admin-backoffice/flash"
	"admin-backoffice/intents"
	"admin-backoffice/middleware"
	"admin-backoffice/models"
	"admin-backoffice/querysync"
	"admin-backoffice/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	resp *models.AuthResponse
	err  error
}

func (f *fakeAuth) Register(models.RegisterRequest) (*models.AuthResponse, error) {
	return nil, errors.New("not used")
}

func (f *fakeAuth) Login(models.LoginRequest) (*models.AuthResponse, error) {
	return f.resp, f.err
}

func (f *fakeAuth) GetUserByID(uint) (*models.User, error) {
	return nil, errors.New("not used")
}

type recorder struct {
	mu  sync.Mutex
	got []intents.Intent
	err error
}

func (r *recorder) Handle(_ context.Context, in intents.Intent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, in)
	return r.err
}

type fixture struct {
	engine      *gin.Engine
	lastQuery   querysync.Params
	lastType    string
	articleErr  error
	articles    *recorder
	users       *recorder
	auth        *fakeAuth
	flashStore  *flash.MemoryStore
	adminCookie *http.Cookie
}

func newFixture(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	config.SetJWT("dashboard-test-secret", time.Hour)

	f := &fixture{
		articles:   &recorder{},
		users:      &recorder{},
		auth:       &fakeAuth{},
		flashStore: flash.NewMemoryStore(),
	}

	sources := Sources{
		Articles: func(articleType string) store.Source[models.Article] {
			return store.SourceFunc[models.Article](func(_ context.Context, q querysync.Params) (store.Payload[models.Article], error) {
				f.lastQuery, f.lastType = q, articleType
				if f.articleErr != nil {
					return store.Payload[models.Article]{}, f.articleErr
				}
				return store.Payload[models.Article]{
					Meta:    models.Pagination{CurrentPage: q.Page, PerPage: q.PerPage, Total: 1, TotalPages: 1},
					Records: []models.Article{{
						ID: 5, Title: "Launch", Type: articleType, Status: models.ArticleStatusPublish,
						Content: "**bold**", Author: models.User{DisplayName: "Ann"},
					}},
				}, nil
			})
		},
		Users: store.SourceFunc[models.User](func(_ context.Context, q querysync.Params) (store.Payload[models.User], error) {
			return store.Payload[models.User]{
				Meta:    models.Pagination{CurrentPage: 1, Total: 1, TotalPages: 1},
				Records: []models.User{{ID: 9, Username: "bob", DisplayName: "Bob", Role: models.RoleStudent, Status: models.UserStatusTrain}},
			}, nil
		}),
	}

	d, err := New(Config{
		Sources:        sources,
		ArticleIntents: f.articles,
		UserIntents:    f.users,
		Auth:           f.auth,
		Flash:          f.flashStore,
	})
	require.NoError(t, err)

	f.engine = gin.New()
	d.Register(f.engine)
	f.adminCookie = tokenCookie(t, 1, "admin", string(models.RoleAdmin))
	return f
}

func tokenCookie(t *testing.T, id uint, username, role string) *http.Cookie {
	claims := middleware.Claims{
		UserID:   id,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: config.JWTCookieName, Value: signed}
}

const flashSession = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func (f *fixture) do(method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: flash.CookieName, Value: flashSession})
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func redirectQuery(t *testing.T, w *httptest.ResponseRecorder) (string, url.Values) {
	require.Equal(t, http.StatusSeeOther, w.Code)
	u, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	return u.Path, u.Query()
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/admin/articles/news", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, middleware.LoginPath, w.Header().Get("Location"))

	w = f.do(http.MethodGet, "/admin/articles/news", nil, tokenCookie(t, 2, "stu", string(models.RoleStudent)))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListArticlesFetchesFromQuery(t *testing.T) {
	f := newFixture(t)

	target := "/admin/articles/news?page=3&sortField=title&sortOrder=descend&search=go&filters=" + url.QueryEscape(`{"status":["publish"]}`)
	w := f.do(http.MethodGet, target, nil, f.adminCookie)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "news", f.lastType)
	assert.Equal(t, 3, f.lastQuery.Page)
	assert.Equal(t, "title", f.lastQuery.SortField)
	assert.Equal(t, querysync.OrderDescend, f.lastQuery.SortOrder)
	assert.Equal(t, "go", f.lastQuery.Search)
	assert.Equal(t, []string{"publish"}, f.lastQuery.Filters.Get("status"))

	body := w.Body.String()
	assert.Contains(t, body, "Launch")
	assert.Contains(t, body, "Create news")
	assert.Contains(t, body, "Published")
}

func TestListArticlesBadFiltersShowsError(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/admin/articles/news?filters=notjson", nil, f.adminCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="fetch-error"`)
	assert.Empty(t, f.lastType)
}

func TestFetchFailureKeepsRows(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/admin/articles/news", nil, f.adminCookie)
	require.Equal(t, http.StatusOK, w.Code)

	f.articleErr = errors.New("database unavailable")
	w = f.do(http.MethodGet, "/admin/articles/news?page=2", nil, f.adminCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "database unavailable")
	assert.Contains(t, w.Body.String(), "Launch")
}

func TestPreviewModal(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/admin/articles/news?preview=5", nil, f.adminCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<strong>bold</strong>")
	assert.Contains(t, w.Body.String(), `class="modal"`)

	w = f.do(http.MethodGet, "/admin/articles/news", nil, f.adminCookie)
	assert.NotContains(t, w.Body.String(), `class="modal"`)
}

func TestSearchRedirectKeepsQuery(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/admin/articles/news/search?page=2&sortField=title&sortOrder=ascend",
		url.Values{FieldSearch: {"  golang "}}, f.adminCookie)

	path, q := redirectQuery(t, w)
	assert.Equal(t, "/admin/articles/news", path)
	assert.Equal(t, "golang", q.Get("search"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "title", q.Get("sortField"))
}

func TestTableChangeSetsFiltersAndSort(t *testing.T) {
	f := newFixture(t)

	form := url.Values{
		FieldPage:        {"1"},
		"filter.role":    {"coach", "admin"},
		"filter.unknown": {"x"},
		FieldSortField:   {"created_at"},
		FieldSortOrder:   {"descend"},
	}
	w := f.do(http.MethodPost, "/admin/users/list/table?search=amy&page=4", form, f.adminCookie)

	path, q := redirectQuery(t, w)
	assert.Equal(t, "/admin/users/list", path)
	assert.Equal(t, "amy", q.Get("search"))
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, `{"role":["coach","admin"]}`, q.Get("filters"))
	assert.Equal(t, "created_at", q.Get("sortField"))
	assert.Equal(t, "descend", q.Get("sortOrder"))
}

func TestTableChangeWithoutSortClearsSort(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/admin/articles/news/table?sortField=title&sortOrder=ascend",
		url.Values{FieldPage: {"2"}}, f.adminCookie)

	_, q := redirectQuery(t, w)
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "{}", q.Get("filters"))
	_, hasField := q["sortField"]
	_, hasOrder := q["sortOrder"]
	assert.False(t, hasField)
	assert.False(t, hasOrder)
}

func TestDeleteArticleConfirmThenDispatch(t *testing.T) {
	f := newFixture(t)
	f.do(http.MethodGet, "/admin/articles/news", nil, f.adminCookie)

	w := f.do(http.MethodGet, "/admin/articles/news/delete/5?page=2", nil, f.adminCookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Launch")
	assert.Contains(t, w.Body.String(), `action="/admin/articles/news/delete/5?page=2"`)
	assert.Empty(t, f.articles.got)

	w = f.do(http.MethodPost, "/admin/articles/news/delete/5?page=2", url.Values{}, f.adminCookie)
	path, q := redirectQuery(t, w)
	assert.Equal(t, "/admin/articles/news", path)
	assert.Equal(t, "2", q.Get("page"))

	require.Len(t, f.articles.got, 1)
	assert.Equal(t, intents.Intent{Kind: intents.Delete, ID: 5, ActorID: 1}, f.articles.got[0])

	msg, ok, err := f.flashStore.Pop(context.Background(), flashSession)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, flash.LevelInfo, msg.Level)
}

func TestChangeStatusFailureIsFlashed(t *testing.T) {
	f := newFixture(t)
	f.articles.err = models.ErrorNotFound{Message: "article not found"}

	w := f.do(http.MethodPost, "/admin/articles/news/status/5", url.Values{FieldStatus: {"pinned"}}, f.adminCookie)
	path, _ := redirectQuery(t, w)
	assert.Equal(t, "/admin/articles/news", path)

	require.Len(t, f.articles.got, 1)
	assert.Equal(t, intents.ChangeStatus, f.articles.got[0].Kind)
	assert.Equal(t, "pinned", f.articles.got[0].Status)

	w = f.do(http.MethodGet, "/admin/articles/news", nil, f.adminCookie)
	assert.Contains(t, w.Body.String(), "article not found")

	// shown once
	w = f.do(http.MethodGet, "/admin/articles/news", nil, f.adminCookie)
	assert.NotContains(t, w.Body.String(), "article not found")
}

func TestInvalidIDIsNotDispatched(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/admin/users/delete/abc", url.Values{}, f.adminCookie)
	path, _ := redirectQuery(t, w)
	assert.Equal(t, "/admin/users/list", path)
	assert.Empty(t, f.users.got)
}

func TestDeleteUserRedirectsWithPriorQuery(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/admin/users/delete/9?search=bob&page=3", url.Values{}, f.adminCookie)
	path, q := redirectQuery(t, w)
	assert.Equal(t, "/admin/users/list", path)
	assert.Equal(t, "bob", q.Get("search"))
	assert.Equal(t, "3", q.Get("page"))

	require.Len(t, f.users.got, 1)
	assert.Equal(t, uint(9), f.users.got[0].ID)
	assert.Equal(t, uint(1), f.users.got[0].ActorID)
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/admin/users/list?search=bob", nil, f.adminCookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Bob")
	assert.Contains(t, body, `placeholder="bob"`)
	assert.Contains(t, body, "/admin/users/delete/9?search=bob")
}

func TestLogin(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, middleware.LoginPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="password"`)

	f.auth.err = models.ErrorUnauthorized{Message: "invalid credentials"}
	w = f.do(http.MethodPost, middleware.LoginPath, url.Values{"username": {"root"}, "password": {"bad"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")

	f.auth.err = nil
	f.auth.resp = &models.AuthResponse{Token: "student-token", User: models.User{Role: models.RoleStudent}}
	w = f.do(http.MethodPost, middleware.LoginPath, url.Values{"username": {"stu"}, "password": {"pw"}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	f.auth.resp = &models.AuthResponse{Token: "admin-token", User: models.User{Role: models.RoleAdmin}}
	w = f.do(http.MethodPost, middleware.LoginPath, url.Values{"username": {"root"}, "password": {"pw"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, HomePath, w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), config.JWTCookieName+"=admin-token")
}

func TestLogoutClearsCookie(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/admin/logout", url.Values{}, f.adminCookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, middleware.LoginPath, w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

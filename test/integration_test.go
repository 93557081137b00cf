package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"admin-backoffice/config"
	"admin-backoffice/flash"
	"admin-backoffice/models"
	"admin-backoffice/repositories"
	"admin-backoffice/routes"
	"admin-backoffice/services"
)

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	token  string
	userID uint
}

type envelope[T any] struct {
	Code        int    `json:"code"`
	CodeMessage string `json:"code_message"`
	CodeType    string `json:"code_type"`
	Data        T      `json:"data"`
}

func (suite *IntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	config.SetJWT("test-secret", time.Hour)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("Failed to open test database:", err)
	}
	// every pooled connection would get its own in-memory database
	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(config.Migrate(db))
	suite.db = db

	router, err := routes.New(config.AppConfig{SessionCacheSize: 16}, db, zap.NewNop(), flash.NewMemoryStore())
	suite.Require().NoError(err)
	suite.router = router
}

func (suite *IntegrationTestSuite) SetupTest() {
	// Clean all tables before each test
	suite.db.Exec("DELETE FROM articles")
	suite.db.Exec("DELETE FROM users")

	suite.createAdmin()
}

func (suite *IntegrationTestSuite) createAdmin() {
	authService := services.NewAuthService(repositories.NewUserRepository(suite.db))
	resp, err := authService.Register(models.RegisterRequest{
		Username: "testadmin",
		Email:    "admin@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	})
	suite.Require().NoError(err)

	suite.token = resp.Token
	suite.userID = resp.User.ID
}

func (suite *IntegrationTestSuite) request(method, target string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) seedArticle(title string, status models.ArticleStatus, articleType string) models.Article {
	article := models.Article{
		Title:    title,
		Type:     articleType,
		Status:   status,
		AuthorID: suite.userID,
		Content:  "# " + title,
	}
	suite.Require().NoError(suite.db.Create(&article).Error)
	return article
}

func (suite *IntegrationTestSuite) TestAuthFlow() {
	registerPayload := models.RegisterRequest{
		Username: "student1",
		Email:    "student1@example.com",
		Password: "password123",
		Role:     models.RoleAdmin,
	}

	w := suite.request("POST", "/api/v1/auth/register", registerPayload, "")
	suite.Equal(http.StatusOK, w.Code)

	var registerResp envelope[models.AuthResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &registerResp))
	// public registration never grants staff roles
	suite.Equal(models.RoleStudent, registerResp.Data.User.Role)

	w = suite.request("POST", "/api/v1/auth/login", models.LoginRequest{Username: "student1", Password: "password123"}, "")
	suite.Equal(http.StatusOK, w.Code)

	var loginResp envelope[models.AuthResponse]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &loginResp))
	suite.NotEmpty(loginResp.Data.Token)
	suite.Equal("student1", loginResp.Data.User.Username)

	// students are not allowed into the back office API
	w = suite.request("GET", "/api/v1/articles", nil, loginResp.Data.Token)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request("POST", "/api/v1/auth/login", models.LoginRequest{Username: "student1", Password: "wrong"}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.request("POST", "/api/v1/auth/register", registerPayload, "")
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *IntegrationTestSuite) TestGetProfile() {
	w := suite.request("GET", "/api/v1/profile", nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var profileResp envelope[models.User]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &profileResp))
	suite.Equal("testadmin", profileResp.Data.Username)

	w = suite.request("GET", "/api/v1/profile", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *IntegrationTestSuite) TestCreateAndGetArticle() {
	createPayload := models.CreateArticleRequest{
		Title:   "Test Article",
		Content: "This is **test** content",
	}

	w := suite.request("POST", "/api/v1/articles", createPayload, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var createResp envelope[models.Article]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &createResp))
	article := createResp.Data

	suite.Equal("Test Article", article.Title)
	suite.Equal(services.DefaultArticleType, article.Type)
	suite.Equal(models.ArticleStatusDraft, article.Status)
	suite.Equal(suite.userID, article.AuthorID)

	w = suite.request("GET", fmt.Sprintf("/api/v1/articles/%d", article.ID), nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var getResp envelope[models.Article]
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &getResp))
	suite.Equal(article.ID, getResp.Data.ID)
	suite.Equal("testadmin", getResp.Data.Author.Username)

	w = suite.request("POST", "/api/v1/articles", models.CreateArticleRequest{Content: "no title"}, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestListArticles() {
	suite.seedArticle("Beta", models.ArticleStatusDraft, "news")
	suite.seedArticle("Alpha", models.ArticleStatusDraft, "news")
	suite.seedArticle("Gamma", models.ArticleStatusPublish, "news")
	suite.seedArticle("Delta", models.ArticleStatusDraft, "blog")

	q := url.Values{
		"type":      {"news"},
		"filters":   {`{"status":["draft"]}`},
		"sortField": {"title"},
		"sortOrder": {"ascend"},
	}
	w := suite.request("GET", "/api/v1/articles?"+q.Encode(), nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var list models.ArticleListResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Equal(int64(2), list.Meta.Total)
	suite.Equal(1, list.Meta.CurrentPage)
	suite.Require().Len(list.Articles, 2)
	suite.Equal("Alpha", list.Articles[0].Title)
	suite.Equal("Beta", list.Articles[1].Title)
	suite.Equal("testadmin", list.Articles[0].Author.Username)

	q = url.Values{"search": {"gam"}, "per": {"1"}}
	w = suite.request("GET", "/api/v1/articles?"+q.Encode(), nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Equal(int64(1), list.Meta.Total)
	suite.Require().Len(list.Articles, 1)
	suite.Equal("Gamma", list.Articles[0].Title)

	q = url.Values{"per": {"2"}, "page": {"2"}}
	w = suite.request("GET", "/api/v1/articles?"+q.Encode(), nil, suite.token)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Equal(int64(4), list.Meta.Total)
	suite.Equal(2, list.Meta.TotalPages)
	suite.Len(list.Articles, 2)
	suite.NotEmpty(list.Meta.Links.Previous)
	suite.Empty(list.Meta.Links.Next)
}

func (suite *IntegrationTestSuite) TestListArticlesBadFilters() {
	w := suite.request("GET", "/api/v1/articles?filters=%5B1%5D", nil, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)

	var failure models.FailureResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &failure))
	suite.NotEmpty(failure.Message)
}

func (suite *IntegrationTestSuite) TestArticleStatusAndDelete() {
	article := suite.seedArticle("Moderated", models.ArticleStatusDraft, "news")
	path := fmt.Sprintf("/api/v1/articles/%d", article.ID)

	w := suite.request("PUT", path+"/status", models.UpdateArticleStatusRequest{Status: models.ArticleStatusPinned}, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var stored models.Article
	suite.NoError(suite.db.First(&stored, article.ID).Error)
	suite.Equal(models.ArticleStatusPinned, stored.Status)

	w = suite.request("PUT", path+"/status", map[string]string{"status": "archived"}, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request("DELETE", path, nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request("GET", path, nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request("DELETE", path, nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestUsers() {
	authService := services.NewAuthService(repositories.NewUserRepository(suite.db))
	coach, err := authService.Register(models.RegisterRequest{
		Username: "coachkim",
		Email:    "kim@example.com",
		Password: "password123",
		Role:     models.RoleCoach,
	})
	suite.Require().NoError(err)

	q := url.Values{"filters": {`{"role":["coach"]}`}}
	w := suite.request("GET", "/api/v1/users?"+q.Encode(), nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	var list models.UserListResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Equal(int64(1), list.Meta.Total)
	suite.Require().Len(list.Users, 1)
	suite.Equal("coachkim", list.Users[0].Username)
	suite.NotContains(w.Body.String(), "password")

	w = suite.request("GET", "/api/v1/users?search=EXAMPLE.COM", nil, suite.token)
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Equal(int64(2), list.Meta.Total)

	w = suite.request("PUT", fmt.Sprintf("/api/v1/users/%d/status", coach.User.ID), models.UpdateUserStatusRequest{Status: models.UserStatusRetire}, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	// an admin cannot delete their own account
	w = suite.request("DELETE", fmt.Sprintf("/api/v1/users/%d", suite.userID), nil, suite.token)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.request("DELETE", fmt.Sprintf("/api/v1/users/%d", coach.User.ID), nil, suite.token)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request("GET", fmt.Sprintf("/api/v1/users/%d", coach.User.ID), nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestDashboard() {
	suite.seedArticle("Front page", models.ArticleStatusPublish, "news")

	form := url.Values{"username": {"testadmin"}, "password": {"password123"}}
	req := httptest.NewRequest("POST", "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusSeeOther, w.Code)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == config.JWTCookieName {
			session = c
		}
	}
	suite.Require().NotNil(session)

	req = httptest.NewRequest("GET", "/admin/articles/news", nil)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Front page")
	suite.Contains(w.Body.String(), "Published")

	req = httptest.NewRequest("GET", "/admin/users/list", nil)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "admin@example.com")
}

func (suite *IntegrationTestSuite) TestHealthAndMetrics() {
	w := suite.request("GET", "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	suite.request("GET", "/api/v1/articles", nil, suite.token)
	w = suite.request("GET", "/metrics", nil, "")
	suite.Equal(http.StatusOK, w.Code)
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"channelhub/handlers"
	"channelhub/middleware"
	"channelhub/models"
	"channelhub/repositories"
	"channelhub/services"
)

// memoryTokenRepository stands in for redis so the suite only needs postgres.
type memoryTokenRepository struct {
	mu      sync.Mutex
	revoked map[string]struct{}
}

func newMemoryTokenRepository() *memoryTokenRepository {
	return &memoryTokenRepository{revoked: map[string]struct{}{}}
}

func (r *memoryTokenRepository) Blacklist(_ context.Context, jti string, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[jti] = struct{}{}
	return nil
}

func (r *memoryTokenRepository) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[jti]
	return ok, nil
}

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine

	adminToken  string
	readerToken string
}

func (suite *IntegrationTestSuite) SetupSuite() {
	dsn := "host=localhost port=5432 user=postgres password=postgres dbname=channelhub_test sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		suite.T().Skip("test database unavailable:", err)
	}

	suite.db = db

	_ = db.Migrator().DropTable(
		&models.Favorite{}, &models.Subscription{}, &models.Comment{},
		&models.Article{}, &models.Channel{}, &models.User{},
	)
	if err := db.AutoMigrate(
		&models.User{}, &models.Channel{}, &models.Article{},
		&models.Comment{}, &models.Subscription{}, &models.Favorite{},
	); err != nil {
		suite.T().Fatal("failed to migrate test database:", err)
	}

	suite.setupRouter()
	suite.setupUsers()
}

func (suite *IntegrationTestSuite) setupRouter() {
	gin.SetMode(gin.TestMode)

	userRepo := repositories.NewUserRepository(suite.db)
	channelRepo := repositories.NewChannelRepository(suite.db)
	articleRepo := repositories.NewArticleRepository(suite.db)
	commentRepo := repositories.NewCommentRepository(suite.db)
	subscriptionRepo := repositories.NewSubscriptionRepository(suite.db)
	favoriteRepo := repositories.NewFavoriteRepository(suite.db)
	tokenRepo := newMemoryTokenRepository()

	authService := services.NewAuthService(userRepo, tokenRepo)
	channelService := services.NewChannelService(channelRepo, articleRepo, subscriptionRepo, userRepo)
	articleService := services.NewArticleService(articleRepo, channelRepo, favoriteRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo, userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	channelHandler := handlers.NewChannelHandler(channelService)
	articleHandler := handlers.NewArticleHandler(articleService)
	commentHandler := handlers.NewCommentHandler(commentService)

	router := gin.New()

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", authHandler.Register)
			user.POST("/login", authHandler.Login)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(tokenRepo))
		{
			protected.GET("/user/logout", authHandler.Logout)
			protected.GET("/user/profile", authHandler.GetProfile)

			protected.GET("/channels", channelHandler.ListChannels)
			protected.GET("/channel/:cid", channelHandler.GetChannel)
			protected.POST("/channel/create", channelHandler.CreateChannel)
			protected.POST("/channel/delete/:cid", channelHandler.DisableChannel)
			protected.GET("/subscribe/:cid", channelHandler.Subscribe)
			protected.GET("/unsubscribe/:cid", channelHandler.Unsubscribe)

			protected.GET("/articles", articleHandler.ListArticles)
			protected.GET("/article/:aid", articleHandler.GetArticle)
			protected.POST("/article/post/:cid", articleHandler.SubmitArticle)
			protected.GET("/article/accept/:aid", articleHandler.AcceptArticle)
			protected.GET("/article/reject/:aid", articleHandler.RejectArticle)
			protected.POST("/article/delete/:aid", articleHandler.DisableArticle)
			protected.GET("/article/requests", articleHandler.ListPendingRequests)
			protected.GET("/article/requests/:cid", articleHandler.ListPendingRequests)
			protected.GET("/like/:aid", articleHandler.Like)
			protected.GET("/unlike/:aid", articleHandler.Unlike)

			protected.GET("/subscriptions", articleHandler.SubscriptionFeed)
			protected.GET("/favorites/:limit", articleHandler.FavoritesFeed)

			protected.GET("/article/comments/:aid", commentHandler.ListComments)
			protected.POST("/article/comment/:aid", commentHandler.PostComment)
			protected.GET("/article/comments/delete/:aid/:coid", commentHandler.DeleteComment)
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) setupUsers() {
	suite.adminToken = suite.register("boss", "admin-pass")
	suite.readerToken = suite.register("alice", "reader-pass")

	// Promote boss; registration always creates plain readers
	err := suite.db.Model(&models.User{}).
		Where("username = ?", "boss").
		Update("role", models.RoleAdmin|models.RoleReader).Error
	suite.Require().NoError(err)

	// Re-login so later requests carry a token for the promoted account
	suite.adminToken = suite.login("boss", "admin-pass")
}

func (suite *IntegrationTestSuite) register(username, password string) string {
	w := suite.do("POST", "/api/user/register", map[string]interface{}{
		"username": username,
		"password": password,
	}, "")
	suite.Require().Equal(http.StatusCreated, w.Code)
	return suite.tokenFrom(w)
}

func (suite *IntegrationTestSuite) login(username, password string) string {
	w := suite.do("POST", "/api/user/login", map[string]interface{}{
		"username": username,
		"password": password,
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	return suite.tokenFrom(w)
}

func (suite *IntegrationTestSuite) tokenFrom(w *httptest.ResponseRecorder) string {
	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().NotEmpty(body.Data.Token)
	return body.Data.Token
}

func (suite *IntegrationTestSuite) do(method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) decodeData(w *httptest.ResponseRecorder, out interface{}) {
	var body struct {
		Data json.RawMessage `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().NoError(json.Unmarshal(body.Data, out))
}

func (suite *IntegrationTestSuite) createChannel(name string) uint {
	w := suite.do("POST", "/api/channel/create", map[string]interface{}{
		"name":        name,
		"description": "test channel",
	}, suite.adminToken)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var data struct {
		CID uint `json:"cid"`
	}
	suite.decodeData(w, &data)
	return data.CID
}

func (suite *IntegrationTestSuite) listArticles(cid uint) []map[string]interface{} {
	w := suite.do("GET", fmt.Sprintf("/api/articles?cid=%d", cid), nil, suite.readerToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	var articles []map[string]interface{}
	suite.decodeData(w, &articles)
	return articles
}

func (suite *IntegrationTestSuite) TestModerationLifecycle() {
	cid := suite.createChannel("news")

	// A reader submission enters the review queue
	w := suite.do("POST", fmt.Sprintf("/api/article/post/%d", cid), map[string]interface{}{
		"title":   "Hi",
		"content": "world",
	}, suite.readerToken)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var submitted struct {
		AID    uint `json:"aid"`
		Status int  `json:"status"`
	}
	suite.decodeData(w, &submitted)
	suite.Equal(9, submitted.Status)

	// Pending articles are hidden from everyone on the general listing
	suite.Empty(suite.listArticles(cid))

	// ...but visible to an admin on the moderation queue
	w = suite.do("GET", "/api/article/requests", nil, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	var pending []map[string]interface{}
	suite.decodeData(w, &pending)
	suite.Len(pending, 1)

	// The moderation queue is admin-only
	w = suite.do("GET", "/api/article/requests", nil, suite.readerToken)
	suite.Equal(http.StatusUnauthorized, w.Code)

	// Accepting publishes the article
	w = suite.do("GET", fmt.Sprintf("/api/article/accept/%d", submitted.AID), nil, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Len(suite.listArticles(cid), 1)

	// Disabling removes it for good
	w = suite.do("POST", fmt.Sprintf("/api/article/delete/%d", submitted.AID), nil, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Empty(suite.listArticles(cid))

	// A later accept reports the removal instead of succeeding
	w = suite.do("GET", fmt.Sprintf("/api/article/accept/%d", submitted.AID), nil, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	var outcome struct {
		Changed bool   `json:"changed"`
		Message string `json:"message"`
	}
	suite.decodeData(w, &outcome)
	suite.False(outcome.Changed)
	suite.Equal("article already removed", outcome.Message)
}

func (suite *IntegrationTestSuite) TestAdminSubmissionSkipsReview() {
	cid := suite.createChannel("announcements")

	w := suite.do("POST", fmt.Sprintf("/api/article/post/%d", cid), map[string]interface{}{
		"title":   "Launch",
		"content": "we are live",
	}, suite.adminToken)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var submitted struct {
		AID    uint `json:"aid"`
		Status int  `json:"status"`
	}
	suite.decodeData(w, &submitted)
	suite.Equal(1, submitted.Status)

	suite.Len(suite.listArticles(cid), 1)
}

func (suite *IntegrationTestSuite) TestDisabledChannelHidesArticles() {
	cid := suite.createChannel("shortlived")

	w := suite.do("POST", fmt.Sprintf("/api/article/post/%d", cid), map[string]interface{}{
		"title":   "gone soon",
		"content": "text",
	}, suite.adminToken)
	suite.Require().Equal(http.StatusCreated, w.Code)

	suite.Len(suite.listArticles(cid), 1)

	w = suite.do("POST", fmt.Sprintf("/api/channel/delete/%d", cid), nil, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	// Admins see nothing either; the general listing never bypasses the
	// Disabled filter
	suite.Empty(suite.listArticles(cid))
	w = suite.do("GET", fmt.Sprintf("/api/channel/%d", cid), nil, suite.adminToken)
	suite.Equal(http.StatusNotFound, w.Code)

	// Submitting to a disabled channel fails
	w = suite.do("POST", fmt.Sprintf("/api/article/post/%d", cid), map[string]interface{}{
		"title":   "too late",
		"content": "text",
	}, suite.readerToken)
	suite.Equal(http.StatusNotFound, w.Code)

	// Disabling again is a no-op with a distinct message
	w = suite.do("POST", fmt.Sprintf("/api/channel/delete/%d", cid), nil, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	var outcome struct {
		Changed bool   `json:"changed"`
		Message string `json:"message"`
	}
	suite.decodeData(w, &outcome)
	suite.False(outcome.Changed)
	suite.Equal("channel already removed", outcome.Message)
}

func (suite *IntegrationTestSuite) TestSubscriptionsAndFavorites() {
	cid := suite.createChannel("subs")

	w := suite.do("POST", fmt.Sprintf("/api/article/post/%d", cid), map[string]interface{}{
		"title":   "feed me",
		"content": "text",
	}, suite.adminToken)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var submitted struct {
		AID uint `json:"aid"`
	}
	suite.decodeData(w, &submitted)

	// Subscribe, then again: second call is benign
	w = suite.do("GET", fmt.Sprintf("/api/subscribe/%d", cid), nil, suite.readerToken)
	suite.Equal(http.StatusCreated, w.Code)
	w = suite.do("GET", fmt.Sprintf("/api/subscribe/%d", cid), nil, suite.readerToken)
	suite.Equal(http.StatusOK, w.Code)

	// The feed carries the published article
	w = suite.do("GET", "/api/subscriptions", nil, suite.readerToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	var feed []map[string]interface{}
	suite.decodeData(w, &feed)
	suite.NotEmpty(feed)

	// A zero limit yields an empty feed, not an error
	w = suite.do("GET", "/api/subscriptions?limit=0", nil, suite.readerToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &feed)
	suite.Empty(feed)

	// Like twice: second call is benign
	w = suite.do("GET", fmt.Sprintf("/api/like/%d", submitted.AID), nil, suite.readerToken)
	suite.Equal(http.StatusCreated, w.Code)
	w = suite.do("GET", fmt.Sprintf("/api/like/%d", submitted.AID), nil, suite.readerToken)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do("GET", "/api/favorites/20", nil, suite.readerToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &feed)
	suite.Len(feed, 1)
}

func (suite *IntegrationTestSuite) TestCommentsLifecycle() {
	cid := suite.createChannel("talk")

	w := suite.do("POST", fmt.Sprintf("/api/article/post/%d", cid), map[string]interface{}{
		"title":   "discuss",
		"content": "text",
	}, suite.adminToken)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var submitted struct {
		AID uint `json:"aid"`
	}
	suite.decodeData(w, &submitted)

	w = suite.do("POST", fmt.Sprintf("/api/article/comment/%d", submitted.AID), map[string]interface{}{
		"comment": "first!",
	}, suite.readerToken)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var posted struct {
		COID uint `json:"coid"`
	}
	suite.decodeData(w, &posted)

	w = suite.do("GET", fmt.Sprintf("/api/article/comments/%d", submitted.AID), nil, suite.readerToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	var comments []map[string]interface{}
	suite.decodeData(w, &comments)
	suite.Len(comments, 1)

	// Moderation removal is a hard delete, admin only
	w = suite.do("GET", fmt.Sprintf("/api/article/comments/delete/%d/%d", submitted.AID, posted.COID), nil, suite.readerToken)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do("GET", fmt.Sprintf("/api/article/comments/delete/%d/%d", submitted.AID, posted.COID), nil, suite.adminToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do("GET", fmt.Sprintf("/api/article/comments/%d", submitted.AID), nil, suite.readerToken)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decodeData(w, &comments)
	suite.Empty(comments)
}

func (suite *IntegrationTestSuite) TestLogoutRevokesToken() {
	token := suite.login("alice", "reader-pass")

	w := suite.do("GET", "/api/user/logout", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do("GET", "/api/user/profile", nil, token)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

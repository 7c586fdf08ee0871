package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clarifai/internal/auth"
	"clarifai/internal/classifier"
	"clarifai/internal/factcheck"
	"clarifai/internal/models"
	"clarifai/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

type fixedClassifier struct {
	label classifier.Label
}

func (f fixedClassifier) Classify(ctx context.Context, text string) (classifier.Prediction, error) {
	return classifier.Prediction{Label: f.label, Confidence: 0.95}, nil
}

type fixedSearcher struct {
	reviews []factcheck.ClaimReview
	err     error
}

func (f fixedSearcher) Search(ctx context.Context, query string) ([]factcheck.ClaimReview, error) {
	return f.reviews, f.err
}

func postJSON(router *gin.Engine, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckFact(t *testing.T) {
	db := setupTestDB(t)
	handler := NewFactCheckHandler(db, services.NewVerdictService(db, fixedClassifier{label: classifier.LabelFake}))

	router := gin.New()
	router.POST("/api/fact-check", handler.CheckFact)

	w := postJSON(router, "/api/fact-check", gin.H{"content": "The moon landing was faked"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "The moon landing was faked", resp["content"])
	assert.Equal(t, models.VerdictFake, resp["verdict"])
	assert.Equal(t, services.OriginModel, resp["source"])

	// Second submission of the same claim comes from the database
	w = postJSON(router, "/api/fact-check", gin.H{"content": "the moon landing was faked  "}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, services.OriginDatabase, resp["source"])
}

func TestCheckFactEmptyContent(t *testing.T) {
	db := setupTestDB(t)
	handler := NewFactCheckHandler(db, services.NewVerdictService(db, fixedClassifier{label: classifier.LabelGenuine}))

	router := gin.New()
	router.POST("/api/fact-check", handler.CheckFact)

	for _, body := range []gin.H{{"content": ""}, {"content": "   "}, {}} {
		w := postJSON(router, "/api/fact-check", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["error"])
	}
}

func TestGetReport(t *testing.T) {
	searcher := fixedSearcher{
		reviews: []factcheck.ClaimReview{
			{Claim: "c", FactChecker: "Snopes", Rating: "false", URL: "https://snopes.com", SeverityScore: 10},
		},
	}
	handler := NewReportHandler(services.NewReportService(searcher, factcheck.NewReportCache(time.Minute)))

	router := gin.New()
	router.GET("/api/report", handler.GetReport)

	req := httptest.NewRequest(http.MethodGet, "/api/report?query=vaccines+cause+autism", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		factcheck.Report
		Sentiment struct {
			Positive int `json:"positive"`
			Neutral  int `json:"neutral"`
			Negative int `json:"negative"`
		} `json:"sentiment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.CredibilityScore)
	assert.Equal(t, factcheck.LabelInconclusive, resp.OverallLabel)
	assert.Equal(t, 100, resp.Sentiment.Positive+resp.Sentiment.Neutral+resp.Sentiment.Negative)
}

func TestGetReportErrors(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		handler := NewReportHandler(services.NewReportService(fixedSearcher{}, nil))
		router := gin.New()
		router.GET("/api/report", handler.GetReport)

		req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		handler := NewReportHandler(services.NewReportService(fixedSearcher{err: factcheck.ErrUpstream}, nil))
		router := gin.New()
		router.GET("/api/report", handler.GetReport)

		req := httptest.NewRequest(http.MethodGet, "/api/report?query=anything", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestSignupAndLogin(t *testing.T) {
	db := setupTestDB(t)
	authService := auth.NewService("test-secret")
	handler := NewAuthHandler(db, authService)

	router := gin.New()
	router.POST("/api/auth/signup", handler.Signup)
	router.POST("/api/auth/login", handler.Login)

	w := postJSON(router, "/api/auth/signup", gin.H{
		"username": "alex",
		"email":    "alex@example.com",
		"password": "hunter22",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email is rejected by the unique index
	w = postJSON(router, "/api/auth/signup", gin.H{
		"username": "other",
		"email":    "Alex@Example.com",
		"password": "different",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(router, "/api/auth/login", gin.H{
		"email":    "alex@example.com",
		"password": "hunter22",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	w = postJSON(router, "/api/auth/login", gin.H{
		"email":    "alex@example.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitFeedback(t *testing.T) {
	db := setupTestDB(t)
	authService := auth.NewService("test-secret")

	user := models.User{ID: uuid.New(), Username: "alex", Email: "alex@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := authService.IssueToken(user.ID)
	require.NoError(t, err)

	handler := NewFeedbackHandler(db)
	router := gin.New()
	router.POST("/api/feedback", authService.Middleware(), handler.Submit)

	t.Run("unauthenticated", func(t *testing.T) {
		w := postJSON(router, "/api/feedback", gin.H{"accuracy": 4, "experience": 5}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid", func(t *testing.T) {
		w := postJSON(router, "/api/feedback", gin.H{
			"accuracy":   4,
			"experience": 5,
			"comments":   "helpful",
		}, map[string]string{"Authorization": "Bearer " + token})
		require.Equal(t, http.StatusCreated, w.Code)

		var count int64
		db.Model(&models.Feedback{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("out of range", func(t *testing.T) {
		w := postJSON(router, "/api/feedback", gin.H{
			"accuracy":   6,
			"experience": 0,
		}, map[string]string{"Authorization": "Bearer " + token})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

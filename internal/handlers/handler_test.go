package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"quizzer/internal/config"
	"quizzer/internal/models"
	"quizzer/internal/repository"
	"quizzer/internal/services"
	"quizzer/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func setupTestHandler() (*Handler, *gorm.DB) {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&models.User{}, &models.Quiz{}, &models.AuditLog{})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		SessionSecret: "test-secret-12345678901234567890123456789012",
		BaseURL:       "http://localhost:8080",
	}

	users := repository.NewUserRepository(db)
	quizzes := repository.NewQuizRepository(db)
	audit := services.NewAuditService(db, logger)
	quizSvc := services.NewQuizService(quizzes, audit)
	qr := services.NewQRService()

	// Use a dummy redis client (not connected) with no retries
	rdb := redis.NewClient(&redis.Options{
		Addr:       "localhost:1",
		MaxRetries: -1,
	})

	h := NewHandler(cfg, logger, rdb, users, quizzes, quizSvc, audit, qr)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil, "../../web/templates/*.html", "../../web/static")
}

// createTestUser inserts a user with the given password and returns the row.
func createTestUser(t *testing.T, db *gorm.DB, username, password string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{Username: username, PasswordHash: hash}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// loginAs posts the login form and returns the session cookie.
func loginAs(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	form := url.Values{}
	form.Add("username", username)
	form.Add("password", password)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	cookie := w.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatalf("login did not set a session cookie (status %d)", w.Code)
	}
	return cookie
}

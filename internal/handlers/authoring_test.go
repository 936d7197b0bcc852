package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quizzer/internal/models"
	"quizzer/internal/services"

	"github.com/stretchr/testify/assert"
)

func postJSON(r http.Handler, path, body, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	r.ServeHTTP(w, req)
	return w
}

const twoQuestionsJSON = `[
	{"prompt": "Capital of France?", "options": ["Paris", "Lyon"], "answer": 0},
	{"prompt": "Capital of Italy?", "options": ["Milan", "Rome"], "answer": 1}
]`

func TestQuizShellCreation(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)

	createTestUser(t, db, "alice", "password123")
	cookie := loginAs(t, r, "alice", "password123")

	t.Run("Show Create Form", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/create", nil)
		req.Header.Set("Cookie", cookie)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Forwards To Question Editor", func(t *testing.T) {
		form := url.Values{}
		form.Add("quiz_name", "Capitals")
		form.Add("thumbnail", "https://example.com/t.jpg")
		w := postForm(r, "/create", form, cookie)

		assert.Equal(t, http.StatusFound, w.Code)
		loc := w.Header().Get("Location")
		assert.True(t, strings.HasPrefix(loc, "/create-questions?"))
		assert.Contains(t, loc, "author=alice")
		assert.Contains(t, loc, "name=Capitals")

		// Nothing persisted yet
		var count int64
		db.Model(&models.Quiz{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Blank Thumbnail Gets Placeholder", func(t *testing.T) {
		form := url.Values{}
		form.Add("quiz_name", "Capitals")
		form.Add("thumbnail", "   ")
		w := postForm(r, "/create", form, cookie)

		assert.Equal(t, http.StatusFound, w.Code)
		loc, err := url.Parse(w.Header().Get("Location"))
		assert.NoError(t, err)
		assert.Equal(t, services.PlaceholderThumbnail, loc.Query().Get("thumbnail"))
	})
}

func TestQuestionEditor(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)

	createTestUser(t, db, "alice", "password123")
	cookie := loginAs(t, r, "alice", "password123")

	editorURL := "/create-questions?name=Capitals&thumbnail=https%3A%2F%2Fexample.com%2Ft.jpg&author=alice"

	t.Run("GET Author Mismatch Is Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/create-questions?name=X&thumbnail=Y&author=bob", nil)
		req.Header.Set("Cookie", cookie)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Page Not Found")
	})

	t.Run("GET Own Editor", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", editorURL, nil)
		req.Header.Set("Cookie", cookie)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Capitals")
	})

	t.Run("POST Creates Quiz", func(t *testing.T) {
		w := postJSON(r, editorURL, twoQuestionsJSON, cookie)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", w.Body.String())

		var quiz models.Quiz
		assert.NoError(t, db.Where("name = ?", "Capitals").First(&quiz).Error)
		assert.Equal(t, "alice", quiz.Author)
		assert.Equal(t, 2, quiz.TotalQuestions)
		assert.Len(t, quiz.Questions, 2)
	})

	t.Run("POST Malformed JSON Fails", func(t *testing.T) {
		w := postJSON(r, editorURL, `{"not": "a list"`, cookie)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "fail", w.Body.String())
	})

	t.Run("POST Invalid Question Fails", func(t *testing.T) {
		bad := `[{"prompt": "Q", "options": ["only one"], "answer": 0}]`
		w := postJSON(r, "/create-questions?name=Bad&thumbnail=x&author=alice", bad, cookie)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "fail", w.Body.String())

		var count int64
		db.Model(&models.Quiz{}).Where("name = ?", "Bad").Count(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestEditQuiz(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)

	createTestUser(t, db, "alice", "password123")
	cookie := loginAs(t, r, "alice", "password123")

	quiz := models.Quiz{
		Name: "Capitals", Author: "alice", Thumbnail: "x", TotalQuestions: 1,
		Questions: models.QuestionList{{Prompt: "Capital of France?", Options: []string{"Paris", "Lyon"}, Answer: 0}},
	}
	db.Create(&quiz)

	t.Run("GET Editor Prepopulated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/edit/1", nil)
		req.Header.Set("Cookie", cookie)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Capital of France?")
	})

	t.Run("GET Missing Quiz Is Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/edit/999", nil)
		req.Header.Set("Cookie", cookie)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET Non-Numeric Id Is Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/edit/abc", nil)
		req.Header.Set("Cookie", cookie)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("POST Overwrites Questions", func(t *testing.T) {
		w := postJSON(r, "/edit/1", twoQuestionsJSON, cookie)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "success", w.Body.String())

		var updated models.Quiz
		db.First(&updated, quiz.ID)
		assert.Equal(t, 2, updated.TotalQuestions)
		assert.Len(t, updated.Questions, 2)
	})

	t.Run("POST Missing Quiz Is Not Found", func(t *testing.T) {
		w := postJSON(r, "/edit/999", twoQuestionsJSON, cookie)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("POST Invalid Questions Fails", func(t *testing.T) {
		w := postJSON(r, "/edit/1", `[{"prompt": "", "options": ["a", "b"], "answer": 0}]`, cookie)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "fail", w.Body.String())

		// Stored questions untouched
		var stored models.Quiz
		db.First(&stored, quiz.ID)
		assert.Equal(t, 2, stored.TotalQuestions)
	})
}

package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"quizzer/internal/models"
	"quizzer/internal/repository"
	"quizzer/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowCreate(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", nil)
}

// HandleCreateForm does not persist anything yet; it forwards the quiz shell
// to the question editor as query parameters.
func (h *Handler) HandleCreateForm(c *gin.Context) {
	user, _ := currentUser(c)

	name := c.PostForm("quiz_name")
	thumbnail := services.NormalizeThumbnail(c.PostForm("thumbnail"))

	params := url.Values{}
	params.Set("name", name)
	params.Set("thumbnail", thumbnail)
	params.Set("author", user.Username)

	c.Redirect(http.StatusFound, "/create-questions?"+params.Encode())
}

func (h *Handler) ShowQuestionEditor(c *gin.Context) {
	user, _ := currentUser(c)

	author := c.Query("author")
	if author != user.Username {
		h.NotFound(c)
		return
	}

	c.HTML(http.StatusOK, "create-questions.html", gin.H{
		"Action":    "create",
		"Name":      c.Query("name"),
		"Thumbnail": c.Query("thumbnail"),
		"Questions": models.QuestionList{},
	})
}

func (h *Handler) HandleCreateQuestions(c *gin.Context) {
	user, _ := currentUser(c)

	var questions []models.Question
	if err := c.ShouldBindJSON(&questions); err != nil {
		h.logger.Warn("malformed question payload", "error", err)
		c.String(http.StatusInternalServerError, "fail")
		return
	}

	_, err := h.quizService.CreateQuiz(services.CreateQuizDTO{
		Name:      c.Query("name"),
		Thumbnail: c.Query("thumbnail"),
		Author:    user.Username,
		Questions: questions,
		IPAddress: c.ClientIP(),
		UserID:    &user.ID,
	})
	if err != nil {
		h.logger.Error("failed to create quiz", "error", err, "author", user.Username)
		c.String(http.StatusInternalServerError, "fail")
		return
	}

	c.String(http.StatusOK, "success")
}

func (h *Handler) ShowEditQuiz(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.NotFound(c)
		return
	}

	quiz, err := h.quizzes.GetByID(uint(id))
	if err != nil {
		h.NotFound(c)
		return
	}

	c.HTML(http.StatusOK, "create-questions.html", gin.H{
		"Action":    "edit",
		"QuizID":    quiz.ID,
		"Name":      quiz.Name,
		"Thumbnail": quiz.Thumbnail,
		"Questions": quiz.Questions,
	})
}

func (h *Handler) HandleEditQuestions(c *gin.Context) {
	user, _ := currentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.NotFound(c)
		return
	}

	var questions []models.Question
	if err := c.ShouldBindJSON(&questions); err != nil {
		h.logger.Warn("malformed question payload", "error", err)
		c.String(http.StatusInternalServerError, "fail")
		return
	}

	if err := h.quizService.UpdateQuestions(uint(id), questions, &user.ID, c.ClientIP()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.NotFound(c)
			return
		}
		h.logger.Error("failed to update quiz", "error", err, "quiz_id", id)
		c.String(http.StatusInternalServerError, "fail")
		return
	}

	h.invalidateQuizCache(c, uint(id))

	c.String(http.StatusOK, "success")
}

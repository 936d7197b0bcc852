package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowDashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	quizzes, err := h.quizzes.ListByAuthor(user.Username)
	if err != nil {
		h.logger.Error("failed to list own quizzes", "error", err, "author", user.Username)
		c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{
			"User":  user,
			"Error": "Failed to load your quizzes",
		})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":         user,
		"Quizzes":      quizzes,
		"TotalQuizzes": len(quizzes),
	})
}

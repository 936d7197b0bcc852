package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowHome(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("user_id")

	c.HTML(http.StatusOK, "index.html", gin.H{
		"User": user,
	})
}

// ShowBrowse lists every quiz in the store, unfiltered.
func (h *Handler) ShowBrowse(c *gin.Context) {
	quizzes, err := h.quizzes.ListAll()
	if err != nil {
		h.logger.Error("failed to list quizzes", "error", err)
		c.HTML(http.StatusInternalServerError, "browse.html", gin.H{"Error": "Failed to load quizzes"})
		return
	}

	session := sessions.Default(c)
	c.HTML(http.StatusOK, "browse.html", gin.H{
		"Quizzes": quizzes,
		"User":    session.Get("user_id"),
	})
}

func (h *Handler) ShowSuccess(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", nil)
}

// NotFound renders the shared 404 page. Also wired as the router's NoRoute
// handler.
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", nil)
}

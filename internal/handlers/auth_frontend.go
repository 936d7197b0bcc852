package handlers

import (
	"errors"
	"net/http"

	"quizzer/internal/models"
	"quizzer/internal/repository"
	"quizzer/internal/services"
	"quizzer/pkg/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	flashes := session.Flashes()
	session.Save()
	c.HTML(http.StatusOK, "login.html", gin.H{"Flashes": flashes})
}

func (h *Handler) HandleLoginForm(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	session := sessions.Default(c)

	user, err := h.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			session.AddFlash("That username does not exist. Sign up instead.")
			session.Save()
			c.Redirect(http.StatusFound, "/create-account")
			return
		}
		h.logger.Error("login lookup failed", "error", err)
		session.AddFlash("Something went wrong. Please try again.")
		session.Save()
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		session.AddFlash("Invalid Username or Password")
		session.Save()
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Failed to save session"})
		return
	}

	h.auditService.LogAction(&user.ID, services.ActionLogin, user.Username, nil, c.ClientIP())

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) ShowCreateAccount(c *gin.Context) {
	session := sessions.Default(c)
	flashes := session.Flashes()
	session.Save()
	c.HTML(http.StatusOK, "create-account.html", gin.H{"Flashes": flashes})
}

func (h *Handler) HandleCreateAccountForm(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	retyped := c.PostForm("retype-password")

	session := sessions.Default(c)

	if password != retyped {
		session.AddFlash("Passwords do not match!")
		session.Save()
		c.Redirect(http.StatusFound, "/create-account")
		return
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "create-account.html", gin.H{"Error": "Failed to hash password"})
		return
	}

	newUser := models.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	if err := h.users.Create(&newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			session.AddFlash("That user already exists! Log in instead.")
			session.Save()
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.HTML(http.StatusInternalServerError, "create-account.html", gin.H{"Error": "Failed to create account"})
		return
	}

	session.Set("user_id", newUser.ID)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "create-account.html", gin.H{"Error": "Failed to save session"})
		return
	}

	h.auditService.LogAction(&newUser.ID, services.ActionRegister, newUser.Username, nil, c.ClientIP())

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	user, _ := currentUser(c)

	session := sessions.Default(c)
	session.Clear()
	session.Save()

	if user != nil {
		h.auditService.LogAction(&user.ID, services.ActionLogout, user.Username, nil, c.ClientIP())
	}

	c.Redirect(http.StatusFound, "/")
}

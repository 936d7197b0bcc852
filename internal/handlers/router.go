package handlers

import (
	"encoding/json"
	"html/template"

	"quizzer/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter, templatePath string, staticPath string) *gin.Engine {
	r := gin.New()
	r.Use(h.RequestLogger(), gin.Recovery())

	r.SetFuncMap(template.FuncMap{
		"json": func(v interface{}) template.JS {
			a, _ := json.Marshal(v)
			return template.JS(a)
		},
	})

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}
	if staticPath != "" {
		r.Static("/static", staticPath)
	}

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("quizzer_session", store))

	// Rate limiting only guards the credential form posts
	limited := func(c *gin.Context) { c.Next() }
	if rateLimiter != nil {
		limited = h.RateLimitMiddleware(rateLimiter)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.GET("/", h.ShowHome)
	r.GET("/browse", h.ShowBrowse)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", limited, h.HandleLoginForm)
	r.GET("/create-account", h.ShowCreateAccount)
	r.POST("/create-account", limited, h.HandleCreateAccountForm)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(h.AuthRequired())
	{
		authorized.GET("/logout", h.Logout)
		authorized.GET("/dashboard", h.ShowDashboard)
		authorized.GET("/success", h.ShowSuccess)
		authorized.GET("/create", h.ShowCreate)
		authorized.POST("/create", h.HandleCreateForm)
		authorized.GET("/create-questions", h.ShowQuestionEditor)
		authorized.POST("/create-questions", h.HandleCreateQuestions)
		authorized.GET("/edit/:id", h.ShowEditQuiz)
		authorized.POST("/edit/:id", h.HandleEditQuestions)
		authorized.GET("/quiz/:id", h.PlayQuiz)
		authorized.GET("/quiz/:id/qr", h.QuizShareQR)
		authorized.GET("/delete/:id", h.DeleteQuiz)
	}

	r.NoRoute(h.NotFound)

	return r
}

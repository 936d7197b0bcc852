package handlers

import (
	"log/slog"

	"quizzer/internal/config"
	"quizzer/internal/repository"
	"quizzer/internal/services"

	"github.com/redis/go-redis/v9"
)

type Handler struct {
	cfg          config.Config
	logger       *slog.Logger
	rdb          *redis.Client
	users        repository.UserRepository
	quizzes      repository.QuizRepository
	quizService  *services.QuizService
	auditService *services.AuditService
	qrService    *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	rdb *redis.Client,
	users repository.UserRepository,
	quizzes repository.QuizRepository,
	quizService *services.QuizService,
	auditService *services.AuditService,
	qrService *services.QRService,
) *Handler {
	return &Handler{
		cfg:          cfg,
		logger:       logger,
		rdb:          rdb,
		users:        users,
		quizzes:      quizzes,
		quizService:  quizService,
		auditService: auditService,
		qrService:    qrService,
	}
}

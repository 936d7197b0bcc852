package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"quizzer/internal/models"
	"quizzer/internal/repository"
)

// PlaceholderThumbnail is used when a quiz is created without one.
const PlaceholderThumbnail = "https://cdn.pixabay.com/photo/2017/07/10/23/43/question-mark-2492009_960_720.jpg"

// ErrInvalidQuestions marks a question payload rejected before persistence,
// as opposed to a storage failure.
var ErrInvalidQuestions = errors.New("invalid questions")

type CreateQuizDTO struct {
	Name      string
	Thumbnail string
	Author    string
	Questions []models.Question
	IPAddress string // For Audit Log
	UserID    *uint
}

type QuizService struct {
	quizzes      repository.QuizRepository
	auditService *AuditService
}

func NewQuizService(quizzes repository.QuizRepository, auditService *AuditService) *QuizService {
	return &QuizService{
		quizzes:      quizzes,
		auditService: auditService,
	}
}

func validateQuestions(questions []models.Question) error {
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("%w: question %d: %v", ErrInvalidQuestions, i, err)
		}
	}
	return nil
}

// NormalizeThumbnail falls back to the placeholder for blank input.
func NormalizeThumbnail(thumbnail string) string {
	if strings.TrimSpace(thumbnail) == "" {
		return PlaceholderThumbnail
	}
	return thumbnail
}

func (s *QuizService) CreateQuiz(dto CreateQuizDTO) (*models.Quiz, error) {
	if err := validateQuestions(dto.Questions); err != nil {
		return nil, err
	}

	newQuiz := models.Quiz{
		Name:           dto.Name,
		Author:         dto.Author,
		Thumbnail:      NormalizeThumbnail(dto.Thumbnail),
		TotalQuestions: len(dto.Questions),
		Questions:      models.QuestionList(dto.Questions),
	}

	if err := s.quizzes.Create(&newQuiz); err != nil {
		return nil, err
	}

	s.auditService.LogAction(dto.UserID, ActionCreateQuiz, strconv.FormatUint(uint64(newQuiz.ID), 10), map[string]interface{}{
		"name":            newQuiz.Name,
		"total_questions": newQuiz.TotalQuestions,
	}, dto.IPAddress)

	return &newQuiz, nil
}

// UpdateQuestions replaces a quiz's question list, keeping total_questions in sync.
func (s *QuizService) UpdateQuestions(id uint, questions []models.Question, userID *uint, ip string) error {
	if err := validateQuestions(questions); err != nil {
		return err
	}

	if err := s.quizzes.UpdateQuestions(id, models.QuestionList(questions)); err != nil {
		return err
	}

	s.auditService.LogAction(userID, ActionUpdateQuiz, strconv.FormatUint(uint64(id), 10), map[string]interface{}{
		"total_questions": len(questions),
	}, ip)

	return nil
}

func (s *QuizService) DeleteQuiz(id uint, userID *uint, ip string) error {
	if err := s.quizzes.Delete(id); err != nil {
		return err
	}

	s.auditService.LogAction(userID, ActionDeleteQuiz, strconv.FormatUint(uint64(id), 10), nil, ip)
	return nil
}

package repository

import (
	"errors"

	"quizzer/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned when creating a user whose username is taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
}

// QuizRepository persists quizzes with their embedded question lists.
type QuizRepository interface {
	Create(quiz *models.Quiz) error
	GetByID(id uint) (*models.Quiz, error)
	ListAll() ([]models.Quiz, error)
	ListByAuthor(author string) ([]models.Quiz, error)
	UpdateQuestions(id uint, questions models.QuestionList) error
	Delete(id uint) error
}

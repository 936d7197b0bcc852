package repository

import (
	"errors"

	"quizzer/internal/models"

	"gorm.io/gorm"
)

type GormQuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *GormQuizRepository {
	return &GormQuizRepository{db: db}
}

func (r *GormQuizRepository) Create(quiz *models.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *GormQuizRepository) GetByID(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := r.db.First(&quiz, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *GormQuizRepository) ListAll() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := r.db.Order("created_at desc").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *GormQuizRepository) ListByAuthor(author string) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := r.db.Where("author = ?", author).Order("created_at desc").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// UpdateQuestions overwrites the question list and keeps total_questions in
// sync with its length.
func (r *GormQuizRepository) UpdateQuestions(id uint, questions models.QuestionList) error {
	result := r.db.Model(&models.Quiz{}).Where("id = ?", id).Updates(map[string]interface{}{
		"questions":       questions,
		"total_questions": len(questions),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormQuizRepository) Delete(id uint) error {
	return r.db.Delete(&models.Quiz{}, id).Error
}

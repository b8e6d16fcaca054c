package repository

import (
	"growthmindz_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// CreateWithAnswers 归档一次已完成的测验及其作答
func (r *AttemptRepository) CreateWithAnswers(attempt *model.QuizAttempt, answers []model.QuizAttemptAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].AttemptID = attempt.ID
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AttemptRepository) ListByUser(userID uint, limit int) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	q := r.DB.Where("user_id = ?", userID).Order("completed_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) GetWithAnswers(attemptID string) (*model.QuizAttempt, []model.QuizAttemptAnswer, error) {
	var attempt model.QuizAttempt
	if err := r.DB.First(&attempt, "id = ?", attemptID).Error; err != nil {
		return nil, nil, err
	}

	var answers []model.QuizAttemptAnswer
	if err := r.DB.Where("attempt_id = ?", attemptID).Find(&answers).Error; err != nil {
		return nil, nil, err
	}

	return &attempt, answers, nil
}

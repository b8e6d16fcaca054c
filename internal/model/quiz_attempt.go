package model

import (
	"time"
)

// QuizAttempt 已完成测验的归档记录。会话本身不跨重启持久化，
// 归档是复盘之外唯一的长期记录。
type QuizAttempt struct {
	UUIDBase
	UserID        uint   `gorm:"index" json:"userId"`
	QuizID        string `gorm:"index;type:varchar(64)" json:"quizId"`
	Total         int    `gorm:"not null" json:"total"`
	Attempted     int    `gorm:"not null" json:"attempted"`
	Correct       int    `gorm:"not null" json:"correct"`
	Score         int    `gorm:"not null" json:"score"`
	GradedLocally bool   `gorm:"default:false" json:"gradedLocally"` // 评分服务不可达时本地兜底
	IsTimeout     bool   `gorm:"default:false" json:"isTimeout"`
	CompletedAt   time.Time `json:"completedAt"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizAttemptAnswer 归档的单题作答
type QuizAttemptAnswer struct {
	UUIDBase
	AttemptID    string `gorm:"index;type:varchar(36)" json:"attemptId"`
	QuestionID   string `gorm:"type:varchar(64)" json:"questionId"`
	QuestionText string `json:"questionText"`
	UserAnswer   string `json:"userAnswer"`
	IsCorrect    bool   `json:"isCorrect"`
}

func (QuizAttemptAnswer) TableName() string {
	return "quiz_attempt_answers"
}

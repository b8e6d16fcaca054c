package model

// Question 题库下发的单选题。CorrectAnswer 必须是 Options 之一；
// 不满足校验规则的记录在边界处被过滤，不会进入会话。
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"answer"`
}

// HasOption 判断选项是否属于该题
func (q *Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// GradeResult 评分汇总，远程评分和本地兜底评分共用同一结构
type GradeResult struct {
	Total     int `json:"total"`
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
	Score     int `json:"score"`
}

// AnswerDetail 评分服务返回的单题判定
type AnswerDetail struct {
	QuestionID string `json:"questionId"`
	IsCorrect  bool   `json:"isCorrect"`
}

// ReviewStatus 复盘页的单题状态。未作答与答错是两种不同状态。
type ReviewStatus string

const (
	ReviewCorrect      ReviewStatus = "correct"
	ReviewIncorrect    ReviewStatus = "incorrect"
	ReviewNotAttempted ReviewStatus = "not_attempted"
)

// ReviewItem 复盘页单题渲染数据
type ReviewItem struct {
	QuestionID    string       `json:"questionId"`
	Text          string       `json:"question"`
	Options       []string     `json:"options"`
	UserAnswer    string       `json:"userAnswer,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Status        ReviewStatus `json:"status"`
}

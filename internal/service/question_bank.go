package service

import (
	"context"
	"encoding/json"
	"fmt"
	"growthmindz_backend/internal/config"
	"growthmindz_backend/internal/model"
	"io"
	"net/http"
	"net/url"
)

// QuestionSource 题库协作方。实现负责取回并过滤原始题目记录。
type QuestionSource interface {
	FetchQuestions(ctx context.Context, quizID string, max int) ([]model.Question, error)
}

// QuestionBankService 通过HTTP从外部题库取题
type QuestionBankService struct {
	config config.QuestionBankConfig
	client *http.Client
}

func NewQuestionBankService(cfg config.QuestionBankConfig) *QuestionBankService {
	return &QuestionBankService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

// rawQuestion 题库的原始记录，形状不可信，进入核心前必须过滤。
// id 在历史数据里既有数字也有字符串。
type rawQuestion struct {
	ID       interface{} `json:"id"`
	Question string      `json:"question"`
	Options  []string    `json:"options"`
	Answer   string      `json:"answer"`
}

func (s *QuestionBankService) FetchQuestions(ctx context.Context, quizID string, max int) ([]model.Question, error) {
	endpoint := fmt.Sprintf("%s/questions?qid=%s", s.config.BaseURL, url.QueryEscape(quizID))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("question bank error (status %d): %s", resp.StatusCode, string(body))
	}

	var raw []rawQuestion
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	return normalizeQuestions(raw, max), nil
}

// normalizeQuestions 丢弃缺 id、缺题干或没有选项的记录，
// 截取前 max 条有效题目。没有任何内置兜底题目。
func normalizeQuestions(raw []rawQuestion, max int) []model.Question {
	cleaned := make([]model.Question, 0, len(raw))
	for _, r := range raw {
		id := stringifyID(r.ID)
		if id == "" || r.Question == "" || len(r.Options) == 0 {
			continue
		}
		cleaned = append(cleaned, model.Question{
			ID:            id,
			Text:          r.Question,
			Options:       r.Options,
			CorrectAnswer: r.Answer,
		})
		if len(cleaned) == max {
			break
		}
	}
	return cleaned
}

func stringifyID(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		// JSON 数字统一解码为 float64
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprint(id)
	}
}

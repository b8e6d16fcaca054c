package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"growthmindz_backend/internal/config"
	"growthmindz_backend/internal/model"
	"io"
	"net/http"
)

// GradingSubmission 交给评分服务的完整载荷
type GradingSubmission struct {
	Answers   map[string]string `json:"answers"`
	Questions []model.Question  `json:"questions"`
	UserID    *uint             `json:"userId"`
	QuizID    string            `json:"qid"`
}

// Grader 评分协作方。任何失败（网络、非2xx、坏响应）都由调用方
// 降级为本地评分，调用方不会因此中断交卷流程。
type Grader interface {
	Grade(ctx context.Context, sub GradingSubmission) (*model.GradeResult, []model.AnswerDetail, error)
}

// GradingService 外部评分服务的HTTP客户端
type GradingService struct {
	config config.GradingConfig
	client *http.Client
}

func NewGradingService(cfg config.GradingConfig) *GradingService {
	return &GradingService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
	}
}

type gradingResponse struct {
	Results *model.GradeResult   `json:"results"`
	Details []model.AnswerDetail `json:"details"`
}

func (s *GradingService) Grade(ctx context.Context, sub GradingSubmission) (*model.GradeResult, []model.AnswerDetail, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/submit", bytes.NewBuffer(payload))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, nil, fmt.Errorf("grading service error (status %d): %s", resp.StatusCode, string(body))
	}

	var gr gradingResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, nil, err
	}
	if gr.Results == nil {
		return nil, nil, fmt.Errorf("grading service returned no results")
	}

	return gr.Results, gr.Details, nil
}

// LocalScore 本地兜底评分：每题1分，无负分、无部分得分。
// attempted 按有作答记录的题数统计，score == correct。
func LocalScore(questions []model.Question, answers map[string]string) (*model.GradeResult, []model.AnswerDetail) {
	result := &model.GradeResult{Total: len(questions)}
	details := make([]model.AnswerDetail, 0, len(questions))

	for _, q := range questions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		result.Attempted++
		correct := answer == q.CorrectAnswer
		if correct {
			result.Correct++
		}
		details = append(details, model.AnswerDetail{QuestionID: q.ID, IsCorrect: correct})
	}

	result.Score = result.Correct
	return result, details
}

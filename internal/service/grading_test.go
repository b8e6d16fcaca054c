package service

import (
	"context"
	"encoding/json"
	"growthmindz_backend/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocalScore(t *testing.T) {
	questions := sampleQuestions()

	result, details := LocalScore(questions, map[string]string{
		"q1": "4",    // 对
		"q2": "Rome", // 错
	})

	if result.Total != 3 || result.Attempted != 2 || result.Correct != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Score != result.Correct {
		t.Fatalf("score must equal correct count, got score=%d correct=%d", result.Score, result.Correct)
	}
	if len(details) != 2 {
		t.Fatalf("details only cover attempted questions, got %d", len(details))
	}
}

func TestLocalScoreBounds(t *testing.T) {
	questions := sampleQuestions()

	cases := []map[string]string{
		{},
		{"q1": "4"},
		{"q1": "4", "q2": "Paris", "q3": "Jupiter"},
		{"q1": "3", "q2": "Rome", "q3": "Mars"},
	}
	for _, answers := range cases {
		result, _ := LocalScore(questions, answers)
		if result.Correct < 0 || result.Correct > result.Attempted || result.Attempted > result.Total {
			t.Fatalf("invariant violated for %v: %+v", answers, result)
		}
	}
}

func TestGradeRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sub GradingSubmission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			t.Errorf("bad submission payload: %v", err)
		}
		if sub.QuizID != "gk1" {
			t.Errorf("expected qid gk1, got %q", sub.QuizID)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": {"total": 3, "attempted": 2, "correct": 2, "score": 2}, "details": [{"questionId": "q1", "isCorrect": true}]}`))
	}))
	defer srv.Close()

	svc := NewGradingService(config.GradingConfig{BaseURL: srv.URL, TimeoutSeconds: 2})
	result, details, err := svc.Grade(context.Background(), GradingSubmission{
		Answers:   map[string]string{"q1": "4", "q2": "Rome"},
		Questions: sampleQuestions(),
		QuizID:    "gk1",
	})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if result.Score != 2 {
		t.Fatalf("expected score 2, got %d", result.Score)
	}
	if len(details) != 1 || !details[0].IsCorrect {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestGradeRemoteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewGradingService(config.GradingConfig{BaseURL: srv.URL, TimeoutSeconds: 2})
	if _, _, err := svc.Grade(context.Background(), GradingSubmission{QuizID: "gk1"}); err == nil {
		t.Fatal("expected error on 503 response")
	}
}

func TestGradeRemoteMissingResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"details": []}`))
	}))
	defer srv.Close()

	svc := NewGradingService(config.GradingConfig{BaseURL: srv.URL, TimeoutSeconds: 2})
	if _, _, err := svc.Grade(context.Background(), GradingSubmission{QuizID: "gk1"}); err == nil {
		t.Fatal("a response without results must be treated as a failure")
	}
}

package service

import (
	"context"
	"growthmindz_backend/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"
)

func bankService(baseURL string) *QuestionBankService {
	return NewQuestionBankService(config.QuestionBankConfig{BaseURL: baseURL, TimeoutSeconds: 2})
}

func TestFetchQuestionsFiltersInvalidRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("qid"); got != "gk1" {
			t.Errorf("expected qid=gk1, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "question": "Q one", "options": ["a","b"], "answer": "a"},
			{"question": "missing id", "options": ["a"], "answer": "a"},
			{"id": "q3", "options": ["a"], "answer": "a"},
			{"id": "q4", "question": "no options", "options": [], "answer": "a"},
			{"id": "q5", "question": "Q five", "options": ["x","y"], "answer": "y"}
		]`))
	}))
	defer srv.Close()

	questions, err := bankService(srv.URL).FetchQuestions(context.Background(), "gk1", 10)
	if err != nil {
		t.Fatalf("FetchQuestions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 valid questions, got %d", len(questions))
	}
	// 数字 id 统一成字符串
	if questions[0].ID != "1" {
		t.Fatalf("numeric id must stringify, got %q", questions[0].ID)
	}
	if questions[1].ID != "q5" {
		t.Fatalf("expected q5, got %q", questions[1].ID)
	}
}

func TestFetchQuestionsTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "q1", "question": "1", "options": ["a"], "answer": "a"},
			{"id": "q2", "question": "2", "options": ["a"], "answer": "a"},
			{"id": "q3", "question": "3", "options": ["a"], "answer": "a"}
		]`))
	}))
	defer srv.Close()

	questions, err := bankService(srv.URL).FetchQuestions(context.Background(), "gk1", 2)
	if err != nil {
		t.Fatalf("FetchQuestions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(questions))
	}
}

func TestFetchQuestionsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := bankService(srv.URL).FetchQuestions(context.Background(), "gk1", 10); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestNormalizeQuestionsKeepsOrder(t *testing.T) {
	raw := []rawQuestion{
		{ID: "b", Question: "B", Options: []string{"1"}},
		{ID: "a", Question: "A", Options: []string{"1"}},
	}
	got := normalizeQuestions(raw, 10)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("order must be preserved, got %+v", got)
	}
}

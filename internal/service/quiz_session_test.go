package service

import (
	"growthmindz_backend/internal/model"
	"growthmindz_backend/internal/util"
	"testing"
)

func sampleQuestions() []model.Question {
	return []model.Question{
		{ID: "q1", Text: "What is 2+2?", Options: []string{"3", "4", "5"}, CorrectAnswer: "4"},
		{ID: "q2", Text: "Capital of France?", Options: []string{"Paris", "Rome"}, CorrectAnswer: "Paris"},
		{ID: "q3", Text: "Largest planet?", Options: []string{"Mars", "Jupiter"}, CorrectAnswer: "Jupiter"},
	}
}

func activeSession(t *testing.T) *QuizSession {
	t.Helper()
	s := newQuizSession("s1", "quiz-1", 7, sampleQuestions(), 600)
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestSessionLifecycle(t *testing.T) {
	s := newQuizSession("s1", "quiz-1", 0, sampleQuestions(), 600)

	if s.Phase() != PhaseNotStarted {
		t.Fatalf("expected not_started, got %s", s.Phase())
	}

	if err := s.Instructions(); err != nil {
		t.Fatalf("Instructions: %v", err)
	}
	if err := s.Instructions(); err != nil {
		t.Fatalf("repeated Instructions should be idempotent: %v", err)
	}
	if s.Phase() != PhaseInstructions {
		t.Fatalf("expected instructions, got %s", s.Phase())
	}

	started, err := s.Start()
	if err != nil || !started {
		t.Fatalf("Start: started=%v err=%v", started, err)
	}

	started, err = s.Start()
	if err != nil {
		t.Fatalf("repeated Start should be harmless: %v", err)
	}
	if started {
		t.Fatal("repeated Start must not report a fresh start")
	}
}

func TestSessionDirectStartSkipsInstructions(t *testing.T) {
	s := newQuizSession("s1", "quiz-1", 0, sampleQuestions(), 600)
	started, err := s.Start()
	if err != nil || !started {
		t.Fatalf("direct Start: started=%v err=%v", started, err)
	}
	if s.Phase() != PhaseActive {
		t.Fatalf("expected active, got %s", s.Phase())
	}
}

func TestSelectAnswerOverwrites(t *testing.T) {
	s := activeSession(t)

	if err := s.SelectAnswer("q1", "3"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if err := s.SelectAnswer("q1", "4"); err != nil {
		t.Fatalf("re-select: %v", err)
	}

	view := s.View()
	if view.Answers["q1"] != "4" {
		t.Fatalf("expected overwritten answer 4, got %q", view.Answers["q1"])
	}
	if view.CurrentIndex != 0 {
		t.Fatalf("selecting an answer must not move the cursor, got index %d", view.CurrentIndex)
	}
}

func TestSelectAnswerValidation(t *testing.T) {
	s := activeSession(t)

	if err := s.SelectAnswer("nope", "4"); err != util.ErrUnknownQuestion {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}
	if err := s.SelectAnswer("q1", "42"); err != util.ErrInvalidOption {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestResetCurrentOnlyClearsCurrent(t *testing.T) {
	s := activeSession(t)

	if err := s.SelectAnswer("q1", "4"); err != nil {
		t.Fatalf("SelectAnswer q1: %v", err)
	}
	if err := s.SelectAnswer("q2", "Paris"); err != nil {
		t.Fatalf("SelectAnswer q2: %v", err)
	}

	// 光标在 q1 上，reset 只清 q1
	if err := s.ResetCurrent(); err != nil {
		t.Fatalf("ResetCurrent: %v", err)
	}

	view := s.View()
	if _, ok := view.Answers["q1"]; ok {
		t.Fatal("q1 answer should be cleared")
	}
	if view.Answers["q2"] != "Paris" {
		t.Fatal("q2 answer must survive a reset of q1")
	}
}

func TestNavigationBoundaries(t *testing.T) {
	s := activeSession(t)

	if err := s.Previous(); err != nil {
		t.Fatalf("Previous at first question: %v", err)
	}
	if s.View().CurrentIndex != 0 {
		t.Fatal("Previous at index 0 must stay at 0")
	}

	if err := s.GoTo(99); err != nil {
		t.Fatalf("GoTo out of range: %v", err)
	}
	if got := s.View().CurrentIndex; got != 2 {
		t.Fatalf("GoTo beyond end should clamp to last, got %d", got)
	}

	if err := s.Next(); err != nil {
		t.Fatalf("Next at last question: %v", err)
	}
	if got := s.View().CurrentIndex; got != 2 {
		t.Fatalf("Next at last question must stay put, got %d", got)
	}

	if err := s.GoTo(-5); err != nil {
		t.Fatalf("GoTo negative: %v", err)
	}
	if got := s.View().CurrentIndex; got != 0 {
		t.Fatalf("GoTo negative should clamp to 0, got %d", got)
	}
}

func TestSaveAdvancesWithoutAnswer(t *testing.T) {
	s := activeSession(t)

	// 未作答也允许前进，save 只是导航
	if err := s.SaveAndAdvance(); err != nil {
		t.Fatalf("SaveAndAdvance: %v", err)
	}
	if got := s.View().CurrentIndex; got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
}

func TestTickCountsDownOnlyWhileActive(t *testing.T) {
	s := newQuizSession("s1", "quiz-1", 0, sampleQuestions(), 3)

	if s.Tick() {
		t.Fatal("tick before start must not fire")
	}
	if s.View().TimeRemaining != 3 {
		t.Fatal("tick before start must not consume time")
	}

	if _, err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if s.Tick() || s.Tick() {
		t.Fatal("timer fired early")
	}
	if !s.Tick() {
		t.Fatal("timer must fire exactly when remaining hits zero")
	}
	if s.View().TimeDisplay != "00:00:00" {
		t.Fatalf("expected 00:00:00, got %s", s.View().TimeDisplay)
	}
}

func TestBeginFinishExactlyOnce(t *testing.T) {
	s := activeSession(t)

	if _, ok := s.BeginFinish(false); !ok {
		t.Fatal("first BeginFinish must win")
	}
	if _, ok := s.BeginFinish(true); ok {
		t.Fatal("second BeginFinish must be a no-op")
	}
	if s.Phase() != PhaseSubmitting {
		t.Fatalf("expected submitting, got %s", s.Phase())
	}
}

func TestBeginFinishTimeoutClampsClock(t *testing.T) {
	s := activeSession(t)

	snap, ok := s.BeginFinish(true)
	if !ok {
		t.Fatal("BeginFinish failed")
	}
	if !snap.IsTimeout {
		t.Fatal("snapshot must record the timeout")
	}
	if s.View().TimeRemaining != 0 {
		t.Fatal("timed-out session must show zero remaining")
	}
}

func TestMutationsRejectedAfterFinish(t *testing.T) {
	s := activeSession(t)
	s.BeginFinish(false)
	s.CompleteFinish(&model.GradeResult{Total: 3}, nil, true)

	if err := s.SelectAnswer("q1", "4"); err != util.ErrSessionNotActive {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}
	if err := s.Next(); err != util.ErrSessionNotActive {
		t.Fatalf("expected ErrSessionNotActive, got %v", err)
	}
	if _, err := s.Start(); err != util.ErrAlreadySubmitted {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
}

func TestReviewStatuses(t *testing.T) {
	s := activeSession(t)
	if err := s.SelectAnswer("q1", "4"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	if err := s.SelectAnswer("q2", "Rome"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	// q3 未作答

	s.BeginFinish(false)
	result, details := LocalScore(sampleQuestions(), map[string]string{"q1": "4", "q2": "Rome"})
	s.CompleteFinish(result, details, true)

	review, err := s.Review()
	if err != nil {
		t.Fatalf("Review: %v", err)
	}

	want := map[string]model.ReviewStatus{
		"q1": model.ReviewCorrect,
		"q2": model.ReviewIncorrect,
		"q3": model.ReviewNotAttempted,
	}
	for _, item := range review.Items {
		if item.Status != want[item.QuestionID] {
			t.Errorf("%s: expected %s, got %s", item.QuestionID, want[item.QuestionID], item.Status)
		}
	}
	if !review.GradedLocally {
		t.Fatal("review must surface the local grading flag")
	}
}

func TestReviewPrefersServerDetails(t *testing.T) {
	s := activeSession(t)
	if err := s.SelectAnswer("q1", "4"); err != nil {
		t.Fatalf("SelectAnswer: %v", err)
	}
	s.BeginFinish(false)

	// 评分服务判 q1 错，即便本地比对是对的也以服务为准
	s.CompleteFinish(
		&model.GradeResult{Total: 3, Attempted: 1, Correct: 0, Score: 0},
		[]model.AnswerDetail{{QuestionID: "q1", IsCorrect: false}},
		false,
	)

	review, err := s.Review()
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	for _, item := range review.Items {
		if item.QuestionID == "q1" && item.Status != model.ReviewIncorrect {
			t.Fatalf("server detail must win, got %s", item.Status)
		}
	}
}

func TestReviewBeforeFinishRejected(t *testing.T) {
	s := activeSession(t)
	if _, err := s.Review(); err != util.ErrSessionNotFinished {
		t.Fatalf("expected ErrSessionNotFinished, got %v", err)
	}
}

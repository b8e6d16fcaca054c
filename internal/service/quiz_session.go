package service

import (
	"growthmindz_backend/internal/model"
	"growthmindz_backend/internal/util"
	"sync"
	"time"
)

// Phase 测验会话所处阶段
type Phase string

const (
	PhaseNotStarted   Phase = "not_started"
	PhaseInstructions Phase = "instructions"
	PhaseActive       Phase = "active"
	PhaseSubmitting   Phase = "submitting"
	PhaseReview       Phase = "review"
)

// QuizSession 一次测验作答的全部状态：题目、作答、倒计时、阶段。
// 所有读写都在持锁下进行。倒计时归零的自动交卷与手动交卷互斥，
// BeginFinish 的阶段守卫保证交卷恰好发生一次。
type QuizSession struct {
	ID     string
	QuizID string
	UserID uint

	mu            sync.Mutex
	phase         Phase
	questions     []model.Question
	answers       map[string]string
	currentIndex  int
	duration      int
	timeRemaining int
	hasStarted    bool
	isTimeout     bool
	gradedLocally bool
	result        *model.GradeResult
	details       map[string]bool
	startedAt     time.Time
	lastTouched   time.Time

	stopTimer chan struct{}
	stopOnce  sync.Once
}

func newQuizSession(id, quizID string, userID uint, questions []model.Question, durationSeconds int) *QuizSession {
	return &QuizSession{
		ID:            id,
		QuizID:        quizID,
		UserID:        userID,
		phase:         PhaseNotStarted,
		questions:     questions,
		answers:       make(map[string]string),
		duration:      durationSeconds,
		timeRemaining: durationSeconds,
		lastTouched:   time.Now(),
		stopTimer:     make(chan struct{}),
	}
}

func (s *QuizSession) touch() {
	s.lastTouched = time.Now()
}

// Instructions NotStarted -> Instructions，无副作用，重复调用幂等
func (s *QuizSession) Instructions() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseNotStarted:
		s.phase = PhaseInstructions
	case PhaseInstructions:
		// 已在说明页
	default:
		return util.ErrAlreadySubmitted
	}
	s.touch()
	return nil
}

// Start 进入 Active 并启动计时。Instructions 之后的正常入口和跳过说明页的
// 直接入口共用这一个转换。返回 true 表示这次调用真正启动了会话，
// 调用方只在此时启动计时循环。
func (s *QuizSession) Start() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseNotStarted, PhaseInstructions:
		s.phase = PhaseActive
		s.hasStarted = true
		s.startedAt = time.Now()
		s.touch()
		return true, nil
	case PhaseActive:
		// 重复 begin 是无害的
		return false, nil
	default:
		return false, util.ErrAlreadySubmitted
	}
}

// Tick 每秒一跳。返回 true 表示剩余时间刚好归零，
// 调用方必须触发自动交卷。非 Active 阶段一律不动。
func (s *QuizSession) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseActive {
		return false
	}
	if s.timeRemaining > 0 {
		s.timeRemaining--
	}
	return s.timeRemaining == 0
}

// SelectAnswer 记录作答。同一题重复选择覆盖旧答案，不影响当前题号和计时。
func (s *QuizSession) SelectAnswer(questionID, option string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseActive {
		return util.ErrSessionNotActive
	}

	q := s.findQuestion(questionID)
	if q == nil {
		return util.ErrUnknownQuestion
	}
	if !q.HasOption(option) {
		return util.ErrInvalidOption
	}

	s.answers[questionID] = option
	s.touch()
	return nil
}

// ResetCurrent 清除当前题的作答（若有），位置不变
func (s *QuizSession) ResetCurrent() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseActive {
		return util.ErrSessionNotActive
	}

	delete(s.answers, s.questions[s.currentIndex].ID)
	s.touch()
	return nil
}

// GoTo 跳转到指定题号，越界收敛到 [0, len-1]
func (s *QuizSession) GoTo(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseActive {
		return util.ErrSessionNotActive
	}

	if index < 0 {
		index = 0
	}
	if index > len(s.questions)-1 {
		index = len(s.questions) - 1
	}
	s.currentIndex = index
	s.touch()
	return nil
}

// Next 边界处不回绕也不报错
func (s *QuizSession) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseActive {
		return util.ErrSessionNotActive
	}

	if s.currentIndex < len(s.questions)-1 {
		s.currentIndex++
	}
	s.touch()
	return nil
}

func (s *QuizSession) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseActive {
		return util.ErrSessionNotActive
	}

	if s.currentIndex > 0 {
		s.currentIndex--
	}
	s.touch()
	return nil
}

// SaveAndAdvance 保存即前进。作答在 SelectAnswer 时就已生效，
// Save 不做已作答校验，只是导航（与前端行为一致）。
func (s *QuizSession) SaveAndAdvance() error {
	return s.Next()
}

// finishSnapshot 交卷瞬间的不可变快照，评分在锁外进行
type finishSnapshot struct {
	Questions []model.Question
	Answers   map[string]string
	UserID    uint
	QuizID    string
	IsTimeout bool
}

// BeginFinish Active -> Submitting。手动交卷和超时自动交卷都走这里，
// 阶段守卫让第二次调用成为空操作。转换的同时不可逆地停掉计时。
func (s *QuizSession) BeginFinish(timedOut bool) (finishSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseActive {
		return finishSnapshot{}, false
	}

	s.phase = PhaseSubmitting
	if timedOut {
		s.timeRemaining = 0
		s.isTimeout = true
	}
	s.stopTimerLocked()
	s.touch()

	answers := make(map[string]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}

	return finishSnapshot{
		Questions: s.questions,
		Answers:   answers,
		UserID:    s.UserID,
		QuizID:    s.QuizID,
		IsTimeout: s.isTimeout,
	}, true
}

// CompleteFinish Submitting -> Review。评分失败已在上游降级为本地评分，
// 所以这里总能到达 Review。
func (s *QuizSession) CompleteFinish(result *model.GradeResult, details []model.AnswerDetail, gradedLocally bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = result
	s.gradedLocally = gradedLocally
	s.details = nil
	if len(details) > 0 {
		s.details = make(map[string]bool, len(details))
		for _, d := range details {
			s.details[d.QuestionID] = d.IsCorrect
		}
	}
	s.phase = PhaseReview
	s.touch()
}

// StopTimer 停止计时循环，幂等。会话被丢弃时必须调用，
// 防止残留的 tick 继续修改已丢弃会话的状态。
func (s *QuizSession) StopTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
}

func (s *QuizSession) stopTimerLocked() {
	s.stopOnce.Do(func() {
		close(s.stopTimer)
	})
}

func (s *QuizSession) findQuestion(questionID string) *model.Question {
	for i := range s.questions {
		if s.questions[i].ID == questionID {
			return &s.questions[i]
		}
	}
	return nil
}

func (s *QuizSession) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *QuizSession) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}

// SessionView 面向前端的会话快照
type SessionView struct {
	ID             string            `json:"id"`
	QuizID         string            `json:"quizId"`
	Phase          Phase             `json:"phase"`
	HasStarted     bool              `json:"hasStarted"`
	CurrentIndex   int               `json:"currentIndex"`
	TotalQuestions int               `json:"totalQuestions"`
	TimeRemaining  int               `json:"timeRemaining"`
	TimeDisplay    string            `json:"timeDisplay"` // HH:MM:SS
	Duration       int               `json:"duration"`
	Answers        map[string]string `json:"answers"`
	Questions      []model.Question  `json:"questions"`
}

func (s *QuizSession) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	answers := make(map[string]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}

	return SessionView{
		ID:             s.ID,
		QuizID:         s.QuizID,
		Phase:          s.phase,
		HasStarted:     s.hasStarted,
		CurrentIndex:   s.currentIndex,
		TotalQuestions: len(s.questions),
		TimeRemaining:  s.timeRemaining,
		TimeDisplay:    util.FormatHMS(s.timeRemaining),
		Duration:       s.duration,
		Answers:        answers,
		Questions:      s.questions,
	}
}

// ReviewView 复盘页数据。单题状态优先采用评分服务的判定，
// 缺失时退回本地比对；未作答不算答错。
type ReviewView struct {
	Results       *model.GradeResult `json:"results"`
	GradedLocally bool               `json:"gradedLocally"`
	IsTimeout     bool               `json:"isTimeout"`
	Items         []model.ReviewItem `json:"items"`
}

func (s *QuizSession) Review() (*ReviewView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReview {
		return nil, util.ErrSessionNotFinished
	}

	items := make([]model.ReviewItem, 0, len(s.questions))
	for _, q := range s.questions {
		userAnswer, attempted := s.answers[q.ID]

		status := model.ReviewNotAttempted
		if attempted {
			correct, hasDetail := s.details[q.ID]
			if !hasDetail {
				correct = userAnswer == q.CorrectAnswer
			}
			if correct {
				status = model.ReviewCorrect
			} else {
				status = model.ReviewIncorrect
			}
		}

		items = append(items, model.ReviewItem{
			QuestionID:    q.ID,
			Text:          q.Text,
			Options:       q.Options,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			Status:        status,
		})
	}

	return &ReviewView{
		Results:       s.result,
		GradedLocally: s.gradedLocally,
		IsTimeout:     s.isTimeout,
		Items:         items,
	}, nil
}

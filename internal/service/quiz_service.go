package service

import (
	"context"
	"growthmindz_backend/internal/config"
	"growthmindz_backend/internal/model"
	"growthmindz_backend/internal/repository"
	"growthmindz_backend/internal/util"
	"growthmindz_backend/pkg/monitoring"
	"sync"
	"time"

	"go.uber.org/zap"
)

// QuizService 持有全部活动会话并驱动它们的生命周期：
// 建会话（含"先看完视频"门槛）、计时、交卷评分、归档、复盘、回收。
type QuizService struct {
	mu       sync.RWMutex
	sessions map[string]*QuizSession
	quizCfg  config.QuizConfig

	questions QuestionSource
	grader    Grader
	progress  *WatchProgressService
	attempts  *repository.AttemptRepository
	log       *zap.Logger
}

func NewQuizService(
	quizCfg config.QuizConfig,
	questions QuestionSource,
	grader Grader,
	progress *WatchProgressService,
	attempts *repository.AttemptRepository,
	log *zap.Logger,
) *QuizService {
	return &QuizService{
		sessions:  make(map[string]*QuizSession),
		quizCfg:   quizCfg,
		questions: questions,
		grader:    grader,
		progress:  progress,
		attempts:  attempts,
		log:       log,
	}
}

// ApplyConfig 热更新测验参数，只影响之后创建的会话
func (svc *QuizService) ApplyConfig(quizCfg config.QuizConfig) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.quizCfg = quizCfg
}

// StartSessionReq 建会话请求。CourseKey/VideoID 可选，
// 给出时要求该视频已达到完成门槛才放行。
type StartSessionReq struct {
	QuizID    string `json:"quizId" binding:"required"`
	CourseKey string `json:"courseKey"`
	VideoID   string `json:"videoId"`
}

// StartSession 取题、过滤、建会话。题库不可达或过滤后没有可用题目时
// 返回 ErrQuizUnavailable，不会替换成任何内置题目。
func (svc *QuizService) StartSession(ctx context.Context, userID uint, req StartSessionReq) (*SessionView, error) {
	if req.CourseKey != "" && req.VideoID != "" && svc.progress != nil {
		completed, err := svc.progress.IsCompleted(ctx, req.CourseKey, req.VideoID)
		if err != nil {
			return nil, err
		}
		if !completed {
			return nil, util.ErrVideoNotCompleted
		}
	}

	svc.mu.RLock()
	maxQuestions := svc.quizCfg.MaxQuestions
	duration := svc.quizCfg.DurationSeconds
	svc.mu.RUnlock()

	questions, err := svc.questions.FetchQuestions(ctx, req.QuizID, maxQuestions)
	if err != nil {
		svc.log.Warn("question bank fetch failed",
			zap.String("quizId", req.QuizID),
			zap.Error(err))
		return nil, util.ErrQuizUnavailable
	}
	if len(questions) == 0 {
		return nil, util.ErrQuizUnavailable
	}

	session := newQuizSession(model.GenerateUUID(), req.QuizID, userID, questions, duration)

	svc.mu.Lock()
	svc.sessions[session.ID] = session
	monitoring.ActiveQuizSessions.Set(float64(len(svc.sessions)))
	svc.mu.Unlock()

	svc.log.Info("quiz session created",
		zap.String("session", session.ID),
		zap.String("quizId", req.QuizID),
		zap.Int("questions", len(questions)))

	view := session.View()
	return &view, nil
}

func (svc *QuizService) getSession(sessionID string) (*QuizSession, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	session, ok := svc.sessions[sessionID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return session, nil
}

// QuizInstructions 说明页内容，随 Instructions 转换一起返回
type QuizInstructions struct {
	TotalQuestions   int      `json:"totalQuestions"`
	DurationMinutes  int      `json:"durationMinutes"`
	MarksPerQuestion int      `json:"marksPerQuestion"`
	NegativeMarking  bool     `json:"negativeMarking"`
	Notes            []string `json:"notes"`
}

// Instructions NotStarted -> Instructions
func (svc *QuizService) Instructions(sessionID string) (*QuizInstructions, error) {
	session, err := svc.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.Instructions(); err != nil {
		return nil, err
	}

	view := session.View()
	return &QuizInstructions{
		TotalQuestions:   view.TotalQuestions,
		DurationMinutes:  view.Duration / 60,
		MarksPerQuestion: 1,
		NegativeMarking:  false,
		Notes: []string{
			"Read each question carefully before selecting your answer",
			"Use Save to keep your answer and move to the next question",
			"Use Reset to clear your selected answer",
			"The quiz will automatically submit when the timer reaches 00:00:00",
		},
	}, nil
}

// Begin 进入 Active 并启动每秒一跳的计时循环。说明页之后的正常入口
// 和跳过说明页的直接入口都显式走这里，没有靠渲染副作用的暗门。
func (svc *QuizService) Begin(sessionID string) (*SessionView, error) {
	session, err := svc.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	started, err := session.Start()
	if err != nil {
		return nil, err
	}
	if started {
		go svc.runTimer(session)
	}

	view := session.View()
	return &view, nil
}

// runTimer 会话计时循环。会话是计时器唯一的属主：交卷或丢弃时
// stopTimer 关闭，循环退出，不会有残留 tick 改写已结束的会话。
func (svc *QuizService) runTimer(session *QuizSession) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-session.stopTimer:
			return
		case <-ticker.C:
			if session.Tick() {
				monitoring.QuizTimeouts.Inc()
				svc.Finish(session, true)
				return
			}
		}
	}
}

func (svc *QuizService) View(sessionID string) (*SessionView, error) {
	session, err := svc.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	view := session.View()
	return &view, nil
}

func (svc *QuizService) SelectAnswer(sessionID, questionID, option string) error {
	session, err := svc.getSession(sessionID)
	if err != nil {
		return err
	}
	return session.SelectAnswer(questionID, option)
}

func (svc *QuizService) ResetAnswer(sessionID string) error {
	session, err := svc.getSession(sessionID)
	if err != nil {
		return err
	}
	return session.ResetCurrent()
}

// Navigate op: goto / next / previous
func (svc *QuizService) Navigate(sessionID, op string, index int) error {
	session, err := svc.getSession(sessionID)
	if err != nil {
		return err
	}

	switch op {
	case "goto":
		return session.GoTo(index)
	case "next":
		return session.Next()
	case "previous":
		return session.Previous()
	default:
		return util.ErrInvalidNavigation
	}
}

func (svc *QuizService) SaveAndAdvance(sessionID string) error {
	session, err := svc.getSession(sessionID)
	if err != nil {
		return err
	}
	return session.SaveAndAdvance()
}

// Submit 手动交卷
func (svc *QuizService) Submit(sessionID string) (*ReviewView, error) {
	session, err := svc.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	if err := svc.Finish(session, false); err != nil {
		return nil, err
	}
	return session.Review()
}

// Finish 唯一的交卷路径。先远程评分，失败时静默降级为本地评分，
// 无论哪种结果会话都会到达 Review。
func (svc *QuizService) Finish(session *QuizSession, timedOut bool) error {
	snap, ok := session.BeginFinish(timedOut)
	if !ok {
		return util.ErrAlreadySubmitted
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var userID *uint
	if snap.UserID > 0 {
		userID = &snap.UserID
	}

	result, details, err := svc.grader.Grade(ctx, GradingSubmission{
		Answers:   snap.Answers,
		Questions: snap.Questions,
		UserID:    userID,
		QuizID:    snap.QuizID,
	})

	gradedLocally := false
	if err != nil {
		svc.log.Warn("remote grading failed, using local scoring",
			zap.String("session", session.ID),
			zap.Error(err))
		result, details = LocalScore(snap.Questions, snap.Answers)
		gradedLocally = true
	}

	session.CompleteFinish(result, details, gradedLocally)

	outcome := "remote"
	if gradedLocally {
		outcome = "local_fallback"
	}
	monitoring.QuizSubmissions.WithLabelValues(outcome).Inc()

	svc.archive(session, snap, result, details, gradedLocally)
	return nil
}

// archive 归档尽力而为，失败只记日志，不影响复盘
func (svc *QuizService) archive(session *QuizSession, snap finishSnapshot, result *model.GradeResult, details []model.AnswerDetail, gradedLocally bool) {
	if svc.attempts == nil {
		return
	}

	detailMap := make(map[string]bool, len(details))
	for _, d := range details {
		detailMap[d.QuestionID] = d.IsCorrect
	}

	answers := make([]model.QuizAttemptAnswer, 0, len(snap.Answers))
	for _, q := range snap.Questions {
		userAnswer, ok := snap.Answers[q.ID]
		if !ok {
			continue
		}
		correct, hasDetail := detailMap[q.ID]
		if !hasDetail {
			correct = userAnswer == q.CorrectAnswer
		}
		answers = append(answers, model.QuizAttemptAnswer{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			UserAnswer:   userAnswer,
			IsCorrect:    correct,
		})
	}

	attempt := &model.QuizAttempt{
		UserID:        snap.UserID,
		QuizID:        snap.QuizID,
		Total:         result.Total,
		Attempted:     result.Attempted,
		Correct:       result.Correct,
		Score:         result.Score,
		GradedLocally: gradedLocally,
		IsTimeout:     snap.IsTimeout,
		CompletedAt:   time.Now(),
	}

	if err := svc.attempts.CreateWithAnswers(attempt, answers); err != nil {
		svc.log.Error("failed to archive quiz attempt",
			zap.String("session", session.ID),
			zap.Error(err))
	}
}

func (svc *QuizService) Review(sessionID string) (*ReviewView, error) {
	session, err := svc.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Review()
}

// Discard 丢弃会话并停掉计时器。复盘页离开后调用。
func (svc *QuizService) Discard(sessionID string) error {
	svc.mu.Lock()
	session, ok := svc.sessions[sessionID]
	if ok {
		delete(svc.sessions, sessionID)
		monitoring.ActiveQuizSessions.Set(float64(len(svc.sessions)))
	}
	svc.mu.Unlock()

	if !ok {
		return util.ErrSessionNotFound
	}

	session.StopTimer()
	return nil
}

// ReapIdle 回收闲置会话（看完复盘不关页面、或建了会话从未开始的）。
// 返回回收数量。
func (svc *QuizService) ReapIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	svc.mu.Lock()
	var stale []*QuizSession
	for id, session := range svc.sessions {
		if session.IdleSince().Before(cutoff) {
			delete(svc.sessions, id)
			stale = append(stale, session)
		}
	}
	monitoring.ActiveQuizSessions.Set(float64(len(svc.sessions)))
	svc.mu.Unlock()

	for _, session := range stale {
		session.StopTimer()
		svc.log.Info("reaped idle quiz session",
			zap.String("session", session.ID),
			zap.String("phase", string(session.Phase())))
	}
	return len(stale)
}

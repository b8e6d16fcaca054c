package service

import (
	"context"
	"growthmindz_backend/internal/model"
	"growthmindz_backend/internal/repository"
	"sort"
)

// DashboardService 组装 my-learning 面板：每门课的观看汇总 + 最近的测验归档
type DashboardService struct {
	progress *WatchProgressService
	attempts *repository.AttemptRepository
}

func NewDashboardService(progress *WatchProgressService, attempts *repository.AttemptRepository) *DashboardService {
	return &DashboardService{progress: progress, attempts: attempts}
}

type CourseSummary struct {
	CourseKey string `json:"courseKey"`
	Percent   int    `json:"percent"`
	TimeSpent string `json:"timeSpent"`
	Videos    int    `json:"videos"`
	Completed int    `json:"completedVideos"`
}

type MyLearning struct {
	Courses        []CourseSummary     `json:"courses"`
	RecentAttempts []model.QuizAttempt `json:"recentAttempts"`
}

func (s *DashboardService) GetMyLearning(ctx context.Context, userID uint) (*MyLearning, error) {
	courseKeys, err := s.progress.ListCourseKeys(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(courseKeys)

	summaries := make([]CourseSummary, 0, len(courseKeys))
	for _, key := range courseKeys {
		agg, err := s.progress.Aggregate(ctx, key)
		if err != nil {
			return nil, err
		}

		course, err := s.progress.GetCourse(ctx, key)
		if err != nil {
			return nil, err
		}
		completed := 0
		for _, entry := range course {
			if entry.Completed {
				completed++
			}
		}

		summaries = append(summaries, CourseSummary{
			CourseKey: key,
			Percent:   agg.Percent,
			TimeSpent: agg.TimeSpent,
			Videos:    agg.Videos,
			Completed: completed,
		})
	}

	result := &MyLearning{Courses: summaries, RecentAttempts: []model.QuizAttempt{}}

	if s.attempts != nil && userID > 0 {
		attempts, err := s.attempts.ListByUser(userID, 10)
		if err != nil {
			return nil, err
		}
		result.RecentAttempts = attempts
	}

	return result, nil
}

package service

import (
	"context"
	"encoding/json"
	"growthmindz_backend/internal/model"
	"growthmindz_backend/internal/repository"
	"growthmindz_backend/internal/util"
	"growthmindz_backend/pkg/monitoring"
	"math"
	"strings"
	"sync"
	"time"
)

const progressKeyPrefix = "progress:"

// WatchProgressService 把播放器的周期位置采样合并成持久的观看状态。
// 合并规则：位置只增不减（回看不回退），时长以最后一次已知值为准，
// 完成标记达到阈值后永不回退。对采样频率没有要求，乱序、缺样都能容忍。
type WatchProgressService struct {
	store     repository.KVStore
	threshold int

	// 同一课程键上的读改写需要串行
	mu sync.Mutex
}

func NewWatchProgressService(store repository.KVStore, completionThreshold int) *WatchProgressService {
	return &WatchProgressService{
		store:     store,
		threshold: completionThreshold,
	}
}

// ReportReq 播放器协作方的一次位置采样
type ReportReq struct {
	CourseKey string `json:"courseKey" binding:"required"`
	VideoID   string `json:"videoId" binding:"required"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Seconds   int    `json:"seconds"`
	Duration  int    `json:"duration"`
}

// Report 合并一次采样并落库，返回合并后的条目
func (s *WatchProgressService) Report(ctx context.Context, req ReportReq) (model.WatchProgressEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, err := s.loadCourse(ctx, req.CourseKey)
	if err != nil {
		return model.WatchProgressEntry{}, err
	}

	prev := course[req.VideoID]

	seconds := req.Seconds
	if seconds < 0 {
		seconds = 0
	}
	if prev.Seconds > seconds {
		seconds = prev.Seconds
	}

	duration := req.Duration
	if duration <= 0 {
		duration = prev.Duration
	}

	percent := prev.Percent
	if duration > 0 {
		percent = int(math.Round(float64(seconds) / float64(duration) * 100))
		if percent > 100 {
			percent = 100
		}
	}

	entry := model.WatchProgressEntry{
		Title:     req.Title,
		URL:       req.URL,
		Seconds:   seconds,
		Duration:  duration,
		Percent:   percent,
		Completed: prev.Completed || percent >= s.threshold,
		UpdatedAt: time.Now().UnixMilli(),
	}
	if entry.Title == "" {
		entry.Title = prev.Title
	}
	if entry.URL == "" {
		entry.URL = prev.URL
	}

	course[req.VideoID] = entry
	if err := s.saveCourse(ctx, req.CourseKey, course); err != nil {
		return model.WatchProgressEntry{}, err
	}

	monitoring.ProgressReports.Inc()
	return entry, nil
}

// IsCompleted 纯读操作，供"可以做题了"的门槛判断
func (s *WatchProgressService) IsCompleted(ctx context.Context, courseKey, videoID string) (bool, error) {
	course, err := s.loadCourse(ctx, courseKey)
	if err != nil {
		return false, err
	}
	return course[videoID].Completed, nil
}

func (s *WatchProgressService) GetCourse(ctx context.Context, courseKey string) (model.CourseProgress, error) {
	return s.loadCourse(ctx, courseKey)
}

// Aggregate 课程级汇总。没有任何已知时长时百分比为0，不是错误。
func (s *WatchProgressService) Aggregate(ctx context.Context, courseKey string) (model.CourseAggregate, error) {
	course, err := s.loadCourse(ctx, courseKey)
	if err != nil {
		return model.CourseAggregate{}, err
	}

	var agg model.CourseAggregate
	for _, entry := range course {
		agg.TotalSecondsWatched += entry.Seconds
		agg.TotalDuration += entry.Duration
	}
	agg.Videos = len(course)
	if agg.TotalDuration > 0 {
		percent := int(math.Round(float64(agg.TotalSecondsWatched) / float64(agg.TotalDuration) * 100))
		if percent > 100 {
			percent = 100
		}
		agg.Percent = percent
	}
	agg.TimeSpent = util.FormatTimeSpent(agg.TotalSecondsWatched)

	return agg, nil
}

// ListCourseKeys 已有进度记录的课程键，供 my-learning 面板遍历
func (s *WatchProgressService) ListCourseKeys(ctx context.Context) ([]string, error) {
	keys, err := s.store.Keys(ctx, progressKeyPrefix+"*")
	if err != nil {
		return nil, err
	}
	courseKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		courseKeys = append(courseKeys, strings.TrimPrefix(k, progressKeyPrefix))
	}
	return courseKeys, nil
}

func (s *WatchProgressService) loadCourse(ctx context.Context, courseKey string) (model.CourseProgress, error) {
	raw, ok, err := s.store.Get(ctx, progressKeyPrefix+courseKey)
	if err != nil {
		return nil, err
	}
	course := make(model.CourseProgress)
	if !ok {
		return course, nil
	}
	if err := json.Unmarshal([]byte(raw), &course); err != nil {
		// 损坏的记录当作空白重新开始，不让坏数据卡死上报
		return make(model.CourseProgress), nil
	}
	return course, nil
}

func (s *WatchProgressService) saveCourse(ctx context.Context, courseKey string, course model.CourseProgress) error {
	raw, err := json.Marshal(course)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, progressKeyPrefix+courseKey, string(raw))
}

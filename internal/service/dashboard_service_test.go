package service

import (
	"context"
	"testing"
)

func TestGetMyLearning(t *testing.T) {
	progress := NewWatchProgressService(newMemKV(), 95)
	svc := NewDashboardService(progress, nil)
	ctx := context.Background()

	if _, err := progress.Report(ctx, ReportReq{CourseKey: "react", VideoID: "v1", Seconds: 96, Duration: 100}); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if _, err := progress.Report(ctx, ReportReq{CourseKey: "gk", VideoID: "v1", Seconds: 30, Duration: 100}); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if _, err := progress.Report(ctx, ReportReq{CourseKey: "gk", VideoID: "v2", Seconds: 100, Duration: 100}); err != nil {
		t.Fatalf("Report: %v", err)
	}

	learning, err := svc.GetMyLearning(ctx, 0)
	if err != nil {
		t.Fatalf("GetMyLearning: %v", err)
	}

	if len(learning.Courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(learning.Courses))
	}
	// 课程按键排序
	if learning.Courses[0].CourseKey != "gk" || learning.Courses[1].CourseKey != "react" {
		t.Fatalf("courses not sorted: %+v", learning.Courses)
	}

	gk := learning.Courses[0]
	if gk.Videos != 2 || gk.Completed != 1 {
		t.Fatalf("gk summary wrong: %+v", gk)
	}
	if gk.Percent != 65 {
		t.Fatalf("expected 65%% for gk, got %d", gk.Percent)
	}

	if learning.RecentAttempts == nil {
		t.Fatal("recent attempts must be an empty slice, not nil")
	}
}

func TestGetMyLearningEmpty(t *testing.T) {
	progress := NewWatchProgressService(newMemKV(), 95)
	svc := NewDashboardService(progress, nil)

	learning, err := svc.GetMyLearning(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetMyLearning: %v", err)
	}
	if len(learning.Courses) != 0 {
		t.Fatalf("expected no courses, got %+v", learning.Courses)
	}
}

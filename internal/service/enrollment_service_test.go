package service

import (
	"context"
	"testing"
)

func TestEnrollment(t *testing.T) {
	svc := NewEnrollmentService(newMemKV())
	ctx := context.Background()

	enrolled, err := svc.IsEnrolled(ctx, 1, "gk")
	if err != nil {
		t.Fatalf("IsEnrolled: %v", err)
	}
	if enrolled {
		t.Fatal("fresh user must not be enrolled")
	}

	if err := svc.Enroll(ctx, 1, "gk"); err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	enrolled, err = svc.IsEnrolled(ctx, 1, "gk")
	if err != nil || !enrolled {
		t.Fatalf("expected enrolled, got enrolled=%v err=%v", enrolled, err)
	}

	// 报名按用户隔离
	other, err := svc.IsEnrolled(ctx, 2, "gk")
	if err != nil || other {
		t.Fatalf("user 2 must not inherit user 1 enrollment, got %v err=%v", other, err)
	}
}

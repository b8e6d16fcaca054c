package service

import (
	"context"
	"fmt"
	"growthmindz_backend/internal/repository"
)

// EnrollmentService 按用户+课程维度记录报名标记，走同一个持久化端口
type EnrollmentService struct {
	store repository.KVStore
}

func NewEnrollmentService(store repository.KVStore) *EnrollmentService {
	return &EnrollmentService{store: store}
}

func enrollKey(userID uint, courseKey string) string {
	return fmt.Sprintf("enroll:%d:%s", userID, courseKey)
}

func (s *EnrollmentService) Enroll(ctx context.Context, userID uint, courseKey string) error {
	return s.store.Set(ctx, enrollKey(userID, courseKey), "1")
}

func (s *EnrollmentService) IsEnrolled(ctx context.Context, userID uint, courseKey string) (bool, error) {
	_, ok, err := s.store.Get(ctx, enrollKey(userID, courseKey))
	if err != nil {
		return false, err
	}
	return ok, nil
}

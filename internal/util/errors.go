package util

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrQuizUnavailable    = errors.New("unable to load quiz questions")
	ErrSessionNotActive   = errors.New("session is not active")
	ErrAlreadySubmitted   = errors.New("session already submitted")
	ErrInvalidOption      = errors.New("option does not belong to this question")
	ErrUnknownQuestion    = errors.New("unknown question id")
	ErrVideoNotCompleted  = errors.New("video not completed yet")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrInvalidNavigation  = errors.New("invalid navigation action")
	ErrSessionNotFinished = errors.New("session has no review yet")
)

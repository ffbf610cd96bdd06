package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrVideoNotFound      = errors.New("video not found")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrQuizSetNotFound    = errors.New("quiz set not found")
	ErrNoQuizSetForLesson = errors.New("no quiz set assigned to this lesson")
	ErrQuizSetEmpty       = errors.New("quiz set has no questions")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrProgressConflict   = errors.New("progress already exists for this user and lesson")
	ErrUnauthorized       = errors.New("unauthorized")
)

var notFoundErrors = []error{
	ErrUserNotFound,
	ErrCourseNotFound,
	ErrLessonNotFound,
	ErrVideoNotFound,
	ErrQuizNotFound,
	ErrQuizSetNotFound,
	ErrNoQuizSetForLesson,
	ErrQuizSetEmpty,
}

func IsNotFound(err error) bool {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrProgressConflict) || errors.Is(err, ErrAlreadyEnrolled) || errors.Is(err, ErrEmailRegistered)
}

// ValidationError marks malformed or missing request input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}

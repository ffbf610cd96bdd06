package service

import (
	"testing"

	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLessonService(db *gorm.DB) *LessonService {
	quizSets := newQuizSetService(db)
	return NewLessonService(
		repository.NewLessonRepository(db),
		repository.NewVideoRepository(db),
		quizSets.QuizRepo,
		quizSets,
	)
}

func TestCreateLesson_SeedsInitialVideo(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	course := &model.Course{Title: "VSL Basics"}
	require.NoError(t, db.Create(course).Error)

	lesson, err := svc.Create(LessonRequest{
		CourseID: course.ID,
		Title:    "Greetings",
		Category: "common",
		VideoURL: "https://cdn.example.com/greetings.mp4",
	})
	require.NoError(t, err)

	videos, err := svc.VideoRepo.ListByLesson(lesson.ID)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "https://cdn.example.com/greetings.mp4", videos[0].VideoURL)
}

func TestGetDetail_StripsCorrectAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)
	lesson := seedLesson(t, db)

	_, quizzes := seedQuizSet(t, svc.QuizSets, lesson.ID, []string{"0", "1"})

	detail, err := svc.GetDetail(lesson.ID)
	require.NoError(t, err)

	require.NotNil(t, detail.QuizSet)
	require.Len(t, detail.Quizzes, 2)
	assert.Equal(t, quizzes[0].ID, detail.Quizzes[0].ID)
	assert.Equal(t, []string{"A", "B", "C"}, detail.Quizzes[0].Options)
}

func TestGetDetail_NoQuizSet(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)
	lesson := seedLesson(t, db)

	detail, err := svc.GetDetail(lesson.ID)
	require.NoError(t, err)

	assert.Nil(t, detail.QuizSet)
	assert.Empty(t, detail.Quizzes)
}

func TestListLessons_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	course := &model.Course{Title: "VSL Basics"}
	require.NoError(t, db.Create(course).Error)

	for _, spec := range []struct {
		title    string
		category string
	}{
		{"Letters A-E", "alphabet"},
		{"Letters F-K", "alphabet"},
		{"Counting", "numbers"},
	} {
		_, err := svc.Create(LessonRequest{CourseID: course.ID, Title: spec.title, Category: spec.category})
		require.NoError(t, err)
	}

	lessons, total, err := svc.List(repository.LessonFilter{Category: "alphabet"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, lessons, 2)
}

func TestDeleteLesson_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(db)

	err := svc.Delete(123)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

package service

import (
	"testing"

	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.UserCourse{},
		&model.Lesson{},
		&model.Video{},
		&model.QuizSet{},
		&model.Quiz{},
		&model.Progress{},
	))
	return db
}

func newQuizSetService(db *gorm.DB) *QuizSetService {
	return NewQuizSetService(
		repository.NewQuizRepository(db),
		repository.NewLessonRepository(db),
		nil,
		db,
	)
}

func newProgressService(db *gorm.DB) *ProgressService {
	return NewProgressService(
		repository.NewProgressRepository(db),
		repository.NewLessonRepository(db),
	)
}

func seedLesson(t *testing.T, db *gorm.DB) *model.Lesson {
	t.Helper()

	course := &model.Course{Title: "VSL Basics", Level: model.Beginner}
	require.NoError(t, db.Create(course).Error)

	lesson := &model.Lesson{
		CourseID: course.ID,
		Title:    "The Alphabet",
		Category: model.CategoryAlphabet,
		Level:    model.Beginner,
	}
	require.NoError(t, db.Create(lesson).Error)
	return lesson
}

func seedQuizSet(t *testing.T, svc *QuizSetService, lessonID uint, answers []string) (*model.QuizSet, []model.Quiz) {
	t.Helper()

	set, err := svc.CreateSet(QuizSetRequest{Title: "Alphabet Quiz", LessonID: &lessonID})
	require.NoError(t, err)

	quizzes := make([]model.Quiz, 0, len(answers))
	for _, answer := range answers {
		quiz, err := svc.CreateQuestion(set.ID, QuizQuestionRequest{
			Question:      "Which sign is shown?",
			Options:       []string{"A", "B", "C"},
			CorrectAnswer: answer,
		})
		require.NoError(t, err)
		quizzes = append(quizzes, *quiz)
	}
	return set, quizzes
}

package service

import (
	"testing"
	"time"

	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProgress_CreatesWithDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(db)
	lesson := seedLesson(t, db)

	progress, err := svc.Save(1, SaveProgressRequest{LessonID: lesson.ID})
	require.NoError(t, err)

	assert.Equal(t, uint(1), progress.UserID)
	assert.Equal(t, lesson.ID, progress.LessonID)
	assert.Empty(t, progress.CompletedVideos)
	assert.Equal(t, 0, progress.QuizScore)
	assert.Equal(t, 0, progress.PracticeScore)
	assert.WithinDuration(t, time.Now(), progress.LastAccess, 5*time.Second)
}

func TestSaveProgress_PartialUpdatePreservesOtherFields(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(db)
	lesson := seedLesson(t, db)

	practice := 50
	_, err := svc.Save(1, SaveProgressRequest{LessonID: lesson.ID, PracticeScore: &practice})
	require.NoError(t, err)

	quiz := 80
	videos := []uint{1, 2}
	_, err = svc.Save(1, SaveProgressRequest{LessonID: lesson.ID, QuizScore: &quiz, CompletedVideos: &videos})
	require.NoError(t, err)

	var stored model.Progress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", 1, lesson.ID).First(&stored).Error)
	assert.Equal(t, 80, stored.QuizScore)
	assert.Equal(t, 50, stored.PracticeScore)
	assert.Equal(t, model.UintList{1, 2}, stored.CompletedVideos)
}

func TestSaveProgress_OneRowPerUserAndLesson(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(db)
	lesson := seedLesson(t, db)

	_, err := svc.Save(1, SaveProgressRequest{LessonID: lesson.ID})
	require.NoError(t, err)
	_, err = svc.Save(1, SaveProgressRequest{LessonID: lesson.ID})
	require.NoError(t, err)
	_, err = svc.Save(2, SaveProgressRequest{LessonID: lesson.ID})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Progress{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestSaveProgress_EmptyRequestOnlyTouchesLastAccess(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(db)
	lesson := seedLesson(t, db)

	quiz := 90
	_, err := svc.Save(1, SaveProgressRequest{LessonID: lesson.ID, QuizScore: &quiz})
	require.NoError(t, err)

	_, err = svc.Save(1, SaveProgressRequest{LessonID: lesson.ID})
	require.NoError(t, err)

	var stored model.Progress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", 1, lesson.ID).First(&stored).Error)
	assert.Equal(t, 90, stored.QuizScore)
}

func TestSaveProgress_RejectsOutOfRangeScores(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(db)
	lesson := seedLesson(t, db)

	bad := 101
	_, err := svc.Save(1, SaveProgressRequest{LessonID: lesson.ID, QuizScore: &bad})
	var vErr *util.ValidationError
	assert.ErrorAs(t, err, &vErr)

	negative := -1
	_, err = svc.Save(1, SaveProgressRequest{LessonID: lesson.ID, PracticeScore: &negative})
	assert.ErrorAs(t, err, &vErr)
}

func TestSaveProgress_UnknownLesson(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(db)

	_, err := svc.Save(1, SaveProgressRequest{LessonID: 999})
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

package service

import (
	"testing"

	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSet_RequiresTitle(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)

	_, err := svc.CreateSet(QuizSetRequest{Title: ""})
	var vErr *util.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCreateSet_AssignsToLessonInOneCall(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)
	lesson := seedLesson(t, db)

	set, err := svc.CreateSet(QuizSetRequest{Title: "Numbers Quiz", LessonID: &lesson.ID})
	require.NoError(t, err)

	reloaded, err := svc.LessonRepo.FindByID(lesson.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.QuizSetID)
	assert.Equal(t, set.ID, *reloaded.QuizSetID)
}

func TestAssignToLesson_ReassignmentMovesBackReference(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)
	lesson := seedLesson(t, db)

	first, err := svc.CreateSet(QuizSetRequest{Title: "First", LessonID: &lesson.ID})
	require.NoError(t, err)
	second, err := svc.CreateSet(QuizSetRequest{Title: "Second"})
	require.NoError(t, err)

	require.NoError(t, svc.AssignToLesson(lesson.ID, &second.ID))

	reloaded, err := svc.LessonRepo.FindByID(lesson.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.QuizSetID)
	assert.Equal(t, second.ID, *reloaded.QuizSetID)

	firstReloaded, err := svc.GetSet(first.ID)
	require.NoError(t, err)
	assert.Nil(t, firstReloaded.LessonID)

	secondReloaded, err := svc.GetSet(second.ID)
	require.NoError(t, err)
	require.NotNil(t, secondReloaded.LessonID)
	assert.Equal(t, lesson.ID, *secondReloaded.LessonID)
}

func TestAssignToLesson_NilClearsAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)
	lesson := seedLesson(t, db)

	_, err := svc.CreateSet(QuizSetRequest{Title: "Set", LessonID: &lesson.ID})
	require.NoError(t, err)

	require.NoError(t, svc.AssignToLesson(lesson.ID, nil))

	reloaded, err := svc.LessonRepo.FindByID(lesson.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.QuizSetID)
}

func TestAssignToLesson_RejectsDeletedSet(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)
	lesson := seedLesson(t, db)

	set, err := svc.CreateSet(QuizSetRequest{Title: "Doomed"})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteSet(set.ID))

	err = svc.AssignToLesson(lesson.ID, &set.ID)
	assert.ErrorIs(t, err, util.ErrQuizSetNotFound)
}

func TestDeleteSet_CascadesToOwnQuestionsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)
	lesson := seedLesson(t, db)

	doomed, _ := seedQuizSet(t, svc, lesson.ID, []string{"0", "1"})

	other, err := svc.CreateSet(QuizSetRequest{Title: "Survivor"})
	require.NoError(t, err)
	_, err = svc.CreateQuestion(other.ID, QuizQuestionRequest{
		Question:      "Still here?",
		Options:       []string{"yes", "no"},
		CorrectAnswer: "0",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSet(doomed.ID))

	_, err = svc.GetSet(doomed.ID)
	assert.ErrorIs(t, err, util.ErrQuizSetNotFound)

	var doomedCount, survivorCount int64
	require.NoError(t, db.Model(&model.Quiz{}).Where("quiz_set_id = ?", doomed.ID).Count(&doomedCount).Error)
	require.NoError(t, db.Model(&model.Quiz{}).Where("quiz_set_id = ?", other.ID).Count(&survivorCount).Error)
	assert.Equal(t, int64(0), doomedCount)
	assert.Equal(t, int64(1), survivorCount)

	// The lesson no longer points at the deleted set.
	reloaded, err := svc.LessonRepo.FindByID(lesson.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.QuizSetID)
}

func TestCreateSet_UnknownLessonLeavesNothingBehind(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)

	missing := uint(999)
	_, err := svc.CreateSet(QuizSetRequest{Title: "Orphan", LessonID: &missing})
	assert.ErrorIs(t, err, util.ErrLessonNotFound)

	var count int64
	require.NoError(t, db.Model(&model.QuizSet{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteSet_UnassignsEveryPointingLesson(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)

	first := seedLesson(t, db)
	second := seedLesson(t, db)

	set, err := svc.CreateSet(QuizSetRequest{Title: "Shared", LessonID: &first.ID})
	require.NoError(t, err)
	require.NoError(t, svc.AssignToLesson(second.ID, &set.ID))

	require.NoError(t, svc.DeleteSet(set.ID))

	for _, lessonID := range []uint{first.ID, second.ID} {
		reloaded, err := svc.LessonRepo.FindByID(lessonID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.QuizSetID)

		_, err = svc.FindSetForLesson(lessonID)
		assert.ErrorIs(t, err, util.ErrNoQuizSetForLesson)
	}
}

func TestCreateQuestion_ValidatesOptionsAndIndex(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)

	set, err := svc.CreateSet(QuizSetRequest{Title: "Validation"})
	require.NoError(t, err)

	_, err = svc.CreateQuestion(set.ID, QuizQuestionRequest{
		Question:      "Too few options",
		Options:       []string{"only"},
		CorrectAnswer: "0",
	})
	var vErr *util.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateQuestion(set.ID, QuizQuestionRequest{
		Question:      "Index out of range",
		Options:       []string{"a", "b"},
		CorrectAnswer: "5",
	})
	assert.ErrorAs(t, err, &vErr)

	// Non-numeric tags are opaque and always allowed.
	_, err = svc.CreateQuestion(set.ID, QuizQuestionRequest{
		Question:      "Free-form answer",
		Options:       []string{"a", "b"},
		CorrectAnswer: "b",
	})
	assert.NoError(t, err)
}

func TestReplaceQuestions_SwapsWholeList(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)
	lesson := seedLesson(t, db)

	set, _ := seedQuizSet(t, svc, lesson.ID, []string{"0", "1", "2", "0", "1"})

	replacement := []QuizQuestionRequest{
		{Question: "New 1", Options: []string{"a", "b"}, CorrectAnswer: "0"},
		{Question: "New 2", Options: []string{"a", "b"}, CorrectAnswer: "1"},
		{Question: "New 3", Options: []string{"a", "b"}, CorrectAnswer: "0"},
	}
	_, err := svc.ReplaceQuestions(set.ID, replacement)
	require.NoError(t, err)

	live, err := svc.ListQuestions(set.ID)
	require.NoError(t, err)
	require.Len(t, live, 3)
	assert.Equal(t, "New 1", live[0].Question)
}

func TestReplaceQuestions_InvalidEntryLeavesSetUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)
	lesson := seedLesson(t, db)

	set, _ := seedQuizSet(t, svc, lesson.ID, []string{"0", "1"})

	_, err := svc.ReplaceQuestions(set.ID, []QuizQuestionRequest{
		{Question: "Fine", Options: []string{"a", "b"}, CorrectAnswer: "0"},
		{Question: "Broken", Options: []string{"only"}, CorrectAnswer: "0"},
	})
	var vErr *util.ValidationError
	require.ErrorAs(t, err, &vErr)

	live, err := svc.ListQuestions(set.ID)
	require.NoError(t, err)
	assert.Len(t, live, 2)
}

func TestFindSetForLesson_UnassignedAndStaleAssignments(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizSetService(db)
	lesson := seedLesson(t, db)

	_, err := svc.FindSetForLesson(lesson.ID)
	assert.ErrorIs(t, err, util.ErrNoQuizSetForLesson)

	set, err := svc.CreateSet(QuizSetRequest{Title: "Transient", LessonID: &lesson.ID})
	require.NoError(t, err)

	found, err := svc.FindSetForLesson(lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, set.ID, found.ID)

	require.NoError(t, svc.DeleteSet(set.ID))

	_, err = svc.FindSetForLesson(lesson.ID)
	assert.ErrorIs(t, err, util.ErrNoQuizSetForLesson)
}

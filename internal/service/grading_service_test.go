package service

import (
	"encoding/json"
	"testing"

	"vsl_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_ScoresAgainstLiveQuestions(t *testing.T) {
	db := newTestDB(t)
	quizSets := newQuizSetService(db)
	grading := NewGradingService(quizSets, quizSets.QuizRepo)

	lesson := seedLesson(t, db)
	_, quizzes := seedQuizSet(t, quizSets, lesson.ID, []string{"0", "1", "0", "2"})

	result, err := grading.Submit(lesson.ID, []SubmittedAnswer{
		{QuizID: quizzes[0].ID, Answer: json.RawMessage(`"0"`)},
		{QuizID: quizzes[1].ID, Answer: json.RawMessage(`"1"`)},
		{QuizID: quizzes[2].ID, Answer: json.RawMessage(`"2"`)}, // wrong
		{QuizID: quizzes[3].ID, Answer: json.RawMessage(`"2"`)},
	})
	require.NoError(t, err)

	assert.Equal(t, 75, result.Score)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, 3, result.CorrectAnswers)
	require.Len(t, result.Results, 4)
	assert.True(t, result.Results[0].Correct)
	assert.False(t, result.Results[2].Correct)
	assert.Equal(t, "0", result.Results[2].CorrectAnswer)
}

func TestSubmit_OrderIndependent(t *testing.T) {
	db := newTestDB(t)
	quizSets := newQuizSetService(db)
	grading := NewGradingService(quizSets, quizSets.QuizRepo)

	lesson := seedLesson(t, db)
	_, quizzes := seedQuizSet(t, quizSets, lesson.ID, []string{"0", "1", "0", "2"})

	answers := []SubmittedAnswer{
		{QuizID: quizzes[0].ID, Answer: json.RawMessage(`"0"`)},
		{QuizID: quizzes[1].ID, Answer: json.RawMessage(`"1"`)},
		{QuizID: quizzes[2].ID, Answer: json.RawMessage(`"2"`)}, // wrong
		{QuizID: quizzes[3].ID, Answer: json.RawMessage(`"2"`)},
	}
	reversed := []SubmittedAnswer{answers[3], answers[2], answers[1], answers[0]}

	inOrder, err := grading.Submit(lesson.ID, answers)
	require.NoError(t, err)
	outOfOrder, err := grading.Submit(lesson.ID, reversed)
	require.NoError(t, err)

	assert.Equal(t, 75, inOrder.Score)
	assert.Equal(t, inOrder.Score, outOfOrder.Score)
	assert.Equal(t, inOrder.CorrectAnswers, outOfOrder.CorrectAnswers)
	assert.Equal(t, inOrder.TotalQuestions, outOfOrder.TotalQuestions)
}

func TestSubmit_OmittedAnswersAreWrong(t *testing.T) {
	db := newTestDB(t)
	quizSets := newQuizSetService(db)
	grading := NewGradingService(quizSets, quizSets.QuizRepo)

	lesson := seedLesson(t, db)
	_, quizzes := seedQuizSet(t, quizSets, lesson.ID, []string{"0", "1"})

	result, err := grading.Submit(lesson.ID, []SubmittedAnswer{
		{QuizID: quizzes[0].ID, Answer: json.RawMessage(`"0"`)},
	})
	require.NoError(t, err)

	// The denominator stays the live question count.
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 1, result.CorrectAnswers)
}

func TestSubmit_UnknownQuizIDCannotRaiseScore(t *testing.T) {
	db := newTestDB(t)
	quizSets := newQuizSetService(db)
	grading := NewGradingService(quizSets, quizSets.QuizRepo)

	lesson := seedLesson(t, db)
	_, quizzes := seedQuizSet(t, quizSets, lesson.ID, []string{"0"})

	result, err := grading.Submit(lesson.ID, []SubmittedAnswer{
		{QuizID: quizzes[0].ID, Answer: json.RawMessage(`"0"`)},
		{QuizID: 9999, Answer: json.RawMessage(`"0"`)},
	})
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 1, result.TotalQuestions)
	require.Len(t, result.Results, 2)
	assert.False(t, result.Results[1].Correct)
	assert.Equal(t, "quiz not found", result.Results[1].Message)
}

func TestSubmit_ExactStringComparison(t *testing.T) {
	db := newTestDB(t)
	quizSets := newQuizSetService(db)
	grading := NewGradingService(quizSets, quizSets.QuizRepo)

	lesson := seedLesson(t, db)
	set, err := quizSets.CreateSet(QuizSetRequest{Title: "Vocabulary", LessonID: &lesson.ID})
	require.NoError(t, err)

	quiz, err := quizSets.CreateQuestion(set.ID, QuizQuestionRequest{
		Question:      "Sign for hello?",
		Options:       []string{"Xin chào", "Tạm biệt"},
		CorrectAnswer: "Xin chào",
	})
	require.NoError(t, err)

	// No case folding or trimming on either side.
	result, err := grading.Submit(lesson.ID, []SubmittedAnswer{
		{QuizID: quiz.ID, Answer: json.RawMessage(`"xin chào"`)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)

	result, err = grading.Submit(lesson.ID, []SubmittedAnswer{
		{QuizID: quiz.ID, Answer: json.RawMessage(`"Xin chào"`)},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
}

func TestSubmit_NumericAnswersCoerced(t *testing.T) {
	db := newTestDB(t)
	quizSets := newQuizSetService(db)
	grading := NewGradingService(quizSets, quizSets.QuizRepo)

	lesson := seedLesson(t, db)
	_, quizzes := seedQuizSet(t, quizSets, lesson.ID, []string{"1"})

	// A bare JSON number matches the stored index tag.
	result, err := grading.Submit(lesson.ID, []SubmittedAnswer{
		{QuizID: quizzes[0].ID, Answer: json.RawMessage(`1`)},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
}

func TestSubmit_NoQuizSetAssigned(t *testing.T) {
	db := newTestDB(t)
	quizSets := newQuizSetService(db)
	grading := NewGradingService(quizSets, quizSets.QuizRepo)

	lesson := seedLesson(t, db)

	_, err := grading.Submit(lesson.ID, nil)
	assert.ErrorIs(t, err, util.ErrNoQuizSetForLesson)
}

func TestSubmit_EmptyQuizSet(t *testing.T) {
	db := newTestDB(t)
	quizSets := newQuizSetService(db)
	grading := NewGradingService(quizSets, quizSets.QuizRepo)

	lesson := seedLesson(t, db)
	_, err := quizSets.CreateSet(QuizSetRequest{Title: "Empty", LessonID: &lesson.ID})
	require.NoError(t, err)

	_, err = grading.Submit(lesson.ID, nil)
	assert.ErrorIs(t, err, util.ErrQuizSetEmpty)
}

func TestSubmit_LessonNotFound(t *testing.T) {
	db := newTestDB(t)
	quizSets := newQuizSetService(db)
	grading := NewGradingService(quizSets, quizSets.QuizRepo)

	_, err := grading.Submit(424242, nil)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

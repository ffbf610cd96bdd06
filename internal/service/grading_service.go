package service

import (
	"encoding/json"
	"math"
	"strings"
	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/util"
)

// GradingService scores quiz submissions against the lesson's
// currently assigned quiz set. It never persists the score; that is
// the caller's job.
type GradingService struct {
	QuizSets *QuizSetService
	QuizRepo *repository.QuizRepository
}

func NewGradingService(quizSets *QuizSetService, quizRepo *repository.QuizRepository) *GradingService {
	return &GradingService{
		QuizSets: quizSets,
		QuizRepo: quizRepo,
	}
}

type SubmittedAnswer struct {
	QuizID uint            `json:"quizId" binding:"required"`
	Answer json.RawMessage `json:"answer"`
}

type QuestionResult struct {
	QuizID        uint   `json:"quizId"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
	Submitted     string `json:"submitted"`
	Message       string `json:"message,omitempty"`
}

type GradeResult struct {
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	CorrectAnswers int              `json:"correctAnswers"`
	Results        []QuestionResult `json:"results"`
}

// Submit grades the submitted answers for a lesson. The stored
// correct answer is an opaque string compared by exact equality; no
// normalization of case or whitespace. The denominator is always the
// live question count, so omitted questions are implicitly wrong and
// extra submissions cannot raise the score.
func (s *GradingService) Submit(lessonID uint, answers []SubmittedAnswer) (*GradeResult, error) {
	set, err := s.QuizSets.FindSetForLesson(lessonID)
	if err != nil {
		return nil, err
	}

	quizzes, err := s.QuizRepo.ListQuestionsBySet(set.ID)
	if err != nil {
		return nil, err
	}
	if len(quizzes) == 0 {
		return nil, util.ErrQuizSetEmpty
	}

	byID := make(map[uint]*model.Quiz, len(quizzes))
	for i := range quizzes {
		byID[quizzes[i].ID] = &quizzes[i]
	}

	correctCount := 0
	results := make([]QuestionResult, 0, len(answers))
	for _, submitted := range answers {
		quiz, ok := byID[submitted.QuizID]
		if !ok {
			results = append(results, QuestionResult{
				QuizID:    submitted.QuizID,
				Correct:   false,
				Submitted: coerceAnswer(submitted.Answer),
				Message:   "quiz not found",
			})
			continue
		}

		answer := coerceAnswer(submitted.Answer)
		isCorrect := quiz.CorrectAnswer == answer
		if isCorrect {
			correctCount++
		}

		results = append(results, QuestionResult{
			QuizID:        submitted.QuizID,
			Correct:       isCorrect,
			CorrectAnswer: quiz.CorrectAnswer,
			Submitted:     answer,
		})
	}

	score := int(math.Round(float64(correctCount) / float64(len(quizzes)) * 100))

	return &GradeResult{
		Score:          score,
		TotalQuestions: len(quizzes),
		CorrectAnswers: correctCount,
		Results:        results,
	}, nil
}

// coerceAnswer stringifies a submitted answer the way the quiz author
// stored it: JSON strings are unquoted, anything else (numbers,
// booleans) is taken verbatim.
func coerceAnswer(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

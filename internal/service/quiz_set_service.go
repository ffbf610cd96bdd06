package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// QuizSetService manages quiz sets, their questions and the
// set-to-lesson assignment. Lesson.QuizSetID is the single source of
// truth for the assignment; QuizSet.LessonID is a denormalized
// back-reference this service keeps in sync.
type QuizSetService struct {
	QuizRepo   *repository.QuizRepository
	LessonRepo *repository.LessonRepository
	Redis      *redis.Client
	DB         *gorm.DB
}

func NewQuizSetService(quizRepo *repository.QuizRepository, lessonRepo *repository.LessonRepository, rdb *redis.Client, db *gorm.DB) *QuizSetService {
	return &QuizSetService{
		QuizRepo:   quizRepo,
		LessonRepo: lessonRepo,
		Redis:      rdb,
		DB:         db,
	}
}

const (
	lessonQuizSetKeyPrefix = "quiz_set:lesson:"
	lessonQuizSetCacheTTL  = 10 * time.Minute
)

type QuizSetRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	LessonID    *uint  `json:"lessonId"`
}

func (s *QuizSetService) CreateSet(req QuizSetRequest) (*model.QuizSet, error) {
	if req.Title == "" {
		return nil, util.Validation("title must not be empty")
	}

	// Validate the target lesson before persisting anything so a bad
	// lessonId cannot leave an orphaned unassigned set behind.
	if req.LessonID != nil {
		if _, err := s.LessonRepo.FindByID(*req.LessonID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrLessonNotFound
			}
			return nil, err
		}
	}

	set := &model.QuizSet{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.QuizRepo.CreateSet(set); err != nil {
		return nil, err
	}

	if req.LessonID != nil {
		if err := s.AssignToLesson(*req.LessonID, &set.ID); err != nil {
			return nil, err
		}
		set.LessonID = req.LessonID
	}
	return set, nil
}

func (s *QuizSetService) GetSet(id uint) (*model.QuizSet, error) {
	set, err := s.QuizRepo.FindSetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizSetNotFound
		}
		return nil, err
	}
	return set, nil
}

func (s *QuizSetService) ListSets(page, limit int) ([]model.QuizSet, int64, error) {
	return s.QuizRepo.ListSets(page, limit)
}

type QuizSetUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (s *QuizSetService) UpdateSet(id uint, req QuizSetUpdateRequest) (*model.QuizSet, error) {
	set, err := s.GetSet(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, util.Validation("title must not be empty")
		}
		set.Title = *req.Title
	}
	if req.Description != nil {
		set.Description = *req.Description
	}

	if err := s.QuizRepo.UpdateSet(set); err != nil {
		return nil, err
	}
	s.invalidateLessonCache(set.LessonID)
	return set, nil
}

// DeleteSet soft-deletes the set, cascades the soft delete to all of
// its questions and unassigns the set from any lesson pointing at it.
func (s *QuizSetService) DeleteSet(id uint) error {
	if _, err := s.GetSet(id); err != nil {
		return err
	}

	// Every lesson pointing at the set gets unassigned, so collect
	// them all up front for cache invalidation; the denormalized
	// back-reference only names one of them.
	var lessonIDs []uint
	if err := s.DB.Model(&model.Lesson{}).Where("quiz_set_id = ?", id).
		Pluck("id", &lessonIDs).Error; err != nil {
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.QuizSet{}, id).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_set_id = ?", id).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		return tx.Model(&model.Lesson{}).Where("quiz_set_id = ?", id).
			Update("quiz_set_id", nil).Error
	})
	if err != nil {
		return err
	}

	for i := range lessonIDs {
		s.invalidateLessonCache(&lessonIDs[i])
	}
	return nil
}

// AssignToLesson overwrites the lesson's quiz set assignment. A nil
// setID unassigns. The target set must exist and be live.
func (s *QuizSetService) AssignToLesson(lessonID uint, setID *uint) error {
	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrLessonNotFound
		}
		return err
	}

	if setID != nil {
		if _, err := s.GetSet(*setID); err != nil {
			return err
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Lesson{}).Where("id = ?", lessonID).
			Update("quiz_set_id", setID).Error; err != nil {
			return err
		}

		// Keep the denormalized back-reference in sync.
		if lesson.QuizSetID != nil {
			if err := tx.Model(&model.QuizSet{}).Where("id = ?", *lesson.QuizSetID).
				Update("lesson_id", nil).Error; err != nil {
				return err
			}
		}
		if setID != nil {
			return tx.Model(&model.QuizSet{}).Where("id = ?", *setID).
				Update("lesson_id", lessonID).Error
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateLessonCache(&lessonID)
	return nil
}

// FindSetForLesson resolves the active quiz set via the lesson's
// quiz_set_id foreign key, with a short-lived Redis cache in front.
func (s *QuizSetService) FindSetForLesson(lessonID uint) (*model.QuizSet, error) {
	if set, ok := s.cachedSetForLesson(lessonID); ok {
		return set, nil
	}

	lesson, err := s.LessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	if lesson.QuizSetID == nil {
		return nil, util.ErrNoQuizSetForLesson
	}

	set, err := s.QuizRepo.FindSetByID(*lesson.QuizSetID)
	if err != nil {
		// The assigned set was soft-deleted out from under the lesson.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoQuizSetForLesson
		}
		return nil, err
	}

	s.cacheSetForLesson(lessonID, set)
	return set, nil
}

// Question operations

type QuizQuestionRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
}

func validateQuestion(req QuizQuestionRequest) error {
	if len(req.Options) < 2 {
		return util.Validation("options must contain at least 2 items")
	}
	// correct_answer stays an opaque tag, but when it looks like an
	// index it must point into the options list.
	if idx, err := strconv.Atoi(req.CorrectAnswer); err == nil {
		if idx < 0 || idx >= len(req.Options) {
			return util.Validation(fmt.Sprintf("correct answer index %d is out of range for %d options", idx, len(req.Options)))
		}
	}
	return nil
}

func (s *QuizSetService) CreateQuestion(setID uint, req QuizQuestionRequest) (*model.Quiz, error) {
	if _, err := s.GetSet(setID); err != nil {
		return nil, err
	}
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		QuizSetID:     setID,
		Question:      req.Question,
		Options:       model.StringList(req.Options),
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.QuizRepo.CreateQuestion(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizSetService) UpdateQuestion(id uint, req QuizQuestionRequest) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindQuestionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	quiz.Question = req.Question
	quiz.Options = model.StringList(req.Options)
	quiz.CorrectAnswer = req.CorrectAnswer
	if err := s.QuizRepo.UpdateQuestion(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizSetService) DeleteQuestion(id uint) error {
	if _, err := s.QuizRepo.FindQuestionByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuizNotFound
		}
		return err
	}
	return s.QuizRepo.DeleteQuestion(id)
}

func (s *QuizSetService) ListQuestions(setID uint) ([]model.Quiz, error) {
	if _, err := s.GetSet(setID); err != nil {
		return nil, err
	}
	return s.QuizRepo.ListQuestionsBySet(setID)
}

// ReplaceQuestions soft-deletes every live question in the set and
// inserts the given list in its place.
func (s *QuizSetService) ReplaceQuestions(setID uint, reqs []QuizQuestionRequest) ([]model.Quiz, error) {
	if _, err := s.GetSet(setID); err != nil {
		return nil, err
	}
	for _, req := range reqs {
		if err := validateQuestion(req); err != nil {
			return nil, err
		}
	}

	quizzes := make([]model.Quiz, len(reqs))
	for i, req := range reqs {
		quizzes[i] = model.Quiz{
			QuizSetID:     setID,
			Question:      req.Question,
			Options:       model.StringList(req.Options),
			CorrectAnswer: req.CorrectAnswer,
		}
	}

	if err := s.QuizRepo.ReplaceQuestions(setID, quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Cache helpers. The Redis client is optional; without it every lookup
// goes straight to the database.

func (s *QuizSetService) cachedSetForLesson(lessonID uint) (*model.QuizSet, bool) {
	if s.Redis == nil {
		return nil, false
	}

	key := fmt.Sprintf("%s%d", lessonQuizSetKeyPrefix, lessonID)
	val, err := s.Redis.Get(context.Background(), key).Result()
	if err != nil {
		return nil, false
	}

	var set model.QuizSet
	if err := json.Unmarshal([]byte(val), &set); err != nil {
		return nil, false
	}
	return &set, true
}

func (s *QuizSetService) cacheSetForLesson(lessonID uint, set *model.QuizSet) {
	if s.Redis == nil {
		return
	}

	val, err := json.Marshal(set)
	if err != nil {
		return
	}
	key := fmt.Sprintf("%s%d", lessonQuizSetKeyPrefix, lessonID)
	s.Redis.Set(context.Background(), key, val, lessonQuizSetCacheTTL)
}

func (s *QuizSetService) invalidateLessonCache(lessonID *uint) {
	if s.Redis == nil || lessonID == nil {
		return
	}
	key := fmt.Sprintf("%s%d", lessonQuizSetKeyPrefix, *lessonID)
	s.Redis.Del(context.Background(), key)
}

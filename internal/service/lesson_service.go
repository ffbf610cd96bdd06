package service

import (
	"errors"
	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/util"

	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	VideoRepo  *repository.VideoRepository
	QuizRepo   *repository.QuizRepository
	QuizSets   *QuizSetService
}

func NewLessonService(lessonRepo *repository.LessonRepository, videoRepo *repository.VideoRepository, quizRepo *repository.QuizRepository, quizSets *QuizSetService) *LessonService {
	return &LessonService{
		LessonRepo: lessonRepo,
		VideoRepo:  videoRepo,
		QuizRepo:   quizRepo,
		QuizSets:   quizSets,
	}
}

type LessonRequest struct {
	CourseID     uint   `json:"courseId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" binding:"omitempty,oneof=alphabet numbers common advanced"`
	Level        string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Thumbnail    string `json:"thumbnail"`
	DisplayOrder int    `json:"displayOrder"`
	// VideoURL, when present, seeds the lesson with an initial video.
	VideoURL string `json:"videoUrl"`
}

func (s *LessonService) Create(req LessonRequest) (*model.Lesson, error) {
	category := model.LessonCategory(req.Category)
	if category == "" {
		category = model.CategoryAlphabet
	}
	level := model.CourseLevel(req.Level)
	if level == "" {
		level = model.Beginner
	}

	lesson := &model.Lesson{
		CourseID:     req.CourseID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     category,
		Level:        level,
		Thumbnail:    req.Thumbnail,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}

	if req.VideoURL != "" {
		video := &model.Video{
			LessonID: lesson.ID,
			Title:    "Video - " + req.Title,
			VideoURL: req.VideoURL,
		}
		if err := s.VideoRepo.Create(video); err != nil {
			return nil, err
		}
	}
	return lesson, nil
}

func (s *LessonService) Get(id uint) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) List(filter repository.LessonFilter, page, limit int) ([]model.Lesson, int64, error) {
	return s.LessonRepo.List(filter, page, limit)
}

// StudentQuiz is a question stripped of its answer tag for delivery
// to learners.
type StudentQuiz struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type LessonDetail struct {
	*model.Lesson
	Videos  []model.Video  `json:"videos"`
	QuizSet *model.QuizSet `json:"quizSet,omitempty"`
	Quizzes []StudentQuiz  `json:"quizzes"`
}

// GetDetail returns the lesson with its videos and the questions of
// its assigned quiz set, without correct answers.
func (s *LessonService) GetDetail(id uint) (*LessonDetail, error) {
	lesson, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	videos, err := s.VideoRepo.ListByLesson(id)
	if err != nil {
		return nil, err
	}

	detail := &LessonDetail{
		Lesson:  lesson,
		Videos:  videos,
		Quizzes: []StudentQuiz{},
	}

	set, err := s.QuizSets.FindSetForLesson(id)
	if err != nil {
		if errors.Is(err, util.ErrNoQuizSetForLesson) {
			return detail, nil
		}
		return nil, err
	}
	detail.QuizSet = set

	quizzes, err := s.QuizRepo.ListQuestionsBySet(set.ID)
	if err != nil {
		return nil, err
	}
	for _, q := range quizzes {
		detail.Quizzes = append(detail.Quizzes, StudentQuiz{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return detail, nil
}

type LessonUpdateRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category" binding:"omitempty,oneof=alphabet numbers common advanced"`
	Level        *string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Thumbnail    *string `json:"thumbnail"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (s *LessonService) Update(id uint, req LessonUpdateRequest) (*model.Lesson, error) {
	lesson, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, util.Validation("title must not be empty")
		}
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Category != nil {
		lesson.Category = model.LessonCategory(*req.Category)
	}
	if req.Level != nil {
		lesson.Level = model.CourseLevel(*req.Level)
	}
	if req.Thumbnail != nil {
		lesson.Thumbnail = *req.Thumbnail
	}
	if req.DisplayOrder != nil {
		lesson.DisplayOrder = *req.DisplayOrder
	}

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.LessonRepo.Delete(id)
}

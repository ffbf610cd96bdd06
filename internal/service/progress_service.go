package service

import (
	"errors"
	"time"
	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/util"

	"gorm.io/gorm"
)

// ProgressService keeps one progress row per (user, lesson) pair.
// Updates are field-scoped so the two independent writers (video
// tracking and quiz submission) do not clobber each other's fields.
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	LessonRepo   *repository.LessonRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, lessonRepo *repository.LessonRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		LessonRepo:   lessonRepo,
	}
}

type SaveProgressRequest struct {
	LessonID        uint    `json:"lessonId" binding:"required"`
	CompletedVideos *[]uint `json:"completedVideos"`
	QuizScore       *int    `json:"quizScore" binding:"omitempty,min=0,max=100"`
	PracticeScore   *int    `json:"practiceScore" binding:"omitempty,min=0,max=100"`
}

func (s *ProgressService) Save(userID uint, req SaveProgressRequest) (*model.Progress, error) {
	if req.QuizScore != nil && (*req.QuizScore < 0 || *req.QuizScore > 100) {
		return nil, util.Validation("quiz score must be between 0 and 100")
	}
	if req.PracticeScore != nil && (*req.PracticeScore < 0 || *req.PracticeScore > 100) {
		return nil, util.Validation("practice score must be between 0 and 100")
	}

	if _, err := s.LessonRepo.FindByID(req.LessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	progress, err := s.ProgressRepo.FindByUserAndLesson(userID, req.LessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.create(userID, req)
	}
	if err != nil {
		return nil, err
	}

	return s.update(progress, req)
}

func (s *ProgressService) create(userID uint, req SaveProgressRequest) (*model.Progress, error) {
	progress := &model.Progress{
		UserID:          userID,
		LessonID:        req.LessonID,
		CompletedVideos: model.UintList{},
		LastAccess:      time.Now(),
	}
	if req.CompletedVideos != nil {
		progress.CompletedVideos = model.UintList(*req.CompletedVideos)
	}
	if req.QuizScore != nil {
		progress.QuizScore = *req.QuizScore
	}
	if req.PracticeScore != nil {
		progress.PracticeScore = *req.PracticeScore
	}

	if err := s.ProgressRepo.Create(progress); err != nil {
		// A concurrent first write for the same pair got there first;
		// the caller retries as an update.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrProgressConflict
		}
		return nil, err
	}
	return progress, nil
}

func (s *ProgressService) update(progress *model.Progress, req SaveProgressRequest) (*model.Progress, error) {
	fields := map[string]interface{}{
		"last_access": time.Now(),
	}
	if req.CompletedVideos != nil {
		fields["completed_videos"] = model.UintList(*req.CompletedVideos)
		progress.CompletedVideos = model.UintList(*req.CompletedVideos)
	}
	if req.QuizScore != nil {
		fields["quiz_score"] = *req.QuizScore
		progress.QuizScore = *req.QuizScore
	}
	if req.PracticeScore != nil {
		fields["practice_score"] = *req.PracticeScore
		progress.PracticeScore = *req.PracticeScore
	}

	if err := s.ProgressRepo.UpdateFields(progress.ID, fields); err != nil {
		return nil, err
	}
	progress.LastAccess = fields["last_access"].(time.Time)
	return progress, nil
}

func (s *ProgressService) ListMine(userID uint) ([]model.Progress, error) {
	return s.ProgressRepo.ListByUser(userID)
}

func (s *ProgressService) ListByUser(userID uint) ([]model.Progress, error) {
	return s.ProgressRepo.ListByUser(userID)
}

func (s *ProgressService) ListAll(page, limit int) ([]model.Progress, int64, error) {
	return s.ProgressRepo.ListAll(page, limit)
}

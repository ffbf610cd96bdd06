package service

import (
	"errors"
	"time"

	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

type CourseRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Level        string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Thumbnail    string `json:"thumbnail"`
	DisplayOrder int    `json:"displayOrder"`
}

func (s *CourseService) Create(req CourseRequest) (*model.Course, error) {
	level := model.CourseLevel(req.Level)
	if level == "" {
		level = model.Beginner
	}

	course := &model.Course{
		Title:        req.Title,
		Description:  req.Description,
		Level:        level,
		Thumbnail:    req.Thumbnail,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Get(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) List(level string, page, limit int) ([]model.Course, int64, error) {
	return s.CourseRepo.List(level, page, limit)
}

type CourseUpdateRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Level        *string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Thumbnail    *string `json:"thumbnail"`
	DisplayOrder *int    `json:"displayOrder"`
}

func (s *CourseService) Update(id uint, req CourseUpdateRequest) (*model.Course, error) {
	course, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, util.Validation("title must not be empty")
		}
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Level != nil {
		course.Level = model.CourseLevel(*req.Level)
	}
	if req.Thumbnail != nil {
		course.Thumbnail = *req.Thumbnail
	}
	if req.DisplayOrder != nil {
		course.DisplayOrder = *req.DisplayOrder
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.CourseRepo.Delete(id)
}

func (s *CourseService) Enroll(userID, courseID uint) (*model.UserCourse, error) {
	if _, err := s.Get(courseID); err != nil {
		return nil, err
	}

	if _, err := s.CourseRepo.FindEnrollment(userID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	uc := &model.UserCourse{UserID: userID, CourseID: courseID, EnrolledAt: time.Now()}
	if err := s.CourseRepo.Enroll(uc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}
	return uc, nil
}

func (s *CourseService) ListEnrolled(userID uint) ([]model.Course, error) {
	return s.CourseRepo.ListEnrolled(userID)
}

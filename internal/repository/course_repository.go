package repository

import (
	"vsl_edu_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) List(level string, page, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64

	query := r.DB.Model(&model.Course{})
	if level != "" {
		query = query.Where("level = ?", level)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("display_order asc, id asc").Offset(offset).Limit(limit).Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

func (r *CourseRepository) Enroll(uc *model.UserCourse) error {
	return r.DB.Create(uc).Error
}

func (r *CourseRepository) FindEnrollment(userID, courseID uint) (*model.UserCourse, error) {
	var uc model.UserCourse
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&uc).Error
	if err != nil {
		return nil, err
	}
	return &uc, nil
}

func (r *CourseRepository) ListEnrolled(userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Joins("JOIN user_courses ON user_courses.course_id = courses.id AND user_courses.deleted_at IS NULL").
		Where("user_courses.user_id = ?", userID).
		Order("courses.display_order asc").
		Find(&courses).Error
	return courses, err
}

package repository

import (
	"vsl_edu_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

type LessonFilter struct {
	CourseID uint
	Category string
	Level    string
}

func (r *LessonRepository) List(filter LessonFilter, page, limit int) ([]model.Lesson, int64, error) {
	var lessons []model.Lesson
	var total int64

	query := r.DB.Model(&model.Lesson{})
	if filter.CourseID > 0 {
		query = query.Where("course_id = ?", filter.CourseID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Level != "" {
		query = query.Where("level = ?", filter.Level)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("display_order asc, id asc").Offset(offset).Limit(limit).Find(&lessons).Error
	return lessons, total, err
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}

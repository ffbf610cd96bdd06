package repository

import (
	"vsl_edu_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.Progress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) FindByUserAndLesson(userID, lessonID uint) (*model.Progress, error) {
	var progress model.Progress
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// UpdateFields applies a field-scoped partial update so that
// concurrent writers touching different fields do not clobber each
// other.
func (r *ProgressRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&model.Progress{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ProgressRepository) ListByUser(userID uint) ([]model.Progress, error) {
	var list []model.Progress
	err := r.DB.Where("user_id = ?", userID).Order("last_access desc").Find(&list).Error
	return list, err
}

func (r *ProgressRepository) ListAll(page, limit int) ([]model.Progress, int64, error) {
	var list []model.Progress
	var total int64

	query := r.DB.Model(&model.Progress{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("last_access desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

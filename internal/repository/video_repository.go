package repository

import (
	"vsl_edu_backend/internal/model"

	"gorm.io/gorm"
)

type VideoRepository struct {
	DB *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{DB: db}
}

func (r *VideoRepository) Create(video *model.Video) error {
	return r.DB.Create(video).Error
}

func (r *VideoRepository) FindByID(id uint) (*model.Video, error) {
	var video model.Video
	err := r.DB.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) ListByLesson(lessonID uint) ([]model.Video, error) {
	var videos []model.Video
	err := r.DB.Where("lesson_id = ?", lessonID).
		Order("display_order asc, id asc").
		Find(&videos).Error
	return videos, err
}

func (r *VideoRepository) Update(video *model.Video) error {
	return r.DB.Save(video).Error
}

func (r *VideoRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Video{}, id).Error
}

package repository

import (
	"vsl_edu_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// Quiz set methods

func (r *QuizRepository) CreateSet(set *model.QuizSet) error {
	return r.DB.Create(set).Error
}

func (r *QuizRepository) FindSetByID(id uint) (*model.QuizSet, error) {
	var set model.QuizSet
	err := r.DB.First(&set, id).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *QuizRepository) ListSets(page, limit int) ([]model.QuizSet, int64, error) {
	var sets []model.QuizSet
	var total int64

	query := r.DB.Model(&model.QuizSet{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("id desc").Offset(offset).Limit(limit).Find(&sets).Error
	return sets, total, err
}

func (r *QuizRepository) UpdateSet(set *model.QuizSet) error {
	return r.DB.Save(set).Error
}

// Question methods

func (r *QuizRepository) CreateQuestion(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindQuestionByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, id).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) ListQuestionsBySet(setID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("quiz_set_id = ?", setID).Order("id asc").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) UpdateQuestion(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

func (r *QuizRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.Quiz{}, id).Error
}

// ReplaceQuestions soft-deletes every live question of the set and
// inserts the given replacements.
func (r *QuizRepository) ReplaceQuestions(setID uint, quizzes []model.Quiz) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_set_id = ?", setID).Delete(&model.Quiz{}).Error; err != nil {
			return err
		}
		for i := range quizzes {
			quizzes[i].QuizSetID = setID
			if err := tx.Create(&quizzes[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

package model

import "time"

// Progress is the per-learner, per-lesson record of watched videos and
// quiz/practice scores. One row per (user, lesson) pair.
// swagger:model Progress
type Progress struct {
	BaseModel
	UserID          uint      `gorm:"not null;uniqueIndex:idx_user_lesson" json:"userId"`
	LessonID        uint      `gorm:"not null;uniqueIndex:idx_user_lesson" json:"lessonId"`
	CompletedVideos UintList  `gorm:"type:json" json:"completedVideos"`
	QuizScore       int       `gorm:"default:0" json:"quizScore"`
	PracticeScore   int       `gorm:"default:0" json:"practiceScore"`
	LastAccess      time.Time `json:"lastAccess"`
}

func (Progress) TableName() string {
	return "progress"
}

package model

import "time"

type CourseLevel string

const (
	Beginner     CourseLevel = "beginner"
	Intermediate CourseLevel = "intermediate"
	Advanced     CourseLevel = "advanced"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title        string      `gorm:"size:200;not null" json:"title"`
	Description  string      `gorm:"type:text" json:"description"`
	Level        CourseLevel `gorm:"size:20;default:'beginner'" json:"level"`
	Thumbnail    string      `gorm:"size:255" json:"thumbnail"`
	DisplayOrder int         `gorm:"default:0" json:"displayOrder"`
}

func (Course) TableName() string {
	return "courses"
}

// UserCourse is a course enrollment, one row per (user, course) pair.
type UserCourse struct {
	BaseModel
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_course" json:"userId"`
	CourseID   uint      `gorm:"not null;uniqueIndex:idx_user_course" json:"courseId"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

func (UserCourse) TableName() string {
	return "user_courses"
}

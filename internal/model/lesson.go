package model

type LessonCategory string

const (
	CategoryAlphabet LessonCategory = "alphabet"
	CategoryNumbers  LessonCategory = "numbers"
	CategoryCommon   LessonCategory = "common"
	CategoryAdvanced LessonCategory = "advanced"
)

// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID     uint           `gorm:"not null;index" json:"courseId"`
	Title        string         `gorm:"size:200;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Category     LessonCategory `gorm:"size:20;not null" json:"category"`
	Level        CourseLevel    `gorm:"size:20;default:'beginner'" json:"level"`
	Thumbnail    string         `gorm:"size:255" json:"thumbnail"`
	DisplayOrder int            `gorm:"default:0" json:"displayOrder"`

	// QuizSetID is the authoritative quiz set assignment; zero or one
	// live set per lesson.
	QuizSetID *uint `gorm:"index" json:"quizSetId"`
}

func (Lesson) TableName() string {
	return "lessons"
}

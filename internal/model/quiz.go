package model

// QuizSet is a named bundle of questions that can be attached to a
// lesson. LessonID is a denormalized back-reference maintained by the
// assignment operation; Lesson.QuizSetID is the source of truth.
// swagger:model QuizSet
type QuizSet struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	LessonID    *uint  `gorm:"index" json:"lessonId"`
}

func (QuizSet) TableName() string {
	return "quiz_sets"
}

// Quiz is a single question. CorrectAnswer is an opaque string tag
// chosen at authoring time and compared by exact equality at grading.
// swagger:model Quiz
type Quiz struct {
	BaseModel
	QuizSetID uint `gorm:"not null;index" json:"quizSetId"`
	// LegacyLessonID predates quiz sets; kept for migrated rows only,
	// no new write path populates it.
	LegacyLessonID *uint      `gorm:"column:lesson_id" json:"-"`
	Question       string     `gorm:"type:text;not null" json:"question"`
	Options        StringList `gorm:"type:json;not null" json:"options"`
	CorrectAnswer  string     `gorm:"size:10;not null" json:"correctAnswer"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

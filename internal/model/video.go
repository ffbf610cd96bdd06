package model

// swagger:model Video
type Video struct {
	BaseModel
	LessonID     uint   `gorm:"not null;index" json:"lessonId"`
	Title        string `gorm:"size:200;not null" json:"title"`
	VideoURL     string `gorm:"size:500;not null" json:"videoUrl"`
	Thumbnail    string `gorm:"size:255" json:"thumbnail"`
	Duration     int    `json:"duration"` // seconds
	DisplayOrder int    `gorm:"default:0" json:"displayOrder"`
}

func (Video) TableName() string {
	return "videos"
}

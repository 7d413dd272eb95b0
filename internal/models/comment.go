package models

// Comment is an append-only remark on a story
type Comment struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	StoryID   uint64 `gorm:"not null;index;column:story_id" json:"-"`
	Name      string `gorm:"type:varchar(255);not null;column:name" json:"name"`
	Message   string `gorm:"type:text;not null;column:message" json:"message"`
	Timestamp int64  `gorm:"not null;column:timestamp" json:"timestamp"`

	Story *Story `gorm:"foreignKey:StoryID;references:ID" json:"-"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

package models

// StoryCategory is one of the fixed story categories
type StoryCategory string

// Story categories
const (
	CategoryTrueStories         StoryCategory = "trueStories"
	CategoryIndianHorror        StoryCategory = "indianHorror"
	CategoryHauntedPlaces       StoryCategory = "hauntedPlaces"
	CategoryPsychologicalHorror StoryCategory = "psychologicalHorror"
)

// Story represents a published story
type Story struct {
	ID           uint64        `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title        string        `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Excerpt      string        `gorm:"type:text;not null;column:excerpt" json:"excerpt"`
	Content      string        `gorm:"type:text;not null;column:content" json:"content"`
	Category     StoryCategory `gorm:"type:varchar(32);not null;index;column:category" json:"category"`
	YoutubeURL   *string       `gorm:"type:varchar(255);column:youtube_url" json:"youtubeUrl,omitempty"`
	HasThumbnail bool          `gorm:"not null;default:false;column:has_thumbnail" json:"hasThumbnail"`
	Timestamp    int64         `gorm:"not null;index;column:timestamp" json:"timestamp"`
	ViewCount    uint64        `gorm:"not null;default:0;column:view_count" json:"viewCount"`
}

// TableName specifies the table name for Story
func (Story) TableName() string {
	return "stories"
}

// VideoURL returns the external video URL if one was attached
func (s Story) VideoURL() Option[string] {
	return FromPtr(s.YoutubeURL)
}

// NewStory carries the fields of a story to be created. The store assigns
// the id, timestamp and view counter.
type NewStory struct {
	Title    string         `json:"title"`
	Excerpt  string         `json:"excerpt"`
	Content  string         `json:"content"`
	Category StoryCategory  `json:"category"`
	VideoURL Option[string] `json:"youtubeUrl"`
}

package models

// Media asset kinds
const (
	MediaKindLogo      = "logo"
	MediaKindThumbnail = "thumbnail"
)

// MediaAsset is a binary payload with its MIME type. The site logo and
// story thumbnails share this shape.
type MediaAsset struct {
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// Size returns the payload length in bytes
func (m MediaAsset) Size() int {
	return len(m.Data)
}

// StoredMedia is the persisted form of a media asset. The logo uses
// StoryID 0; thumbnails are keyed by their story.
type StoredMedia struct {
	Kind        string `gorm:"type:varchar(16);primaryKey;column:kind"`
	StoryID     uint64 `gorm:"primaryKey;column:story_id"`
	ContentType string `gorm:"type:varchar(128);not null;column:content_type"`
	Data        []byte `gorm:"not null;column:data"`
	UpdatedAt   int64  `gorm:"not null;column:updated_at"`
}

// TableName specifies the table name for StoredMedia
func (StoredMedia) TableName() string {
	return "media_assets"
}

// Asset returns the wire shape of the stored media
func (m StoredMedia) Asset() MediaAsset {
	return MediaAsset{ContentType: m.ContentType, Data: m.Data}
}

package models

import "encoding/json"

// Giphy represents one gif on a user's wall. Tags are stored as a JSON array
// in a TEXT column.
type Giphy struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UUID         string `gorm:"size:64;uniqueIndex" json:"uuid"`
	GiphyID      string `gorm:"size:128" json:"giphy_id"`
	GiphyURL     string `gorm:"size:512" json:"giphy_url"`
	ThumbnailURL string `gorm:"size:512" json:"thumbnail_url"`
	ImagePath    string `gorm:"size:512" json:"image_path"`
	Title        string `gorm:"size:255" json:"title"`
	Tags         string `gorm:"size:1024" json:"-"`
	UploadedBy   uint   `gorm:"index" json:"uploaded_by"`
	CreatedAt    string `gorm:"size:32" json:"created_at"`
}

// TagList decodes the stored tags. Malformed or empty tag data decodes to an
// empty list rather than an error.
func (g *Giphy) TagList() []string {
	if g.Tags == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(g.Tags), &tags); err != nil {
		return []string{}
	}
	return tags
}

// SetTagList encodes tags into the stored JSON form.
func (g *Giphy) SetTagList(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		g.Tags = "[]"
		return
	}
	g.Tags = string(encoded)
}

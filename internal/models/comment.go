package models

// Comment is a comment attached to a gif. Most comments are machine written;
// AIGenerated marks them so the UI can style them differently.
type Comment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	GiphyUUID   string `gorm:"size:64;index" json:"giphy_uuid"`
	CommentText string `gorm:"size:1024" json:"comment_text"`
	AIGenerated bool   `json:"ai_generated"`
	CreatedAt   string `gorm:"size:32" json:"created_at"`
}

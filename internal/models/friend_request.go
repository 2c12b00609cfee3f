package models

// FriendRequestStatus defines the state of a friend request between two users.
type FriendRequestStatus string

const (
	// StatusPending means a friend request has been sent but not yet answered.
	StatusPending FriendRequestStatus = "pending"

	// StatusAccepted means the request was accepted; the two users are friends.
	StatusAccepted FriendRequestStatus = "accepted"

	// StatusDeclined means the receiver turned the request down. A declined
	// request is terminal but does not block a fresh request later.
	StatusDeclined FriendRequestStatus = "declined"
)

// FriendRequest represents one request row between two users.
//
// Rows are never deleted: the most recently created row between an unordered
// pair of users is the one that governs their current status, and older rows
// stay behind as history.
type FriendRequest struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	RequesterID uint                `gorm:"not null;index" json:"requester_id"`
	ReceiverID  uint                `gorm:"not null;index" json:"receiver_id"`
	Status      FriendRequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   string              `gorm:"size:32" json:"created_at"`
	RespondedAt *string             `gorm:"size:32" json:"responded_at"`

	Requester User `gorm:"foreignKey:RequesterID;references:ID" json:"-"`
	Receiver  User `gorm:"foreignKey:ReceiverID;references:ID" json:"-"`
}

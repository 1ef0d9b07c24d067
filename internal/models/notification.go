package models

import "time"

// Notification is a message from one roommate to another within a room.
type Notification struct {
	ID          int64
	RoomID      int64
	SenderID    int64
	RecipientID int64
	Title       string
	Description string
	Time        time.Time
	IsRead      bool
}

// NotificationFilter narrows a room's notification listing.
// Zero fields match everything.
type NotificationFilter struct {
	SenderID    int64
	RecipientID int64
}

package models

// Room represents a household.
// A room is created by an unassigned person and destroyed when its last
// member leaves.
type Room struct {
	// ID is the store-assigned identifier.
	ID int64

	// Name is the display name of the room (e.g., "Flat 3B").
	Name string

	// InviteCode is the unique code other people use to join.
	InviteCode string

	// CreatedAt is the Unix timestamp when the room was created.
	CreatedAt int64
}

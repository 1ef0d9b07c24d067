package models

import "time"

// Person represents a registered roommate.
type Person struct {
	// ID is the store-assigned identifier.
	ID int64

	// Name is the display name.
	Name string

	// Username is the unique login name. Expense splits reference
	// roommates by username.
	Username string

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string

	// RoomID is the room this person belongs to; nil means unassigned.
	RoomID *int64

	// CreatedAt is the Unix timestamp when the person registered.
	CreatedAt int64
}

// NewPerson creates an unassigned person with CreatedAt set to now.
func NewPerson(name, username, passwordHash string) *Person {
	return &Person{
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}

// InRoom reports whether the person is a member of the given room.
func (p *Person) InRoom(roomID int64) bool {
	return p.RoomID != nil && *p.RoomID == roomID
}

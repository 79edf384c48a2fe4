package domain

import "time"

// User represents a registered account.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// OperatingSystem is a single entry in a user's operating system list.
// Entries are append-only and keep their insertion order.
type OperatingSystem struct {
	Name         string
	CustomString string
	CreatedAt    time.Time
}

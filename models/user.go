package models

import "time"

// User is an account on the assistant. Guest accounts are created on demand
// with AuthProvider "guest" and no usable password.
type User struct {
	ID           string         `bson:"id" json:"id"`
	Email        string         `bson:"email" json:"email"`
	Username     string         `bson:"username" json:"username"`
	FirstName    string         `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName     string         `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Password     string         `bson:"-" json:"password,omitempty"` // raw, request-only
	PasswordHash string         `bson:"passwordHash" json:"-"`
	AuthProvider string         `bson:"authProvider" json:"authProvider"` // "password" or "guest"
	Preferences  map[string]any `bson:"preferences,omitempty" json:"preferences,omitempty"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
}

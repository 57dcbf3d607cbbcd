package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	IsActive     bool
	CreatedAt    time.Time
}

// Profile is the 1:1 extension of a User carrying the role enum.
// Created together with the user at registration.
type Profile struct {
	UserID     string
	Role       string
	Phone      string
	Bio        string
	IsVerified bool
}

// Account is a user joined with its profile, the shape most read paths need.
type Account struct {
	User    User
	Profile Profile
}

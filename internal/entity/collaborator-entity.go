package entity

import "time"

// CollaboratorEntity represents a maintenance team member ("equipe") in the
// database. Name and email are not unique.
type CollaboratorEntity struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// CollaboratorRef is the resolved responsible reference on a work-order view.
// Missing marks a dangling id whose collaborator record no longer exists.
type CollaboratorRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Missing bool   `json:"missing,omitempty"`
}

// AccountEntity holds the login credentials of a dashboard user.
type AccountEntity struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

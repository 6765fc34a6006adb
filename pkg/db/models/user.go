package models

import "github.com/google/uuid"

// User is the profile cached alongside the session token.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CommunityID uuid.UUID `json:"community_id"`
	Role        string    `json:"role"`
}

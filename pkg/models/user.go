package models

import "github.com/angelmondragon/swiftmarket-backend/pkg/enums"

// User is the single actor of a session.
type User struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Role   enums.UserRole `json:"role"`
	Avatar string         `json:"avatar"`
}

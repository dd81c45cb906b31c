package models

import "time"

// Session points at the currently authenticated user. At most one session
// exists at a time; its presence means "logged in".
type Session struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

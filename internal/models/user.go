package models

import "time"

type User struct {
	ID             int       `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-"`
	Role           string    `json:"role"`
	IsVerified     bool      `json:"is_verified"`
	JoinDate       time.Time `json:"join_date"`
}

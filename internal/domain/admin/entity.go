package admin

import "time"

type Admin struct {
	ID           int64
	Username     string
	DisplayName  string
	PasswordHash []byte
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

const RoleAdmin = "admin"

package models

import "time"

type Project struct {
	ID          int       `json:"id"`
	OwnerID     int       `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Deadline    string    `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
	IsDeleted   bool      `json:"is_deleted"`
}

type Role string

const RoleOwner Role = "OWNER"
const RoleMember Role = "MEMBER"

type ProjectMember struct {
	ProjectID int  `json:"project_id"`
	UserID    int  `json:"user_id"`
	Role      Role `json:"role"`
}

package models

type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AvatarColor string `json:"avatar_color"`
}

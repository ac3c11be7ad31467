package user

import (
	"fmt"
	"strings"
	"time"
)

// Permission là closed enum cho quyền của user.
// Mọi account mới được tạo với PermissionNone.
type Permission int

const (
	PermissionNone Permission = 0
)

func (p Permission) IsValid() bool {
	switch p {
	case PermissionNone:
		return true
	}
	return false
}

func (p Permission) String() string {
	switch p {
	case PermissionNone:
		return "none"
	}
	return fmt.Sprintf("Permission(%d)", int(p))
}

// User entity. PasswordHash không bao giờ serialize ra ngoài.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Permissions  Permission `json:"permissions"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ToProfile trả về public view của user (không có email)
func (u *User) ToProfile() Profile {
	return Profile{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		JoinedAt:  u.CreatedAt,
	}
}

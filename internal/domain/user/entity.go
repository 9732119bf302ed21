package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleJobSeeker:
		return RoleJobSeeker, true
	case RoleEmployer:
		return RoleEmployer, true
	default:
		return "", false
	}
}

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	ID       int64
	Username string
	Role     Role
}

func (i Identity) HasRole(roles ...Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// Package user holds account identities for the fantasy volleyball service.
package user

import (
	"fmt"
	"strings"
	"time"
)

// User is a registered account. PasswordHash is a bcrypt digest and is
// never serialized to API responses.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal identifies the authenticated caller on a request.
type Principal struct {
	UserID string
	Email  string
	Name   string
}

// Validate checks structural integrity before persistence.
func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("user email is required")
	}
	if strings.TrimSpace(u.PasswordHash) == "" {
		return fmt.Errorf("user password hash is required")
	}
	return nil
}

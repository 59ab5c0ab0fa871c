package users

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Seed returns the default accounts the directory starts with. LastLogin is
// set to now, mirroring account creation.
func Seed(now time.Time) []*User {
	return []*User{
		{
			ID:           "1",
			Email:        "admin@example.com",
			PasswordHash: mustHash("admin"),
			Role:         RoleAdmin,
			Status:       StatusActive,
			LastLogin:    now,
		},
		{
			ID:           "2",
			Email:        "user@example.com",
			PasswordHash: mustHash("user"),
			Role:         RoleUser,
			Status:       StatusActive,
			LastLogin:    now,
		},
	}
}

func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

package user

import (
	"time"

	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// User is the wire representation of a user. Credentials are never echoed.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Username  string `json:"username" doc:"Display name"`
	Email     string `json:"email" doc:"Email address"`
	CreatedAt string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

func userFromService(u service.User) User {
	wire := User{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
	if !u.CreatedAt.IsZero() {
		wire.CreatedAt = u.CreatedAt.Format(time.RFC3339)
	}
	return wire
}

package domain

import "context"

type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"` // admin or recruiter
	Company string `json:"company,omitempty"`
}

type AuthUsecase interface {
	// Login verifies credentials and returns a signed access token with
	// the authenticated user.
	Login(ctx context.Context, email, password string) (string, *User, error)
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/apperror"
	"recruitpro-backend/pkg/auth"

	"golang.org/x/crypto/bcrypt"
)

// authUsecase authenticates the single admin account configured via
// environment. There is no user table: the dashboard is operated by
// one recruiter identity.
type authUsecase struct {
	tokens       *auth.TokenManager
	adminEmail   string
	adminName    string
	passwordHash string
}

func NewAuthUsecase(tokens *auth.TokenManager, adminEmail, adminName, passwordHash string) domain.AuthUsecase {
	return &authUsecase{
		tokens:       tokens,
		adminEmail:   strings.ToLower(adminEmail),
		adminName:    adminName,
		passwordHash: passwordHash,
	}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if strings.ToLower(strings.TrimSpace(email)) != u.adminEmail {
		return "", nil, apperror.Unauthorized("Invalid email or password")
	}
	if u.passwordHash == "" {
		return "", nil, apperror.Internal(errors.New("ADMIN_PASSWORD_HASH is not configured"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return "", nil, apperror.Unauthorized("Invalid email or password")
	}

	user := &domain.User{
		ID:      "admin-1",
		Name:    u.adminName,
		Email:   u.adminEmail,
		Role:    "admin",
		Company: "RecruitPro",
	}
	token, err := u.tokens.Issue(user.ID, user.Name, user.Role)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}
	return token, user, nil
}

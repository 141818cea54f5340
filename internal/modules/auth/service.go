package auth

import (
	"context"

	"contentadmin/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Service handles admin authentication: password check and token issue/verify.
type Service struct {
	admins AdminRepositoryInterface
	jwt    jwtService
}

func NewService(admins AdminRepositoryInterface, jwt jwtService) *Service {
	return &Service{admins: admins, jwt: jwt}
}

// Login validates credentials and returns the admin with a fresh token.
// Missing user and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Admin, string, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}

// Verify resolves a bearer token back to the admin account it was issued
// for. Returns nil without error when the token is invalid or the account is
// gone — the status endpoint reports loggedIn=false rather than failing.
func (s *Service) Verify(ctx context.Context, token string) (*domain.Admin, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	admin, err := s.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		return nil, nil
	}
	return admin, nil
}

package auth

import (
	"context"

	"contentadmin/internal/domain"
	jwtsvc "contentadmin/internal/pkg/jwt"
)

type AdminRepositoryInterface interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
}

type jwtService interface {
	GenerateToken(adminID int64, username string) (string, error)
	ValidateToken(tokenStr string) (*jwtsvc.Claims, error)
}

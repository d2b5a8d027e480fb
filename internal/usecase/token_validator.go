package usecase

import (
	"guri24/internal/domain/user"
	"guri24/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the authenticated caller carried by a valid access token.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return nil, jwt.ErrInvalidToken
	}

	return &Principal{UserID: claims.UserID, Role: role}, nil
}

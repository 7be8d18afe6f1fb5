package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/jwt"
)

// Mensajes de autenticación.
const (
	MsgInvalidCredentials = "Usuário ou senha inválidos"
	MsgLogoutSuccess      = "Logout realizado com sucesso."
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TokenStore lista de tokens revocados (por jti) hasta su expiración.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthUseCase casos de uso de autenticación: login y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenStore
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, jwtCfg: jwtCfg}
}

// hash usado cuando el e-mail no existe, para que ambas ramas cuesten lo mismo.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("estoque-dummy"), bcrypt.DefaultCost)

// Login verifica email/password, genera JWT y retorna token + usuario.
// E-mail desconocido y contraseña incorrecta devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.Subject{
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		AccessType: user.AccessType,
	}, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: usecase.ToUserResponse(user)}, nil
}

// Logout revoca el token (jti) durante el tiempo que le queda de validez.
func (uc *AuthUseCase) Logout(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return uc.tokens.Revoke(ctx, jti, ttl)
}
